// Package utility - Test chuyển đổi số từ các nguồn input khác nhau.
package utility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestP2Int64(t *testing.T) {
	// Query param là string
	assert.Equal(t, int64(25), P2Int64("25"))
	assert.Equal(t, int64(-3), P2Int64("-3"))
	assert.Equal(t, int64(0), P2Int64("abc"))
	assert.Equal(t, int64(0), P2Int64(""))
	assert.Equal(t, int64(0), P2Int64("1.5"))

	// Body đã decode qua json.Number
	assert.Equal(t, int64(42), P2Int64(json.Number("42")))
	assert.Equal(t, int64(0), P2Int64(json.Number("x")))

	// Kiểu số trực tiếp
	assert.Equal(t, int64(7), P2Int64(7))
	assert.Equal(t, int64(9), P2Int64(int64(9)))
	assert.Equal(t, int64(3), P2Int64(3.9))

	// Kiểu không hỗ trợ
	assert.Equal(t, int64(0), P2Int64(nil))
	assert.Equal(t, int64(0), P2Int64(true))
}
