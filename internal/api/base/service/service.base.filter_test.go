// Package basesvc - Test ghép filter loại bỏ document soft delete.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

var notDeletedCond = bson.M{"$ne": true}

func TestNotDeletedFilter_Nil(t *testing.T) {
	out := NotDeletedFilter(nil)
	assert.Equal(t, bson.M{"isDeleted": notDeletedCond}, out)
}

func TestNotDeletedFilter_MergeBsonM(t *testing.T) {
	out := NotDeletedFilter(bson.M{"status": "Active", "type": "rent"})
	assert.Equal(t, "Active", out["status"])
	assert.Equal(t, "rent", out["type"])
	assert.Equal(t, notDeletedCond, out["isDeleted"])
}

func TestNotDeletedFilter_KhongSuaFilterGoc(t *testing.T) {
	original := bson.M{"status": "Active"}
	_ = NotDeletedFilter(original)
	_, has := original["isDeleted"]
	assert.False(t, has, "filter gốc không được bị ghi thêm điều kiện")
}

func TestNotDeletedFilter_MergeBsonD(t *testing.T) {
	out := NotDeletedFilter(bson.D{{Key: "productId", Value: "item-1"}})
	assert.Equal(t, "item-1", out["productId"])
	assert.Equal(t, notDeletedCond, out["isDeleted"])
}

func TestNotDeletedFilter_KieuLaWrapBangAnd(t *testing.T) {
	// Kiểu không merge được giữ nguyên qua $and
	raw := struct{ X int }{X: 1}
	out := NotDeletedFilter(raw)

	and, ok := out["$and"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, and, 2)
	assert.Equal(t, raw, and[0])
	assert.Equal(t, bson.M{"isDeleted": notDeletedCond}, and[1])
}
