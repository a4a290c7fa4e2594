package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestPaginationWindow(t *testing.T) {
	// 25 bản ghi, limit 20: trang 1 lấy 20 (skip 0), trang 2 lấy 5 còn lại (skip 20)
	page, limit, skip := paginationWindow(1, 20)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(20), limit)
	assert.Equal(t, int64(0), skip)

	_, _, skip = paginationWindow(2, 20)
	assert.Equal(t, int64(20), skip)

	// Hai trang liên tiếp không chồng lấn
	_, _, skip2 := paginationWindow(3, 20)
	assert.Equal(t, int64(40), skip2)
}

func TestPaginationWindow_ChuanHoaGiaTriXau(t *testing.T) {
	page, limit, skip := paginationWindow(0, 0)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
	assert.Equal(t, int64(0), skip)

	page, limit, skip = paginationWindow(-5, -3)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
	assert.Equal(t, int64(0), skip)
}

func TestEnsureDefaultSort(t *testing.T) {
	// Chưa cấu hình sort thì mặc định createdAt giảm dần
	opts := options.Find()
	ensureDefaultSort(opts)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort)

	// Caller đã cấu hình sort thì giữ nguyên
	opts = options.Find().SetSort(bson.D{{Key: "amount", Value: 1}})
	ensureDefaultSort(opts)
	assert.Equal(t, bson.D{{Key: "amount", Value: 1}}, opts.Sort)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 20))
	assert.Equal(t, int64(1), totalPages(20, 20))
	// 25 bản ghi với limit 20 → 2 trang (20 + 5)
	assert.Equal(t, int64(2), totalPages(25, 20))
	assert.Equal(t, int64(3), totalPages(41, 20))
}
