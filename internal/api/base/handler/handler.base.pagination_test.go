// Package basehdl - Test parse tham số phân trang.
package basehdl

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func paginationOf(t *testing.T, target string) (int64, int64) {
	t.Helper()

	var page, limit int64
	app := fiber.New()
	app.Get("/items", func(c fiber.Ctx) error {
		page, limit = ParsePaginationQuery(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	return page, limit
}

func TestParsePaginationQuery_MacDinh(t *testing.T) {
	page, limit := paginationOf(t, "/items")
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
}

func TestParsePaginationQuery_GiaTriHopLe(t *testing.T) {
	page, limit := paginationOf(t, "/items?page=3&limit=25")
	assert.Equal(t, int64(3), page)
	assert.Equal(t, int64(25), limit)
}

func TestParsePaginationQuery_SizeLaAliasCuaLimit(t *testing.T) {
	// page=1&size=20 trên 25 bản ghi phải chia trang 20/5
	page, limit := paginationOf(t, "/items?page=1&size=20")
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(20), limit)

	// limit có mặt thì thắng size
	_, limit = paginationOf(t, "/items?limit=15&size=20")
	assert.Equal(t, int64(15), limit)

	// size không hợp lệ quay về mặc định
	_, limit = paginationOf(t, "/items?size=-1")
	assert.Equal(t, int64(10), limit)
}

func TestParsePaginationQuery_GiaTriXauVeMacDinh(t *testing.T) {
	// Âm, zero hoặc không phải số đều quay về mặc định
	page, limit := paginationOf(t, "/items?page=-2&limit=0")
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	page, limit = paginationOf(t, "/items?page=abc&limit=xyz")
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)
}
