// Package inventoryhdl - Test handler tồn kho với spy store:
// input không hợp lệ phải trả 400 và KHÔNG chạm store.
package inventoryhdl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/models"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// spyStore đếm số lần handler gọi xuống store.
type spyStore struct {
	calls       int
	lastUpsert  models.InventoryRecord
	lastSetQty  int
	lastSetByID primitive.ObjectID
}

func (s *spyStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.InventoryRecord], error) {
	s.calls++
	return &basemodels.PaginateResult[models.InventoryRecord]{}, nil
}

func (s *spyStore) FindOneById(ctx context.Context, id primitive.ObjectID) (models.InventoryRecord, error) {
	s.calls++
	return models.InventoryRecord{ID: id}, nil
}

func (s *spyStore) UpsertTuple(ctx context.Context, record models.InventoryRecord) (models.InventoryRecord, error) {
	s.calls++
	s.lastUpsert = record
	return record, nil
}

func (s *spyStore) SetQuantityById(ctx context.Context, id primitive.ObjectID, quantity int) (models.InventoryRecord, error) {
	s.calls++
	s.lastSetByID = id
	s.lastSetQty = quantity
	return models.InventoryRecord{ID: id, Quantity: quantity}, nil
}

func (s *spyStore) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.InventoryRecord, error) {
	s.calls++
	return models.InventoryRecord{ID: id, IsDeleted: true}, nil
}

func newTestApp(store *spyStore) *fiber.App {
	global.InitValidator()
	h := NewInventoryHandlerWithStore(store)

	app := fiber.New()
	app.Get("/inventory", h.HandleList)
	app.Post("/inventory", h.HandleUpsert)
	app.Put("/inventory/:id", h.HandleSetQuantity)
	app.Delete("/inventory/:id", h.HandleDelete)
	return app
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleUpsert_ThieuQuantityTra400KhongGoiStore(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)

	body := `{"productId":"giay-1","variantId":"den","size":"42","stockId":"` + primitive.NewObjectID().Hex() + `"}`
	resp, err := app.Test(jsonReq("POST", "/inventory", body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.calls, "store không được gọi khi validate fail")
}

func TestHandleUpsert_QuantityAmTra400KhongGoiStore(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)

	body := `{"productId":"giay-1","variantId":"den","size":"42","stockId":"` + primitive.NewObjectID().Hex() + `","quantity":-5}`
	resp, err := app.Test(jsonReq("POST", "/inventory", body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.calls)
}

func TestHandleUpsert_StockIdSaiHexTra400KhongGoiStore(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)

	body := `{"productId":"giay-1","variantId":"den","size":"42","stockId":"khong-phai-objectid","quantity":3}`
	resp, err := app.Test(jsonReq("POST", "/inventory", body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.calls)
}

func TestHandleUpsert_HopLeChuyenDungRecordXuongStore(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)
	stockID := primitive.NewObjectID()

	body := `{"productId":"giay-1","variantId":"den","size":"42","stockId":"` + stockID.Hex() + `","quantity":0}`
	resp, err := app.Test(jsonReq("POST", "/inventory", body))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, "giay-1", store.lastUpsert.ProductID)
	assert.Equal(t, "den", store.lastUpsert.VariantID)
	assert.Equal(t, "42", store.lastUpsert.Size)
	assert.Equal(t, stockID, store.lastUpsert.StockID)
	// quantity 0 hợp lệ (hết hàng), khác với thiếu field
	assert.Equal(t, 0, store.lastUpsert.Quantity)
}

func TestHandleSetQuantity_IdSaiTra400KhongGoiStore(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)

	resp, err := app.Test(jsonReq("PUT", "/inventory/abc", `{"quantity":7}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.calls)
}

func TestHandleSetQuantity_QuantityAmTra400KhongGoiStore(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)

	resp, err := app.Test(jsonReq("PUT", "/inventory/"+primitive.NewObjectID().Hex(), `{"quantity":-1}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.calls)
}

func TestHandleSetQuantity_HopLe(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)
	id := primitive.NewObjectID()

	resp, err := app.Test(jsonReq("PUT", "/inventory/"+id.Hex(), `{"quantity":12}`))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, id, store.lastSetByID)
	assert.Equal(t, 12, store.lastSetQty)
}

func TestHandleList_FilterStockIdSaiHexTra400(t *testing.T) {
	store := &spyStore{}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory?stockId=xyz", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, store.calls)
}
