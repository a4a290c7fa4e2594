// Package inventoryhdl - handler tồn kho.
// Dùng chung cho /api/v1/inventory và /api/v2/inventory: POST của cả hai và PUT v2
// upsert theo bộ tứ, PUT v1 ghi đè số lượng tuyệt đối theo id bản ghi.
package inventoryhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	inventorydto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/models"
	inventorysvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// InventoryHandler xử lý các request tồn kho
type InventoryHandler struct {
	*basehdl.BaseHandler[models.InventoryRecord, inventorydto.InventoryCreateInput, inventorydto.InventorySetQuantityInput]
	store inventorysvc.InventoryStore
}

// NewInventoryHandler tạo instance mới của InventoryHandler
func NewInventoryHandler() (*InventoryHandler, error) {
	service, err := inventorysvc.NewInventoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.InventoryRecord, inventorydto.InventoryCreateInput, inventorydto.InventorySetQuantityInput](service)
	return &InventoryHandler{
		BaseHandler: baseHandler,
		store:       service,
	}, nil
}

// NewInventoryHandlerWithStore tạo handler với store tùy ý (dùng trong test).
func NewInventoryHandlerWithStore(store inventorysvc.InventoryStore) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// HandleList GET danh sách tồn kho, filter theo productId/variantId/stockId query params.
func (h *InventoryHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter := bson.M{}
		if productID := c.Query("productId"); productID != "" {
			filter["productId"] = productID
		}
		if variantID := c.Query("variantId"); variantID != "" {
			filter["variantId"] = variantID
		}
		if stockIDStr := c.Query("stockId"); stockIDStr != "" {
			stockID, err := primitive.ObjectIDFromHex(stockIDStr)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "stockId không hợp lệ", common.StatusBadRequest, err))
				return nil
			}
			filter["stockId"] = stockID
		}

		page, limit := h.ParsePagination(c)
		result, err := h.store.FindWithPagination(c.Context(), basesvc.NotDeletedFilter(filter), page, limit, nil)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetById GET một bản ghi tồn kho theo id.
func (h *InventoryHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		record, err := h.store.FindOneById(c.Context(), objID)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// HandleUpsert POST tồn kho: upsert theo bộ tứ (productId, variantId, size, stockId).
// Mọi lỗi validate trả 400 trước khi chạm store.
func (h *InventoryHandler) HandleUpsert(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		record, err := h.parseUpsertInput(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		result, err := h.store.UpsertTuple(c.Context(), *record)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogInventory(record.ProductID, record.VariantID, record.Size, record.StockID.Hex(), record.Quantity, c)
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleSetQuantity PUT v1: ghi đè số lượng tuyệt đối theo id bản ghi.
// Số lượng âm, không nguyên hoặc thiếu trả 400 và không gọi store.
func (h *InventoryHandler) HandleSetQuantity(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		var input inventorydto.InventorySetQuantityInput
		if err := h.parseBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.validate(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		record, err := h.store.SetQuantityById(c.Context(), objID, *input.Quantity)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogInventory(record.ProductID, record.VariantID, record.Size, record.StockID.Hex(), record.Quantity, c)
		h.HandleResponse(c, record, nil)
		return nil
	})
}

// HandleDelete DELETE: đánh dấu xóa bản ghi tồn kho.
func (h *InventoryHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		record, err := h.store.SoftDeleteById(c.Context(), objID)
		h.HandleResponse(c, record, err)
		return nil
	})
}

// parseUpsertInput parse + validate body upsert, trả về record sẵn ghi.
func (h *InventoryHandler) parseUpsertInput(c fiber.Ctx) (*models.InventoryRecord, error) {
	var input inventorydto.InventoryCreateInput
	if err := h.parseBody(c, &input); err != nil {
		return nil, err
	}
	if err := h.validate(&input); err != nil {
		return nil, err
	}
	stockID, err := primitive.ObjectIDFromHex(input.StockID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "stockId không hợp lệ", common.StatusBadRequest, err)
	}
	return &models.InventoryRecord{
		ProductID: input.ProductID,
		VariantID: input.VariantID,
		Size:      input.Size,
		StockID:   stockID,
		Quantity:  *input.Quantity,
	}, nil
}

// parseBody dùng ParseRequestBody của BaseHandler khi có, fallback cho handler test (BaseHandler nil).
func (h *InventoryHandler) parseBody(c fiber.Ctx, input interface{}) error {
	if h.BaseHandler != nil {
		return h.BaseHandler.ParseRequestBody(c, input)
	}
	return basehdl.ParseJSONBody(c, input)
}

func (h *InventoryHandler) validate(input interface{}) error {
	if h.BaseHandler != nil {
		return h.BaseHandler.ValidateInput(input)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", common.StatusBadRequest, err.Error())
	}
	return nil
}

// HandleResponse ủy quyền cho BaseHandler khi có, fallback cho handler test.
func (h *InventoryHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if h.BaseHandler != nil {
		h.BaseHandler.HandleResponse(c, data, err)
		return
	}
	basehdl.WriteResponse(c, data, err)
}
