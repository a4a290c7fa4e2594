// Package orderhdl - handler đơn hàng.
package orderhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	orderdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	ordersvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/utility"
)

// OrderHandler xử lý các request đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderStatusInput, orderdto.OrderStatusInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderStatusInput, orderdto.OrderStatusInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// HandleList GET danh sách đơn hàng, filter theo status/paymentStatus và khoảng thời gian.
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter := bson.M{}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}
		if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
			filter["paymentStatus"] = paymentStatus
		}
		if from := c.Query("from"); from != "" {
			fromMs := utility.P2Int64(from)
			toMs := utility.P2Int64(c.Query("to"))
			rangeFilter := bson.M{"$gte": fromMs}
			if toMs > 0 {
				rangeFilter["$lte"] = toMs
			}
			filter["createdAt"] = rangeFilter
		}

		page, limit := h.ParsePagination(c)
		result, err := h.orderService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetById GET một đơn hàng theo id.
func (h *OrderHandler) HandleGetById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		order, err := h.orderService.FindOneById(c.Context(), objID)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleUpdateStatus PUT /:id chuyển trạng thái đơn hàng. Chuyển không hợp lệ trả 409.
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input orderdto.OrderStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		before, err := h.orderService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		updated, err := h.orderService.UpdateStatus(c.Context(), objID, input.Status)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogOrderStatus(updated.OrderID, before.Status, updated.Status, c)
		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// HandleUpdatePaymentStatus PUT /:id/payment-status chuyển trạng thái thanh toán.
func (h *OrderHandler) HandleUpdatePaymentStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input orderdto.OrderPaymentStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.orderService.UpdatePaymentStatus(c.Context(), objID, input.PaymentStatus)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("update", "order_payment_status", updated.OrderID, c, map[string]interface{}{"paymentStatus": updated.PaymentStatus})
		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// HandleUpdateTracking PUT /:id/tracking ghi thông tin vận chuyển.
func (h *OrderHandler) HandleUpdateTracking(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input orderdto.OrderTrackingInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tracking := models.Tracking{
			TrackingNumber:  input.TrackingNumber,
			TrackingCompany: input.TrackingCompany,
			TrackingURL:     input.TrackingURL,
			Status:          input.Status,
		}
		updated, err := h.orderService.UpdateTracking(c.Context(), objID, tracking)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("update", "order_tracking", updated.OrderID, c, map[string]interface{}{"trackingNumber": input.TrackingNumber})
		h.HandleResponse(c, updated, nil)
		return nil
	})
}
