// Package paymenthdl - handler phương thức thanh toán.
package paymenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	paymentdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/models"
	paymentsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// PaymentMethodHandler xử lý các request phương thức thanh toán
type PaymentMethodHandler struct {
	*basehdl.BaseHandler[models.PaymentMethod, paymentdto.PaymentMethodCreateInput, paymentdto.PaymentMethodUpdateInput]
	paymentMethodService *paymentsvc.PaymentMethodService
}

// NewPaymentMethodHandler tạo instance mới của PaymentMethodHandler
func NewPaymentMethodHandler() (*PaymentMethodHandler, error) {
	paymentMethodService, err := paymentsvc.NewPaymentMethodService()
	if err != nil {
		return nil, fmt.Errorf("failed to create payment method service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.PaymentMethod, paymentdto.PaymentMethodCreateInput, paymentdto.PaymentMethodUpdateInput](paymentMethodService)
	return &PaymentMethodHandler{
		BaseHandler:          baseHandler,
		paymentMethodService: paymentMethodService,
	}, nil
}

// InsertOne tạo phương thức thanh toán mới, cấp paymentId rồi insert.
func (h *PaymentMethodHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input paymentdto.PaymentMethodCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		method, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.paymentMethodService.CreatePaymentMethod(c.Context(), *method)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "payment_method", created.PaymentID, c, map[string]interface{}{"name": created.Name})
		h.HandleResponse(c, created, nil)
		return nil
	})
}

// UpdateById cập nhật phương thức thanh toán (partial).
func (h *PaymentMethodHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		var input paymentdto.PaymentMethodUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update := &basesvc.UpdateData{Set: map[string]interface{}{}}
		if input.Name != "" {
			update.Set["name"] = input.Name
		}
		if input.Description != "" {
			update.Set["description"] = input.Description
		}
		if input.Fee != nil {
			update.Set["fee"] = *input.Fee
		}
		if input.Status != "" {
			update.Set["status"] = input.Status
		}
		if input.Available != nil {
			update.Set["available"] = input.Available
		}
		if len(update.Set) == 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu để cập nhật", common.StatusBadRequest, nil))
			return nil
		}

		updated, err := h.paymentMethodService.UpdateById(c.Context(), objID, update)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("update", "payment_method", updated.PaymentID, c, nil)
		h.HandleResponse(c, updated, nil)
		return nil
	})
}
