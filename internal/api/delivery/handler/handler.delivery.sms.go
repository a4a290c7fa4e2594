// Package deliveryhdl - handler gửi thông báo thủ công.
package deliveryhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	deliverydto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/dto"
	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/delivery"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// SMSHandler nhận yêu cầu gửi SMS từ admin và đưa vào hàng đợi delivery.
type SMSHandler struct {
	queue *delivery.Queue
}

// NewSMSHandler tạo instance mới của SMSHandler
func NewSMSHandler() (*SMSHandler, error) {
	queue, err := delivery.NewQueue()
	if err != nil {
		return nil, err
	}
	return &SMSHandler{queue: queue}, nil
}

// HandleSend POST /sms - enqueue một SMS thủ công. Trả 202 khi đã vào hàng đợi,
// 409 khi cùng nội dung vừa được enqueue (chống bấm trùng).
func (h *SMSHandler) HandleSend(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input deliverydto.SMSSendInput
		if err := basehdl.ParseJSONBody(c, &input); err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", common.StatusBadRequest, err.Error()))
			return nil
		}

		enqueued, err := h.queue.Enqueue(c.Context(), deliverymodels.DeliveryQueueItem{
			EventType:   deliverymodels.EventManualSMS,
			ChannelType: deliverymodels.ChannelSMS,
			Recipient:   input.Recipient,
			Content:     input.Message,
			Priority:    2,
		})
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		if !enqueued {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeBusinessOperation, "SMS trùng lặp vừa được gửi, thử lại sau", common.StatusConflict, nil))
			return nil
		}

		logger.LogCRUD("create", "sms", input.Recipient, c, map[string]interface{}{"length": len(input.Message)})
		basehdl.WriteResponse(c, map[string]interface{}{"queued": true}, nil)
		return nil
	})
}
