package delivery

import (
	"context"
	"fmt"

	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/events"
	ordermodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// RegisterOrderNotifications đăng ký hook: mỗi khi đơn hàng được cập nhật,
// enqueue thông báo trạng thái cho khách qua SMS (và email nếu có địa chỉ).
func RegisterOrderNotifications(queue *Queue) {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Orders || e.Operation != events.OpUpdate {
			return
		}
		order, ok := e.Document.(ordermodels.Order)
		if !ok {
			return
		}
		content := RenderOrderStatusMessage(order)
		if content == "" {
			return
		}

		if order.Customer.Phone != "" {
			_, err := queue.Enqueue(ctx, deliverymodels.DeliveryQueueItem{
				EventType:   deliverymodels.EventOrderStatusChanged,
				ChannelType: deliverymodels.ChannelSMS,
				Recipient:   order.Customer.Phone,
				Content:     content,
				OrderID:     order.OrderID,
				Priority:    2,
			})
			if err != nil {
				logger.GetAppLogger().WithError(err).Error("Không enqueue được SMS trạng thái đơn hàng")
			}
		}
		if order.Customer.Email != "" {
			_, err := queue.Enqueue(ctx, deliverymodels.DeliveryQueueItem{
				EventType:   deliverymodels.EventOrderStatusChanged,
				ChannelType: deliverymodels.ChannelEmail,
				Recipient:   order.Customer.Email,
				Subject:     fmt.Sprintf("NEVERBE - Cập nhật đơn hàng %s", order.OrderID),
				Content:     content,
				OrderID:     order.OrderID,
				Priority:    3,
			})
			if err != nil {
				logger.GetAppLogger().WithError(err).Error("Không enqueue được email trạng thái đơn hàng")
			}
		}
	})
}

// RenderOrderStatusMessage sinh nội dung thông báo theo trạng thái đơn.
// Trạng thái không cần báo khách (Processing) trả về chuỗi rỗng.
func RenderOrderStatusMessage(order ordermodels.Order) string {
	switch order.Status {
	case ordermodels.OrderStatusShipped:
		if order.Tracking != nil && order.Tracking.TrackingNumber != "" {
			return fmt.Sprintf("Đơn hàng %s đã được giao cho %s, mã vận đơn %s.",
				order.OrderID, order.Tracking.TrackingCompany, order.Tracking.TrackingNumber)
		}
		return fmt.Sprintf("Đơn hàng %s đã được bàn giao cho đơn vị vận chuyển.", order.OrderID)
	case ordermodels.OrderStatusDelivered:
		return fmt.Sprintf("Đơn hàng %s đã giao thành công. Cảm ơn bạn đã mua sắm tại NEVERBE!", order.OrderID)
	case ordermodels.OrderStatusCancelled:
		return fmt.Sprintf("Đơn hàng %s đã bị hủy. Liên hệ chúng tôi nếu bạn cần hỗ trợ.", order.OrderID)
	case ordermodels.OrderStatusReturned:
		return fmt.Sprintf("Yêu cầu trả hàng cho đơn %s đã được ghi nhận.", order.OrderID)
	default:
		return ""
	}
}
