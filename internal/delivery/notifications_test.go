// Package delivery - Test render nội dung thông báo trạng thái đơn hàng.
package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ordermodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
)

func TestRenderOrderStatusMessage_Shipped(t *testing.T) {
	// Có tracking: message kèm đơn vị vận chuyển và mã vận đơn
	order := ordermodels.Order{
		OrderID: "ord-1001",
		Status:  ordermodels.OrderStatusShipped,
		Tracking: &ordermodels.Tracking{
			TrackingNumber:  "TRK-88",
			TrackingCompany: "Pronto",
		},
	}
	msg := RenderOrderStatusMessage(order)
	assert.Contains(t, msg, "ord-1001")
	assert.Contains(t, msg, "Pronto")
	assert.Contains(t, msg, "TRK-88")

	// Chưa có tracking: message chung
	order.Tracking = nil
	msg = RenderOrderStatusMessage(order)
	assert.Contains(t, msg, "ord-1001")
	assert.NotContains(t, msg, "TRK-88")
}

func TestRenderOrderStatusMessage_TrangThaiKhac(t *testing.T) {
	order := ordermodels.Order{OrderID: "ord-2", Status: ordermodels.OrderStatusDelivered}
	assert.Contains(t, RenderOrderStatusMessage(order), "ord-2")

	order.Status = ordermodels.OrderStatusCancelled
	assert.Contains(t, RenderOrderStatusMessage(order), "hủy")

	order.Status = ordermodels.OrderStatusReturned
	assert.Contains(t, RenderOrderStatusMessage(order), "trả hàng")
}

func TestRenderOrderStatusMessage_ProcessingKhongGui(t *testing.T) {
	// Processing là trạng thái khởi tạo, không spam khách
	order := ordermodels.Order{OrderID: "ord-3", Status: ordermodels.OrderStatusProcessing}
	assert.Empty(t, RenderOrderStatusMessage(order))

	order.Status = "Unknown"
	assert.Empty(t, RenderOrderStatusMessage(order))
}
