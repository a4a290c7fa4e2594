// Package models - Test bảng chuyển trạng thái đơn hàng.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"Processing sang Shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"Processing sang Cancelled", OrderStatusProcessing, OrderStatusCancelled, true},
		{"Processing sang Delivered bị chặn", OrderStatusProcessing, OrderStatusDelivered, false},
		{"Shipped sang Shipped (cập nhật lại vận chuyển)", OrderStatusShipped, OrderStatusShipped, true},
		{"Shipped sang Delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"Shipped sang Returned", OrderStatusShipped, OrderStatusReturned, true},
		{"Shipped sang Cancelled bị chặn", OrderStatusShipped, OrderStatusCancelled, false},
		{"Delivered sang Returned", OrderStatusDelivered, OrderStatusReturned, true},
		{"Delivered sang Shipped bị chặn (không đi lùi)", OrderStatusDelivered, OrderStatusShipped, false},
		{"Returned sang Cancelled", OrderStatusReturned, OrderStatusCancelled, true},
		{"Cancelled là trạng thái cuối", OrderStatusCancelled, OrderStatusProcessing, false},
		{"Cancelled không sang Shipped", OrderStatusCancelled, OrderStatusShipped, false},
		{"Trạng thái lạ không chuyển được", "Unknown", OrderStatusShipped, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestValidateTransition_TraLoi409KemDanhSachChoPhep(t *testing.T) {
	err := ValidateTransition(OrderStatusDelivered, OrderStatusShipped)
	assert.Error(t, err)

	appErr, ok := err.(*common.Error)
	assert.True(t, ok, "lỗi phải là *common.Error")
	assert.Equal(t, common.StatusConflict, appErr.StatusCode)

	details, ok := appErr.Details.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, OrderStatusDelivered, details["from"])
	assert.Equal(t, []string{OrderStatusReturned}, details["allowed"])
}

func TestValidateTransition_HopLeKhongLoi(t *testing.T) {
	assert.NoError(t, ValidateTransition(OrderStatusProcessing, OrderStatusShipped))
	assert.NoError(t, ValidateTransition(OrderStatusShipped, OrderStatusShipped))
}

func TestAllowedTransitions_TraVeBanSao(t *testing.T) {
	got := AllowedTransitions(OrderStatusProcessing)
	got[0] = "Tampered"
	assert.Equal(t, []string{OrderStatusShipped, OrderStatusCancelled}, AllowedTransitions(OrderStatusProcessing))

	assert.Empty(t, AllowedTransitions(OrderStatusCancelled))
	assert.Empty(t, AllowedTransitions("Unknown"))
}

func TestValidatePaymentStatusChange(t *testing.T) {
	// Đơn đã hủy chỉ cho Refunded hoặc Failed
	assert.NoError(t, ValidatePaymentStatusChange(OrderStatusCancelled, PaymentStatusRefunded))
	assert.NoError(t, ValidatePaymentStatusChange(OrderStatusCancelled, PaymentStatusFailed))
	assert.Error(t, ValidatePaymentStatusChange(OrderStatusCancelled, PaymentStatusPaid))
	assert.Error(t, ValidatePaymentStatusChange(OrderStatusCancelled, PaymentStatusPending))

	// Đơn chưa hủy đổi thanh toán tự do
	assert.NoError(t, ValidatePaymentStatusChange(OrderStatusProcessing, PaymentStatusPaid))
	assert.NoError(t, ValidatePaymentStatusChange(OrderStatusDelivered, PaymentStatusRefunded))
}
