package models

import (
	"fmt"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// allowedTransitions bảng chuyển trạng thái đơn hàng hợp lệ.
// Shipped → Shipped cho phép cập nhật lại thông tin giao hàng khi đổi đơn vị vận chuyển.
var allowedTransitions = map[string][]string{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusShipped, OrderStatusDelivered, OrderStatusReturned},
	OrderStatusDelivered:  {OrderStatusReturned},
	OrderStatusReturned:   {OrderStatusCancelled},
	OrderStatusCancelled:  {},
}

// AllowedTransitions trả về danh sách trạng thái có thể chuyển đến từ trạng thái hiện tại.
func AllowedTransitions(from string) []string {
	targets, ok := allowedTransitions[from]
	if !ok {
		return []string{}
	}
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

// CanTransition kiểm tra chuyển trạng thái from → to có hợp lệ không.
func CanTransition(from string, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ValidateTransition trả lỗi 409 nếu chuyển trạng thái không hợp lệ.
func ValidateTransition(from string, to string) error {
	if CanTransition(from, to) {
		return nil
	}
	return common.NewError(
		common.ErrCodeValidationInput,
		fmt.Sprintf("Không thể chuyển đơn hàng từ trạng thái '%s' sang '%s'", from, to),
		common.StatusConflict,
		map[string]interface{}{"from": from, "to": to, "allowed": AllowedTransitions(from)},
	)
}

// ValidatePaymentStatusChange kiểm tra thay đổi trạng thái thanh toán.
// Đơn đã hủy chỉ được chuyển thanh toán sang Refunded hoặc Failed.
func ValidatePaymentStatusChange(orderStatus string, to string) error {
	if orderStatus == OrderStatusCancelled && to != PaymentStatusRefunded && to != PaymentStatusFailed {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Đơn hàng đã hủy chỉ được chuyển trạng thái thanh toán sang '%s' hoặc '%s'", PaymentStatusRefunded, PaymentStatusFailed),
			common.StatusConflict,
			map[string]interface{}{"orderStatus": orderStatus, "to": to},
		)
	}
	return nil
}
