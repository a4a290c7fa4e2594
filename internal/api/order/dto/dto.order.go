// Package orderdto - DTO đầu vào cho đơn hàng.
package orderdto

// OrderStatusInput đầu vào chuyển trạng thái đơn hàng.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,order_status"`
}

// OrderPaymentStatusInput đầu vào chuyển trạng thái thanh toán.
type OrderPaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,payment_status"`
}

// OrderTrackingInput đầu vào cập nhật thông tin vận chuyển.
type OrderTrackingInput struct {
	TrackingNumber  string `json:"trackingNumber" validate:"required,no_xss"`
	TrackingCompany string `json:"trackingCompany" validate:"required,no_xss"`
	TrackingURL     string `json:"trackingUrl" validate:"omitempty,url"`
	Status          string `json:"status" validate:"omitempty,order_status"`
}
