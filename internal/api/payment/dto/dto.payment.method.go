// Package paymentdto - DTO đầu vào cho phương thức thanh toán.
package paymentdto

// PaymentMethodCreateInput đầu vào tạo phương thức thanh toán.
// Fee là phần trăm phụ thu (0..100).
type PaymentMethodCreateInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"omitempty"`
	Fee         float64  `json:"fee" validate:"gte=0,lte=100"`
	Status      string   `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Available   []string `json:"available" validate:"omitempty"`
}

// PaymentMethodUpdateInput đầu vào cập nhật phương thức thanh toán.
type PaymentMethodUpdateInput struct {
	Name        string   `json:"name" validate:"omitempty"`
	Description string   `json:"description" validate:"omitempty"`
	Fee         *float64 `json:"fee" validate:"omitempty,gte=0,lte=100"`
	Status      string   `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Available   []string `json:"available" validate:"omitempty"`
}
