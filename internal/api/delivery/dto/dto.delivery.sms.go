// Package deliverydto - DTO đầu vào cho domain Delivery.
package deliverydto

// SMSSendInput đầu vào gửi SMS thủ công từ admin panel.
type SMSSendInput struct {
	Recipient string `json:"recipient" validate:"required,e164"`
	Message   string `json:"message" validate:"required,max=480"`
}
