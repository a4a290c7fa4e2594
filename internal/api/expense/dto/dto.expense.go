// Package expensedto - DTO đầu vào cho chi phí.
package expensedto

// ExpenseCreateInput đầu vào tạo chi phí.
type ExpenseCreateInput struct {
	Type   string  `json:"type" validate:"required,no_xss"`
	For    string  `json:"for" validate:"required,no_xss"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Note   string  `json:"note" validate:"omitempty,no_xss"`
}

// ExpenseUpdateInput đầu vào cập nhật chi phí.
type ExpenseUpdateInput struct {
	Type   string   `json:"type" validate:"omitempty,no_xss"`
	For    string   `json:"for" validate:"omitempty,no_xss"`
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
	Note   string   `json:"note" validate:"omitempty,no_xss"`
}
