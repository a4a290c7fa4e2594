package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomValidators(t *testing.T) {
	InitValidator()

	t.Run("no_xss chặn các pattern nguy hiểm", func(t *testing.T) {
		assert.NoError(t, Validate.Var("Giày chạy bộ Air Max", "no_xss"))
		assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
		assert.Error(t, Validate.Var("x\" onerror=alert(1)", "no_xss"))
		assert.Error(t, Validate.Var("javascript:void(0)", "no_xss"))
	})

	t.Run("order_status chỉ nhận trạng thái hợp lệ", func(t *testing.T) {
		for _, s := range []string{"Processing", "Shipped", "Delivered", "Returned", "Cancelled"} {
			assert.NoError(t, Validate.Var(s, "order_status"), s)
		}
		assert.Error(t, Validate.Var("Done", "order_status"))
		assert.Error(t, Validate.Var("shipped", "order_status"))
		assert.Error(t, Validate.Var("", "order_status"))
	})

	t.Run("payment_status chỉ nhận trạng thái hợp lệ", func(t *testing.T) {
		for _, s := range []string{"Pending", "Paid", "Refunded", "Failed"} {
			assert.NoError(t, Validate.Var(s, "payment_status"), s)
		}
		assert.Error(t, Validate.Var("Completed", "payment_status"))
	})

	t.Run("item_id chỉ nhận chữ thường, số, gạch ngang", func(t *testing.T) {
		assert.NoError(t, Validate.Var("giay-air-max-1", "item_id"))
		assert.Error(t, Validate.Var("Giay-1", "item_id"))
		assert.Error(t, Validate.Var("giay 1", "item_id"))
		assert.Error(t, Validate.Var("", "item_id"))
	})
}

// Các validator custom phải hoạt động qua struct tag, đúng như DTO dùng.
func TestCustomValidators_QuaStructTag(t *testing.T) {
	InitValidator()

	type statusInput struct {
		Status string `validate:"required,order_status"`
		Name   string `validate:"omitempty,no_xss"`
	}

	assert.NoError(t, Validate.Struct(statusInput{Status: "Shipped", Name: "Giày"}))
	assert.Error(t, Validate.Struct(statusInput{Status: "Unknown"}))
	assert.Error(t, Validate.Struct(statusInput{Status: "Shipped", Name: "<script>x</script>"}))
}
