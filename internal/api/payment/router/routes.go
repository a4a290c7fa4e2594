// Package router đăng ký route phương thức thanh toán dưới /api/v1/payment-methods.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	paymenthdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/handler"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
)

// Register đăng ký route phương thức thanh toán. Ghi dữ liệu yêu cầu quyền Admin.
func Register(r *apirouter.Router) error {
	h, err := paymenthdl.NewPaymentMethodHandler()
	if err != nil {
		return fmt.Errorf("failed to create payment method handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware("")
	adminOnly := middleware.AuthMiddleware("Admin")
	methods := r.V1Group("/payment-methods")
	apirouter.RegisterRouteWithMiddleware(methods, "", "GET", "/", []fiber.Handler{authOnly}, h.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(methods, "", "GET", "/:id", []fiber.Handler{authOnly}, h.FindOneById)
	apirouter.RegisterRouteWithMiddleware(methods, "", "POST", "/", []fiber.Handler{adminOnly}, h.InsertOne)
	apirouter.RegisterRouteWithMiddleware(methods, "", "PUT", "/:id", []fiber.Handler{adminOnly}, h.UpdateById)
	apirouter.RegisterRouteWithMiddleware(methods, "", "DELETE", "/:id", []fiber.Handler{adminOnly}, h.SoftDeleteById)

	return nil
}
