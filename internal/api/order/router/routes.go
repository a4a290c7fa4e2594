// Package router đăng ký route đơn hàng dưới /api/v1/orders.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	orderhdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/handler"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
)

// Register đăng ký route đơn hàng.
func Register(r *apirouter.Router) error {
	h, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware("")
	orders := r.V1Group("/orders")
	apirouter.RegisterRouteWithMiddleware(orders, "", "GET", "/", []fiber.Handler{authOnly}, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(orders, "", "GET", "/:id", []fiber.Handler{authOnly}, h.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(orders, "", "PUT", "/:id", []fiber.Handler{authOnly}, h.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(orders, "", "PUT", "/:id/payment-status", []fiber.Handler{authOnly}, h.HandleUpdatePaymentStatus)
	apirouter.RegisterRouteWithMiddleware(orders, "", "PUT", "/:id/tracking", []fiber.Handler{authOnly}, h.HandleUpdateTracking)

	return nil
}
