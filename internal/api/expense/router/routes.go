// Package router đăng ký route chi phí dưới /api/v1/expenses.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	expensehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/expense/handler"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
)

// Register đăng ký route chi phí.
func Register(r *apirouter.Router) error {
	h, err := expensehdl.NewExpenseHandler()
	if err != nil {
		return fmt.Errorf("failed to create expense handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware("")
	adminOnly := middleware.AuthMiddleware("Admin")
	expenses := r.V1Group("/expenses")
	apirouter.RegisterRouteWithMiddleware(expenses, "", "GET", "/", []fiber.Handler{authOnly}, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(expenses, "", "GET", "/:id", []fiber.Handler{authOnly}, h.FindOneById)
	apirouter.RegisterRouteWithMiddleware(expenses, "", "POST", "/", []fiber.Handler{authOnly}, h.InsertOne)
	apirouter.RegisterRouteWithMiddleware(expenses, "", "DELETE", "/:id", []fiber.Handler{adminOnly}, h.SoftDeleteById)

	return nil
}
