// Package router đăng ký route tồn kho cho cả /api/v1/inventory và /api/v2/inventory.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	inventoryhdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/handler"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
)

// Register đăng ký route tồn kho.
// v1 PUT ghi đè số lượng tuyệt đối theo id; v2 PUT upsert theo bộ tứ.
func Register(r *apirouter.Router) error {
	h, err := inventoryhdl.NewInventoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create inventory handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware("")

	v1 := r.V1Group("/inventory")
	apirouter.RegisterRouteWithMiddleware(v1, "", "GET", "/", []fiber.Handler{authOnly}, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "", "GET", "/:id", []fiber.Handler{authOnly}, h.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v1, "", "POST", "/", []fiber.Handler{authOnly}, h.HandleUpsert)
	apirouter.RegisterRouteWithMiddleware(v1, "", "PUT", "/:id", []fiber.Handler{authOnly}, h.HandleSetQuantity)
	apirouter.RegisterRouteWithMiddleware(v1, "", "DELETE", "/:id", []fiber.Handler{authOnly}, h.HandleDelete)

	v2 := r.V2Group("/inventory")
	apirouter.RegisterRouteWithMiddleware(v2, "", "GET", "/", []fiber.Handler{authOnly}, h.HandleList)
	apirouter.RegisterRouteWithMiddleware(v2, "", "GET", "/:id", []fiber.Handler{authOnly}, h.HandleGetById)
	apirouter.RegisterRouteWithMiddleware(v2, "", "POST", "/", []fiber.Handler{authOnly}, h.HandleUpsert)
	apirouter.RegisterRouteWithMiddleware(v2, "", "PUT", "/:id", []fiber.Handler{authOnly}, h.HandleUpsert)
	apirouter.RegisterRouteWithMiddleware(v2, "", "DELETE", "/:id", []fiber.Handler{authOnly}, h.HandleDelete)

	return nil
}
