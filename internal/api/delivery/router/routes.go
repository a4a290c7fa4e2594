// Package router đăng ký route gửi thông báo dưới /api/v1/sms.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	deliveryhdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/handler"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
)

// Register đăng ký route gửi SMS thủ công.
func Register(r *apirouter.Router) error {
	h, err := deliveryhdl.NewSMSHandler()
	if err != nil {
		return fmt.Errorf("failed to create sms handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware("")
	sms := r.V1Group("/sms")
	apirouter.RegisterRouteWithMiddleware(sms, "", "POST", "/", []fiber.Handler{authOnly}, h.HandleSend)

	return nil
}
