// Package router đăng ký route báo cáo dưới /api/v1/reports.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	reporthdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/handler"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
)

// Register đăng ký route báo cáo.
func Register(r *apirouter.Router) error {
	h, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware("")
	reports := r.V1Group("/reports")
	apirouter.RegisterRouteWithMiddleware(reports, "", "GET", "/sales", []fiber.Handler{authOnly}, h.HandleSales)
	apirouter.RegisterRouteWithMiddleware(reports, "", "GET", "/stock", []fiber.Handler{authOnly}, h.HandleStock)
	apirouter.RegisterRouteWithMiddleware(reports, "", "GET", "/cash", []fiber.Handler{authOnly}, h.HandleCash)
	apirouter.RegisterRouteWithMiddleware(reports, "", "GET", "/expense", []fiber.Handler{authOnly}, h.HandleExpense)
	apirouter.RegisterRouteWithMiddleware(reports, "", "GET", "/overview/daily", []fiber.Handler{authOnly}, h.HandleDailyOverview)
	apirouter.RegisterRouteWithMiddleware(reports, "", "GET", "/overview/monthly", []fiber.Handler{authOnly}, h.HandleMonthlyOverview)

	return nil
}
