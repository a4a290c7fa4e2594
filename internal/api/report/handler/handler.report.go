// Package reporthdl - handler báo cáo.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	reportsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/utility"
)

// ReportHandler xử lý các request báo cáo
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{reportService: reportService}, nil
}

// HandleSales GET /reports/sales?from=&to=&granularity=daily|monthly
func (h *ReportHandler) HandleSales(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		from := utility.P2Int64(c.Query("from"))
		to := utility.P2Int64(c.Query("to"))
		granularity := c.Query("granularity", reportsvc.GranularityDaily)
		result, err := h.reportService.GetSalesReport(c.Context(), from, to, granularity)
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// HandleStock GET /reports/stock
func (h *ReportHandler) HandleStock(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.reportService.GetStockReport(c.Context())
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// HandleCash GET /reports/cash?from=&to=
func (h *ReportHandler) HandleCash(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		from := utility.P2Int64(c.Query("from"))
		to := utility.P2Int64(c.Query("to"))
		result, err := h.reportService.GetCashReport(c.Context(), from, to)
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// HandleExpense GET /reports/expense?from=&to=
func (h *ReportHandler) HandleExpense(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		from := utility.P2Int64(c.Query("from"))
		to := utility.P2Int64(c.Query("to"))
		result, err := h.reportService.GetExpenseReport(c.Context(), from, to)
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// HandleDailyOverview GET /reports/overview/daily
func (h *ReportHandler) HandleDailyOverview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.reportService.GetDailyOverview(c.Context())
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// HandleMonthlyOverview GET /reports/overview/monthly
func (h *ReportHandler) HandleMonthlyOverview(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		result, err := h.reportService.GetMonthlyOverview(c.Context())
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}
