// Package expensehdl - handler chi phí.
package expensehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	expensedto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/expense/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/expense/models"
	expensesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/expense/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/utility"
)

// ExpenseHandler xử lý các request chi phí
type ExpenseHandler struct {
	*basehdl.BaseHandler[models.Expense, expensedto.ExpenseCreateInput, expensedto.ExpenseUpdateInput]
	expenseService *expensesvc.ExpenseService
}

// NewExpenseHandler tạo instance mới của ExpenseHandler
func NewExpenseHandler() (*ExpenseHandler, error) {
	expenseService, err := expensesvc.NewExpenseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create expense service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Expense, expensedto.ExpenseCreateInput, expensedto.ExpenseUpdateInput](expenseService)
	return &ExpenseHandler{
		BaseHandler:    baseHandler,
		expenseService: expenseService,
	}, nil
}

// HandleList GET danh sách chi phí, filter theo type/for và khoảng thời gian.
func (h *ExpenseHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		filter := basesvc.NotDeletedFilter(nil)
		if expenseType := c.Query("type"); expenseType != "" {
			filter["type"] = expenseType
		}
		if expenseFor := c.Query("for"); expenseFor != "" {
			filter["for"] = expenseFor
		}
		if from := c.Query("from"); from != "" {
			fromMs := utility.P2Int64(from)
			toMs := utility.P2Int64(c.Query("to"))
			rangeFilter := bson.M{"$gte": fromMs}
			if toMs > 0 {
				rangeFilter["$lte"] = toMs
			}
			filter["createdAt"] = rangeFilter
		}

		page, limit := h.ParsePagination(c)
		result, err := h.expenseService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// InsertOne tạo chi phí mới.
func (h *ExpenseHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input expensedto.ExpenseCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		expense, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		created, err := h.expenseService.InsertOne(c.Context(), *expense)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "expense", created.ID.Hex(), c, map[string]interface{}{"type": created.Type, "amount": created.Amount})
		h.HandleResponse(c, created, nil)
		return nil
	})
}
