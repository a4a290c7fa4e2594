// Package expensesvc - service chi phí.
package expensesvc

import (
	"fmt"

	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/expense/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// ExpenseService service chi phí.
type ExpenseService struct {
	*basesvc.BaseServiceMongoImpl[models.Expense]
}

// NewExpenseService tạo mới ExpenseService
func NewExpenseService() (*ExpenseService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Expenses)
	if !exist {
		return nil, fmt.Errorf("failed to get expenses collection: %v", common.ErrNotFound)
	}
	return &ExpenseService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Expense](collection)}, nil
}
