package reportsvc

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// ReportService query trực tiếp các collection nghiệp vụ, không giữ state.
type ReportService struct {
	orders    *mongo.Collection
	inventory *mongo.Collection
	products  *mongo.Collection
	stocks    *mongo.Collection
	expenses  *mongo.Collection
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	s := &ReportService{}
	for _, bind := range []struct {
		name string
		dst  **mongo.Collection
	}{
		{global.MongoDB_ColNames.Orders, &s.orders},
		{global.MongoDB_ColNames.Inventory, &s.inventory},
		{global.MongoDB_ColNames.Products, &s.products},
		{global.MongoDB_ColNames.Stocks, &s.stocks},
		{global.MongoDB_ColNames.Expenses, &s.expenses},
	} {
		coll, exist := global.RegistryCollections.Get(bind.name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %v", bind.name, common.ErrNotFound)
		}
		*bind.dst = coll
	}
	return s, nil
}
