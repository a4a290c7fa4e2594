package cataloghdl

import (
	"fmt"

	catalogdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	catalogsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/service"
	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
)

// BrandHandler xử lý các request thương hiệu
type BrandHandler struct {
	*basehdl.BaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput]
}

// NewBrandHandler tạo instance mới của BrandHandler
func NewBrandHandler() (*BrandHandler, error) {
	service, err := catalogsvc.NewBrandService()
	if err != nil {
		return nil, fmt.Errorf("failed to create brand service: %v", err)
	}
	return &BrandHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Brand, catalogdto.BrandCreateInput, catalogdto.BrandUpdateInput](service),
	}, nil
}

// CategoryHandler xử lý các request danh mục
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	return &CategoryHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](service),
	}, nil
}

// SizeHandler xử lý các request danh mục size
type SizeHandler struct {
	*basehdl.BaseHandler[models.SizeDefinition, catalogdto.SizeCreateInput, catalogdto.SizeUpdateInput]
}

// NewSizeHandler tạo instance mới của SizeHandler
func NewSizeHandler() (*SizeHandler, error) {
	service, err := catalogsvc.NewSizeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create size service: %v", err)
	}
	return &SizeHandler{
		BaseHandler: basehdl.NewBaseHandler[models.SizeDefinition, catalogdto.SizeCreateInput, catalogdto.SizeUpdateInput](service),
	}, nil
}

// StockHandler xử lý các request địa điểm kho
type StockHandler struct {
	*basehdl.BaseHandler[models.StockLocation, catalogdto.StockCreateInput, catalogdto.StockUpdateInput]
}

// NewStockHandler tạo instance mới của StockHandler
func NewStockHandler() (*StockHandler, error) {
	service, err := catalogsvc.NewStockService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stock service: %v", err)
	}
	return &StockHandler{
		BaseHandler: basehdl.NewBaseHandler[models.StockLocation, catalogdto.StockCreateInput, catalogdto.StockUpdateInput](service),
	}, nil
}
