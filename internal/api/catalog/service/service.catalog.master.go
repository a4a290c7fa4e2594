package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// BrandService service thương hiệu.
type BrandService struct {
	*basesvc.BaseServiceMongoImpl[models.Brand]
}

// NewBrandService tạo mới BrandService
func NewBrandService() (*BrandService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Brands)
	if !exist {
		return nil, fmt.Errorf("failed to get brands collection: %v", common.ErrNotFound)
	}
	return &BrandService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Brand](collection)}, nil
}

// SoftDeleteById đánh dấu xóa thương hiệu sau khi kiểm tra không còn sản phẩm tham chiếu.
func (s *BrandService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.Brand, error) {
	if err := basesvc.ValidateBeforeDeleteBrand(ctx, id); err != nil {
		var zero models.Brand
		return zero, err
	}
	return s.BaseServiceMongoImpl.SoftDeleteById(ctx, id)
}

// CategoryService service danh mục.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](collection)}, nil
}

// SoftDeleteById đánh dấu xóa danh mục sau khi kiểm tra không còn sản phẩm tham chiếu.
func (s *CategoryService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	if err := basesvc.ValidateBeforeDeleteCategory(ctx, id); err != nil {
		var zero models.Category
		return zero, err
	}
	return s.BaseServiceMongoImpl.SoftDeleteById(ctx, id)
}

// SizeService service danh mục size.
type SizeService struct {
	*basesvc.BaseServiceMongoImpl[models.SizeDefinition]
}

// NewSizeService tạo mới SizeService
func NewSizeService() (*SizeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sizes)
	if !exist {
		return nil, fmt.Errorf("failed to get sizes collection: %v", common.ErrNotFound)
	}
	return &SizeService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SizeDefinition](collection)}, nil
}

// StockService service địa điểm kho.
type StockService struct {
	*basesvc.BaseServiceMongoImpl[models.StockLocation]
}

// NewStockService tạo mới StockService
func NewStockService() (*StockService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stocks)
	if !exist {
		return nil, fmt.Errorf("failed to get stocks collection: %v", common.ErrNotFound)
	}
	return &StockService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StockLocation](collection)}, nil
}

// SoftDeleteById đánh dấu xóa kho sau khi kiểm tra không còn bản ghi tồn kho tham chiếu.
func (s *StockService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.StockLocation, error) {
	if err := basesvc.ValidateBeforeDeleteStock(ctx, id); err != nil {
		var zero models.StockLocation
		return zero, err
	}
	return s.BaseServiceMongoImpl.SoftDeleteById(ctx, id)
}
