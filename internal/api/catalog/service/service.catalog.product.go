// Package catalogsvc - service catalog master data.
package catalogsvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](collection),
	}, nil
}

// CreateProduct tạo sản phẩm mới: cấp itemId và variantId (uuid) rồi insert.
func (s *ProductService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	product.ItemID = uuid.NewString()
	for i := range product.Variants {
		if product.Variants[i].VariantID == "" {
			product.Variants[i].VariantID = uuid.NewString()
		}
		if product.Variants[i].Sizes == nil {
			product.Variants[i].Sizes = []models.VariantSize{}
		}
	}

	created, err := s.InsertOne(ctx, product)
	if err != nil {
		return created, err
	}
	logrus.WithFields(logrus.Fields{"item_id": created.ItemID, "name": created.Name}).Info("CreateProduct: Đã tạo sản phẩm")
	return created, nil
}

// ReplaceVariants ghi đè cây variant của sản phẩm, giữ nguyên variantId đã có
// và cấp uuid cho variant mới.
func (s *ProductService) ReplaceVariants(ctx context.Context, productID primitive.ObjectID, variants []models.Variant) (models.Product, error) {
	existing, err := s.FindOneById(ctx, productID)
	if err != nil {
		return existing, err
	}

	for i := range variants {
		if variants[i].VariantID == "" {
			variants[i].VariantID = uuid.NewString()
		} else if existing.FindVariant(variants[i].VariantID) == nil {
			return existing, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Variant '%s' không tồn tại trong sản phẩm", variants[i].VariantID),
				common.StatusBadRequest,
				nil,
			)
		}
		if variants[i].Sizes == nil {
			variants[i].Sizes = []models.VariantSize{}
		}
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"variants": variants}}
	return s.UpdateById(ctx, productID, update)
}

// SoftDeleteProduct đánh dấu xóa sản phẩm sau khi kiểm tra không còn tồn kho tham chiếu.
func (s *ProductService) SoftDeleteProduct(ctx context.Context, productID primitive.ObjectID) (models.Product, error) {
	product, err := s.FindOneById(ctx, productID)
	if err != nil {
		return product, err
	}
	if err := basesvc.ValidateBeforeDeleteProduct(ctx, product.ItemID); err != nil {
		return product, err
	}
	return s.SoftDeleteById(ctx, productID)
}

// FindByItemID tìm sản phẩm theo business id.
func (s *ProductService) FindByItemID(ctx context.Context, itemID string) (models.Product, error) {
	return s.FindOne(ctx, map[string]interface{}{"itemId": itemID}, nil)
}
