// Package inventorysvc - service tồn kho.
package inventorysvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/models"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	catalogmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// InventoryStore là interface cho layer handler (cho phép test với spy store).
type InventoryStore interface {
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[models.InventoryRecord], error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (models.InventoryRecord, error)
	UpsertTuple(ctx context.Context, record models.InventoryRecord) (models.InventoryRecord, error)
	SetQuantityById(ctx context.Context, id primitive.ObjectID, quantity int) (models.InventoryRecord, error)
	SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.InventoryRecord, error)
}

// InventoryService service tồn kho thật, đọc/ghi Mongo.
// Ghi số lượng dùng ngữ nghĩa tuyệt đối (set, không cộng dồn); hai admin
// ghi đồng thời cùng bộ tứ thì write sau thắng.
type InventoryService struct {
	*basesvc.BaseServiceMongoImpl[models.InventoryRecord]
	productService *basesvc.BaseServiceMongoImpl[catalogmodels.Product]
	stockService   *basesvc.BaseServiceMongoImpl[catalogmodels.StockLocation]
}

// NewInventoryService tạo mới InventoryService
func NewInventoryService() (*InventoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Inventory)
	if !exist {
		return nil, fmt.Errorf("failed to get inventory collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	stockCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Stocks)
	if !exist {
		return nil, fmt.Errorf("failed to get stocks collection: %v", common.ErrNotFound)
	}
	return &InventoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.InventoryRecord](collection),
		productService:       basesvc.NewBaseServiceMongo[catalogmodels.Product](productCollection),
		stockService:         basesvc.NewBaseServiceMongo[catalogmodels.StockLocation](stockCollection),
	}, nil
}

// UpsertTuple upsert theo bộ tứ: bản ghi đã có thì ghi đè quantity, chưa có thì tạo mới.
// Kiểm tra sản phẩm + variant + kho tồn tại trước khi ghi.
func (s *InventoryService) UpsertTuple(ctx context.Context, record models.InventoryRecord) (models.InventoryRecord, error) {
	if err := s.validateReferences(ctx, &record); err != nil {
		var zero models.InventoryRecord
		return zero, err
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"quantity":  record.Quantity,
			"isDeleted": false,
		},
		SetOnInsert: map[string]interface{}{
			"productId": record.ProductID,
			"variantId": record.VariantID,
			"size":      record.Size,
			"stockId":   record.StockID,
		},
	}
	result, err := s.Upsert(ctx, record.TupleFilter(), update)
	if err != nil {
		return result, err
	}

	if err := s.syncProductSizes(ctx, record.ProductID); err != nil {
		logrus.WithFields(logrus.Fields{"product_id": record.ProductID, "error": err.Error()}).Warn("UpsertTuple: Lỗi đồng bộ sizes vào sản phẩm")
	}
	return result, nil
}

// SetQuantityById ghi đè số lượng tuyệt đối của một bản ghi tồn kho (v1 PUT).
func (s *InventoryService) SetQuantityById(ctx context.Context, id primitive.ObjectID, quantity int) (models.InventoryRecord, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"quantity": quantity}}
	record, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return record, err
	}
	if err := s.syncProductSizes(ctx, record.ProductID); err != nil {
		logrus.WithFields(logrus.Fields{"product_id": record.ProductID, "error": err.Error()}).Warn("SetQuantityById: Lỗi đồng bộ sizes vào sản phẩm")
	}
	return record, nil
}

// SoftDeleteById đánh dấu xóa bản ghi tồn kho rồi đồng bộ lại view sizes của sản phẩm.
func (s *InventoryService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.InventoryRecord, error) {
	record, err := s.BaseServiceMongoImpl.SoftDeleteById(ctx, id)
	if err != nil {
		return record, err
	}
	if err := s.syncProductSizes(ctx, record.ProductID); err != nil {
		logrus.WithFields(logrus.Fields{"product_id": record.ProductID, "error": err.Error()}).Warn("SoftDeleteById: Lỗi đồng bộ sizes vào sản phẩm")
	}
	return record, nil
}

// validateReferences kiểm tra sản phẩm, variant và kho được tham chiếu có tồn tại.
func (s *InventoryService) validateReferences(ctx context.Context, record *models.InventoryRecord) error {
	product, err := s.productService.FindOne(ctx, bson.M{"itemId": record.ProductID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Sản phẩm '%s' không tồn tại", record.ProductID), common.StatusBadRequest, nil)
		}
		return err
	}
	if product.FindVariant(record.VariantID) == nil {
		return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Variant '%s' không tồn tại trong sản phẩm '%s'", record.VariantID, record.ProductID), common.StatusBadRequest, nil)
	}
	if _, err := s.stockService.FindOneById(ctx, record.StockID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Kho '%s' không tồn tại", record.StockID.Hex()), common.StatusBadRequest, nil)
		}
		return err
	}
	return nil
}

// syncProductSizes tổng hợp tồn kho (cộng dồn mọi kho) và ghi vào view
// variants[].sizes của sản phẩm.
func (s *InventoryService) syncProductSizes(ctx context.Context, productID string) error {
	product, err := s.productService.FindOne(ctx, bson.M{"itemId": productID}, nil)
	if err != nil {
		return err
	}

	records, err := s.Find(ctx, basesvc.NotDeletedFilter(bson.M{"productId": productID}), nil)
	if err != nil {
		return err
	}

	// variantId -> size -> tổng quantity
	totals := make(map[string]map[string]int)
	for _, r := range records {
		if totals[r.VariantID] == nil {
			totals[r.VariantID] = make(map[string]int)
		}
		totals[r.VariantID][r.Size] += r.Quantity
	}

	for i := range product.Variants {
		variantTotals := totals[product.Variants[i].VariantID]
		sizes := make([]catalogmodels.VariantSize, 0, len(variantTotals))
		for _, existing := range product.Variants[i].Sizes {
			if qty, ok := variantTotals[existing.Size]; ok {
				sizes = append(sizes, catalogmodels.VariantSize{Size: existing.Size, Stock: qty})
				delete(variantTotals, existing.Size)
			}
		}
		for size, qty := range variantTotals {
			sizes = append(sizes, catalogmodels.VariantSize{Size: size, Stock: qty})
		}
		product.Variants[i].Sizes = sizes
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"variants": product.Variants}}
	_, err = s.productService.UpdateById(ctx, product.ID, update)
	return err
}
