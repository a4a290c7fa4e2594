package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// RelationshipCheck định nghĩa một quan hệ cần kiểm tra
type RelationshipCheck struct {
	CollectionName string
	FieldName      string
	ErrorMessage   string
	Optional       bool
}

// CheckRelationshipExists kiểm tra có record nào trong collection khác đang trỏ tới record này không.
// recordID có thể là primitive.ObjectID hoặc string (một số collection tham chiếu bằng id chuỗi).
func CheckRelationshipExists(ctx context.Context, recordID interface{}, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Không thể xóa record vì có %d record trong collection '%s' đang tham chiếu tới record này", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter kiểm tra quan hệ với filter tùy chỉnh
func CheckRelationshipExistsWithFilter(ctx context.Context, filter bson.M, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, exists := global.RegistryCollections.Get(check.CollectionName)
		if !exists {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Không tìm thấy collection '%s' để kiểm tra quan hệ", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count > 0 {
			errorMsg := check.ErrorMessage
			if errorMsg == "" {
				errorMsg = fmt.Sprintf("Không thể xóa record vì có %d record trong collection '%s' đang tham chiếu tới record này", count, check.CollectionName)
			} else {
				errorMsg = fmt.Sprintf(check.ErrorMessage, count)
			}
			return common.NewError(common.ErrCodeBusinessOperation, errorMsg, common.StatusConflict, nil)
		}
	}
	return nil
}

// GetRelationshipCount trả về số lượng record đang tham chiếu tới record này
func GetRelationshipCount(ctx context.Context, recordID interface{}, collectionName, fieldName string) (int64, error) {
	collection, exists := global.RegistryCollections.Get(collectionName)
	if !exists {
		return 0, common.NewError(common.ErrCodeInternalServer, fmt.Sprintf("Không tìm thấy collection '%s'", collectionName), common.StatusInternalServerError, nil)
	}
	filter := bson.M{fieldName: recordID}
	return collection.CountDocuments(ctx, filter)
}

// ValidateBeforeDeleteStock kiểm tra các quan hệ của Stock location trước khi xóa
func ValidateBeforeDeleteStock(ctx context.Context, stockID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Inventory, FieldName: "stockId", ErrorMessage: "Không thể xóa kho vì có %d dòng tồn kho đang thuộc kho này. Vui lòng chuyển hoặc xóa tồn kho trước."},
	}
	return CheckRelationshipExists(ctx, stockID, checks)
}

// ValidateBeforeDeleteBrand kiểm tra các quan hệ của Brand trước khi xóa
func ValidateBeforeDeleteBrand(ctx context.Context, brandID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "brandId", ErrorMessage: "Không thể xóa thương hiệu vì có %d sản phẩm đang thuộc thương hiệu này."},
	}
	return CheckRelationshipExists(ctx, brandID, checks)
}

// ValidateBeforeDeleteCategory kiểm tra các quan hệ của Category trước khi xóa
func ValidateBeforeDeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Products, FieldName: "categoryId", ErrorMessage: "Không thể xóa danh mục vì có %d sản phẩm đang thuộc danh mục này."},
	}
	return CheckRelationshipExists(ctx, categoryID, checks)
}

// ValidateBeforeDeletePaymentMethod kiểm tra các quan hệ của PaymentMethod trước khi xóa
func ValidateBeforeDeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Orders, FieldName: "paymentMethodId", ErrorMessage: "Không thể xóa phương thức thanh toán vì có %d đơn hàng đang sử dụng."},
	}
	return CheckRelationshipExists(ctx, paymentMethodID, checks)
}

// ValidateBeforeDeleteProduct kiểm tra các quan hệ của Product trước khi xóa
func ValidateBeforeDeleteProduct(ctx context.Context, productID string) error {
	checks := []RelationshipCheck{
		{CollectionName: global.MongoDB_ColNames.Inventory, FieldName: "productId", ErrorMessage: "Không thể xóa sản phẩm vì còn %d dòng tồn kho. Vui lòng xóa tồn kho trước."},
	}
	return CheckRelationshipExists(ctx, productID, checks)
}
