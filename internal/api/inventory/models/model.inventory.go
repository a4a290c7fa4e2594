// Package models - model tồn kho. Mỗi bản ghi là một bộ tứ
// (productId, variantId, size, stockId) duy nhất kèm số lượng.
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryRecord tồn kho của một size thuộc một variant tại một kho.
// Unique compound index trên bộ tứ được tạo trong database init.
type InventoryRecord struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	VariantID string             `json:"variantId" bson:"variantId"`
	Size      string             `json:"size" bson:"size"`
	StockID   primitive.ObjectID `json:"stockId" bson:"stockId"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	IsDeleted bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// TupleFilter filter Mongo khớp đúng bộ tứ của bản ghi.
func (r *InventoryRecord) TupleFilter() bson.M {
	return bson.M{
		"productId": r.ProductID,
		"variantId": r.VariantID,
		"size":      r.Size,
		"stockId":   r.StockID,
	}
}
