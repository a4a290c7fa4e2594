// Package models - model chi phí.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense khoản chi phí vận hành. For là hạng mục chi (điện nước, lương, nhập hàng...).
type Expense struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type" index:"single:1"`
	For       string             `json:"for" bson:"for"`
	Amount    float64            `json:"amount" bson:"amount"`
	Note      string             `json:"note,omitempty" bson:"note,omitempty"`
	IsDeleted bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
