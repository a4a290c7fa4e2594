// Package models - model phương thức thanh toán.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethod phương thức thanh toán. PaymentID là business id
// (đơn hàng tham chiếu bằng id này). Bản ghi "Cash" được seed với isSystem.
type PaymentMethod struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PaymentID   string             `json:"paymentId" bson:"paymentId" index:"unique"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Fee         float64            `json:"fee" bson:"fee"`
	Status      string             `json:"status" bson:"status" default:"Active"`
	Available   []string           `json:"available,omitempty" bson:"available,omitempty"`
	IsSystem    bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	IsDeleted   bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
