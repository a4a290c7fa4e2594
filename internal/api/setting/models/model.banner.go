// Package models - model banner storefront.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner ảnh marketing hiển thị trên website. PublicID là id blob trên
// Cloudinary, dùng để xóa ảnh khi gỡ banner hoặc bù saga khi ghi document lỗi.
type Banner struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FileName  string             `json:"fileName" bson:"fileName"`
	URL       string             `json:"url" bson:"url"`
	PublicID  string             `json:"publicId" bson:"publicId"`
	IsDeleted bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
