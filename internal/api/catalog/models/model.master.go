package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand thương hiệu sản phẩm (nguồn dropdown cho admin panel).
type Brand struct {
	_Relationships struct{}           `relationship:"collection:products,field:brandId,message:Không thể xóa thương hiệu vì còn %d sản phẩm tham chiếu. Vui lòng chuyển sản phẩm sang thương hiệu khác trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Status         string             `json:"status" bson:"status" default:"Active"`
	IsDeleted      bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Category danh mục sản phẩm.
type Category struct {
	_Relationships struct{}           `relationship:"collection:products,field:categoryId,message:Không thể xóa danh mục vì còn %d sản phẩm tham chiếu. Vui lòng chuyển sản phẩm sang danh mục khác trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Status         string             `json:"status" bson:"status" default:"Active"`
	IsDeleted      bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// SizeDefinition danh mục size (40, 41, M, L...).
type SizeDefinition struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Status    string             `json:"status" bson:"status" default:"Active"`
	IsDeleted bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// StockLocation địa điểm kho hàng.
type StockLocation struct {
	_Relationships struct{}           `relationship:"collection:inventory,field:stockId,message:Không thể xóa kho vì còn %d bản ghi tồn kho tham chiếu. Vui lòng xóa tồn kho trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Status         bool               `json:"status" bson:"status" default:"true"`
	IsDeleted      bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
