// Package models - các model master data của catalog: sản phẩm, thương hiệu, danh mục, size, kho.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại sản phẩm.
const (
	ProductTypeShoes       = "shoes"
	ProductTypeSandals     = "sandals"
	ProductTypeAccessories = "accessories"
)

// Trạng thái sản phẩm.
const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
)

// Thumbnail ảnh đại diện của sản phẩm.
type Thumbnail struct {
	URL  string `json:"url" bson:"url"`
	File string `json:"file,omitempty" bson:"file,omitempty"`
}

// VariantSize số lượng tồn theo size (view nhúng trong variant, tổng hợp từ inventory).
type VariantSize struct {
	Size  string `json:"size" bson:"size"`
	Stock int    `json:"stock" bson:"stock"`
}

// Variant một biến thể (màu/kiểu) của sản phẩm. Tối đa 5 ảnh.
type Variant struct {
	VariantID   string        `json:"variantId" bson:"variantId"`
	VariantName string        `json:"variantName" bson:"variantName"`
	Images      []string      `json:"images" bson:"images"`
	Sizes       []VariantSize `json:"sizes" bson:"sizes"`
}

// Product sản phẩm kèm cây variant nhúng.
// ItemID là business id (uuid) - inventory và order item tham chiếu sản phẩm bằng id này.
type Product struct {
	_Relationships struct{}           `relationship:"collection:inventory,field:productId,message:Không thể xóa sản phẩm vì còn %d bản ghi tồn kho tham chiếu. Vui lòng xóa tồn kho trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ItemID         string             `json:"itemId" bson:"itemId" index:"unique"`
	Type           string             `json:"type" bson:"type"`
	BrandID        primitive.ObjectID `json:"brandId,omitempty" bson:"brandId,omitempty"`
	CategoryID     primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Manufacturer   string             `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	Name           string             `json:"name" bson:"name"`
	BuyingPrice    float64            `json:"buyingPrice" bson:"buyingPrice"`
	SellingPrice   float64            `json:"sellingPrice" bson:"sellingPrice"`
	MarketPrice    float64            `json:"marketPrice" bson:"marketPrice"`
	Discount       float64            `json:"discount" bson:"discount"`
	Tags           []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	Thumbnail      Thumbnail          `json:"thumbnail" bson:"thumbnail"`
	Variants       []Variant          `json:"variants" bson:"variants"`
	Status         string             `json:"status" bson:"status" default:"Active"`
	IsDeleted      bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// FinalPrice giá bán sau giảm giá.
func (p *Product) FinalPrice() float64 {
	return p.SellingPrice * (1 - p.Discount/100)
}

// FindVariant tìm variant theo variantId, trả về nil nếu không có.
func (p *Product) FindVariant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].VariantID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
