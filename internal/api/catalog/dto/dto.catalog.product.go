// Package catalogdto - DTO đầu vào cho catalog master data.
package catalogdto

import (
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// VariantSizeInput số lượng theo size trong variant.
type VariantSizeInput struct {
	Size  string `json:"size" validate:"required"`
	Stock int    `json:"stock" validate:"gte=0"`
}

// VariantInput đầu vào một biến thể sản phẩm. VariantID rỗng khi tạo mới (server cấp uuid).
type VariantInput struct {
	VariantID   string             `json:"variantId" validate:"omitempty"`
	VariantName string             `json:"variantName" validate:"required"`
	Images      []string           `json:"images" validate:"max=5,dive,required"`
	Sizes       []VariantSizeInput `json:"sizes" validate:"dive"`
}

// ThumbnailInput ảnh đại diện.
type ThumbnailInput struct {
	URL  string `json:"url" validate:"required"`
	File string `json:"file" validate:"omitempty"`
}

// ProductCreateInput đầu vào tạo sản phẩm.
type ProductCreateInput struct {
	Type         string         `json:"type" validate:"required,oneof=shoes sandals accessories"`
	BrandID      string         `json:"brandId" validate:"omitempty" transform:"str_objectid,optional,map=BrandID"`
	CategoryID   string         `json:"categoryId" validate:"omitempty" transform:"str_objectid,optional,map=CategoryID"`
	Manufacturer string         `json:"manufacturer" validate:"omitempty,no_xss"`
	Name         string         `json:"name" validate:"required,no_xss"`
	BuyingPrice  float64        `json:"buyingPrice" validate:"gte=0"`
	SellingPrice float64        `json:"sellingPrice" validate:"gte=0"`
	MarketPrice  float64        `json:"marketPrice" validate:"gte=0"`
	Discount     float64        `json:"discount" validate:"gte=0,lte=100"`
	Tags         []string       `json:"tags" validate:"omitempty"`
	Thumbnail    ThumbnailInput `json:"thumbnail" validate:"required"`
	Variants     []VariantInput `json:"variants" validate:"required,min=1,dive"`
	Status       string         `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ValidatePricing kiểm tra giá bán sau giảm không âm.
func (in *ProductCreateInput) ValidatePricing() error {
	final := in.SellingPrice * (1 - in.Discount/100)
	if final < 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Giá bán sau giảm giá không được âm",
			common.StatusBadRequest,
			map[string]interface{}{"sellingPrice": in.SellingPrice, "discount": in.Discount},
		)
	}
	return nil
}

// ProductUpdateInput đầu vào cập nhật sản phẩm (partial, field rỗng bị bỏ qua).
type ProductUpdateInput struct {
	Type         string          `json:"type" validate:"omitempty,oneof=shoes sandals accessories"`
	BrandID      string          `json:"brandId" validate:"omitempty" transform:"str_objectid,optional,map=BrandID"`
	CategoryID   string          `json:"categoryId" validate:"omitempty" transform:"str_objectid,optional,map=CategoryID"`
	Manufacturer string          `json:"manufacturer" validate:"omitempty,no_xss"`
	Name         string          `json:"name" validate:"omitempty,no_xss"`
	BuyingPrice  *float64        `json:"buyingPrice" validate:"omitempty,gte=0"`
	SellingPrice *float64        `json:"sellingPrice" validate:"omitempty,gte=0"`
	MarketPrice  *float64        `json:"marketPrice" validate:"omitempty,gte=0"`
	Discount     *float64        `json:"discount" validate:"omitempty,gte=0,lte=100"`
	Tags         []string        `json:"tags" validate:"omitempty"`
	Thumbnail    *ThumbnailInput `json:"thumbnail" validate:"omitempty"`
	Variants     []VariantInput  `json:"variants" validate:"omitempty,dive"`
	Status       string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}
