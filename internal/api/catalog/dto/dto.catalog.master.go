package catalogdto

// BrandCreateInput đầu vào tạo thương hiệu.
type BrandCreateInput struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// BrandUpdateInput đầu vào cập nhật thương hiệu.
type BrandUpdateInput struct {
	Name   string `json:"name" validate:"omitempty"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// CategoryCreateInput đầu vào tạo danh mục.
type CategoryCreateInput struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục.
type CategoryUpdateInput struct {
	Name   string `json:"name" validate:"omitempty"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// SizeCreateInput đầu vào tạo size.
type SizeCreateInput struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// SizeUpdateInput đầu vào cập nhật size.
type SizeUpdateInput struct {
	Name   string `json:"name" validate:"omitempty"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// StockCreateInput đầu vào tạo địa điểm kho.
type StockCreateInput struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"omitempty"`
	Status  *bool  `json:"status" validate:"omitempty"`
}

// StockUpdateInput đầu vào cập nhật địa điểm kho.
type StockUpdateInput struct {
	Name    string `json:"name" validate:"omitempty"`
	Address string `json:"address" validate:"omitempty"`
	Status  *bool  `json:"status" validate:"omitempty"`
}
