// Package inventorydto - DTO đầu vào cho tồn kho.
package inventorydto

// InventoryCreateInput đầu vào tạo/upsert một bản ghi tồn kho.
// Quantity là con trỏ để phân biệt thiếu field (400) với giá trị 0 hợp lệ.
type InventoryCreateInput struct {
	ProductID string `json:"productId" validate:"required,item_id"`
	VariantID string `json:"variantId" validate:"required,item_id"`
	Size      string `json:"size" validate:"required"`
	StockID   string `json:"stockId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,gte=0"`
}

// InventorySetQuantityInput đầu vào ghi đè số lượng tuyệt đối (v1 PUT).
type InventorySetQuantityInput struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}
