package global

import (
	"github.com/HewageNKM/NEVER-PANEL-sub001/config"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users          string // Tên collection cho người dùng admin panel
	Products       string // Tên collection cho sản phẩm (kèm variants nhúng)
	Brands         string // Tên collection cho thương hiệu
	Categories     string // Tên collection cho danh mục sản phẩm
	Sizes          string // Tên collection cho danh mục size
	Stocks         string // Tên collection cho địa điểm kho
	Inventory      string // Tên collection cho tồn kho (bộ tứ productId+variantId+size+stockId)
	Orders         string // Tên collection cho đơn hàng
	PaymentMethods string // Tên collection cho phương thức thanh toán
	Expenses       string // Tên collection cho chi phí vận hành
	Banners        string // Tên collection cho banner storefront
	DeliveryQueue  string // Tên collection cho hàng đợi gửi thông báo (SMS/email)
	DeliveryHistory string // Tên collection cho lịch sử gửi thông báo
}

// Các biến toàn cục
var Validate *validator.Validate                                        // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                       // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                  // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
