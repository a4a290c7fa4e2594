package main

import (
	"context"

	"github.com/HewageNKM/NEVER-PANEL-sub001/config"
	authmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	catalogmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	expensemodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/expense/models"
	inventorymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/inventory/models"
	ordermodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	paymentmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/models"
	settingmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/setting/models"
	authsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/database"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"

	// Catalog (sản phẩm + dữ liệu master)
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Brands = "brands"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Sizes = "sizes"
	global.MongoDB_ColNames.Stocks = "stocks"

	// Tồn kho (bộ tứ productId+variantId+size+stockId)
	global.MongoDB_ColNames.Inventory = "inventory"

	// Bán hàng
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.PaymentMethods = "payment_methods"
	global.MongoDB_ColNames.Expenses = "expenses"

	// Storefront
	global.MongoDB_ColNames.Banners = "banners"

	// Hệ thống gửi thông báo (SMS/email)
	global.MongoDB_ColNames.DeliveryQueue = "delivery_queue"
	global.MongoDB_ColNames.DeliveryHistory = "delivery_history"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, exists, order_status, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index` trên model
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	indexModels := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Products, catalogmodels.Product{}},
		{global.MongoDB_ColNames.Brands, catalogmodels.Brand{}},
		{global.MongoDB_ColNames.Categories, catalogmodels.Category{}},
		{global.MongoDB_ColNames.Sizes, catalogmodels.SizeDefinition{}},
		{global.MongoDB_ColNames.Stocks, catalogmodels.StockLocation{}},
		{global.MongoDB_ColNames.Inventory, inventorymodels.InventoryRecord{}},
		{global.MongoDB_ColNames.Orders, ordermodels.Order{}},
		{global.MongoDB_ColNames.PaymentMethods, paymentmodels.PaymentMethod{}},
		{global.MongoDB_ColNames.Expenses, expensemodels.Expense{}},
		{global.MongoDB_ColNames.Banners, settingmodels.Banner{}},
		{global.MongoDB_ColNames.DeliveryQueue, deliverymodels.DeliveryQueueItem{}},
		{global.MongoDB_ColNames.DeliveryHistory, deliverymodels.DeliveryHistory{}},
	}
	for _, im := range indexModels {
		if err := database.CreateIndexes(context.TODO(), db.Collection(im.colName), im.model); err != nil {
			logrus.Errorf("Failed to create indexes for %s: %v", im.colName, err)
		}
	}

	// Index compound/nested không thể khai báo qua tag (unique bộ tứ tồn kho, index báo cáo đơn hàng)
	if err := database.CreateStoreAdditionalIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create additional store indexes: %v", err)
	}
}

// initFirebase khởi tạo Firebase Admin SDK.
// Không fatal khi thiếu config: đăng nhập Firebase sẽ bị từ chối nhưng
// đăng nhập bằng mật khẩu vẫn hoạt động.
func initFirebase() {
	cfg := global.ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}

// InitBaseHooks nối các hàm của auth domain vào base service và middleware
// (tránh import cycle base -> auth). NewUserService đọc collection users từ
// registry nên PHẢI gọi sau InitRegistry.
func InitBaseHooks() {
	basesvc.SetIsAdminFromContextFunc(func(ctx context.Context) (bool, error) {
		return authsvc.IsAdminFromContext(ctx), nil
	})

	userService, err := authsvc.NewUserService()
	if err != nil {
		logrus.Fatalf("Failed to create user service for auth middleware: %v", err)
	}
	middleware.SetUserLookup(userService.MiddlewareLookup())

	logrus.Info("Initialized base service hooks")
}
