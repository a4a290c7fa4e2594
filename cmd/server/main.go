package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/delivery"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/search"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/worker"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initBackgroundWorkers nối các subscriber sự kiện dữ liệu và khởi động
// các worker nền: gửi SMS/email từ hàng đợi và retry đồng bộ Elasticsearch.
func initBackgroundWorkers(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	// Hàng đợi gửi thông báo + subscriber đơn hàng đổi trạng thái
	queue, err := delivery.NewQueue()
	if err != nil {
		log.WithError(err).Error("Failed to create delivery queue, continuing without order notifications")
	} else {
		delivery.RegisterOrderNotifications(queue)

		deliveryWorker, err := worker.NewDeliveryWorker(15*time.Second, 20)
		if err != nil {
			log.WithError(err).Error("Failed to create delivery worker, continuing without delivery worker")
		} else {
			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("Delivery worker goroutine panic")
					}
				}()
				deliveryWorker.Start(ctx)
			}()
			log.Info("Delivery worker started")
		}
	}

	// Đồng bộ sản phẩm sang Elasticsearch (tắt khi không có address)
	indexer, err := search.NewProductIndexer(cfg.ElasticsearchAddress, cfg.ElasticsearchAPIKey, cfg.ProductIndexName)
	if err != nil {
		log.WithError(err).Error("Failed to create product indexer, continuing without search sync")
		return
	}
	if indexer == nil {
		log.Info("Elasticsearch not configured, search sync disabled")
		return
	}
	search.RegisterProductSync(indexer)

	syncWorker := worker.NewSearchSyncWorker(indexer, 1*time.Minute)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic": r,
				}).Error("Search sync worker goroutine panic")
			}
		}()
		syncWorker.Start(ctx)
	}()
	log.Info("Search sync worker started")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app := InitFiberApp()

	// Khởi động server với cấu hình listen
	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.Info("Starting Fiber server...")

	// Helper function để resolve đường dẫn tương đối từ thư mục gốc project
	resolvePath := func(path string) string {
		if filepath.IsAbs(path) {
			return path
		}
		currentDir, err := os.Getwd()
		if err != nil {
			return path
		}
		for {
			envDir := filepath.Join(currentDir, "config", "env")
			if _, err := os.Stat(envDir); err == nil {
				return filepath.Join(currentDir, path)
			}
			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				return path
			}
			currentDir = parentDir
		}
	}

	// Kiểm tra xem có bật TLS không
	if cfg.EnableTLS && cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		certPath := resolvePath(cfg.TLSCertFile)
		keyPath := resolvePath(cfg.TLSKeyFile)

		if _, err := os.Stat(certPath); os.IsNotExist(err) {
			log.Fatalf("TLS certificate file not found: %s (resolved from: %s)", certPath, cfg.TLSCertFile)
		}
		if _, err := os.Stat(keyPath); os.IsNotExist(err) {
			log.Fatalf("TLS key file not found: %s (resolved from: %s)", keyPath, cfg.TLSKeyFile)
		}

		cert, err := tls.LoadX509KeyPair(certPath, keyPath)
		if err != nil {
			log.Fatalf("Error loading TLS certificate: %v", err)
		}

		ln, err := net.Listen("tcp", address)
		if err != nil {
			log.Fatalf("Error creating listener: %v", err)
		}

		tlsConfig := &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}

		tlsListener := tls.NewListener(ln, tlsConfig)

		log.WithFields(map[string]interface{}{
			"address": address,
			"cert":    certPath,
			"key":     keyPath,
		}).Info("Starting server with HTTPS/TLS")

		if err := app.Listener(tlsListener); err != nil {
			log.Fatalf("Error in Fiber Listener with TLS: %v", err)
		}
	} else {
		log.WithFields(map[string]interface{}{
			"address":  address,
			"protocol": "HTTP",
		}).Info("Starting server with HTTP")

		listenConfig := fiber.ListenConfig{}
		if err := app.Listen(address, listenConfig); err != nil {
			log.Fatalf("Error in Fiber Listen: %v", err)
		}
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Nối auth domain vào base service (cần registry đã có collection users)
	InitBaseHooks()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Khởi động subscriber và các worker nền
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	initBackgroundWorkers(ctx)

	// Chạy Fiber server trên main thread
	main_thread()
}
