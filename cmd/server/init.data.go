package main

import (
	"context"
	"time"

	authmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	paymentmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/models"
	paymentsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/service"
	authsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed dữ liệu mặc định: admin từ Firebase UID (nếu có config)
// và phương thức thanh toán Cash (isSystem, không thể xóa). Idempotent - chạy
// lại không tạo trùng.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Seed chạy trước khi có user đăng nhập nên phải nới guard isSystem
	ctx = basesvc.WithSystemDataInsertAllowed(ctx)

	// INITMODE: lần provision đầu tiên, seed thất bại là fatal
	strict := global.ServerConfig.InitMode

	if err := seedAdminUser(ctx); err != nil {
		if strict {
			log.Fatalf("Failed to initialize admin user: %v", err)
		}
		log.Warnf("Failed to initialize admin user: %v", err)
	}

	if err := seedCashPaymentMethod(ctx); err != nil {
		if strict {
			log.Fatalf("Failed to initialize Cash payment method: %v", err)
		}
		log.Warnf("Failed to initialize Cash payment method: %v", err)
	}

	log.Info("InitDefaultData completed")
}

// seedAdminUser tạo user admin mặc định từ FIREBASE_ADMIN_UID (nếu có).
// User phải đã tồn tại trong Firebase Authentication; bản ghi local chỉ
// gắn role Admin cho UID đó.
func seedAdminUser(ctx context.Context) error {
	log := logger.GetAppLogger()

	adminUID := global.ServerConfig.FirebaseAdminUID
	if adminUID == "" {
		log.Info("FIREBASE_ADMIN_UID not set, skipping admin seed")
		return nil
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		return err
	}

	count, err := userService.CountDocuments(ctx, bson.M{"firebaseUid": adminUID})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Admin user already exists, skipping seed")
		return nil
	}

	admin := authmodels.User{
		Name:        "Administrator",
		Role:        authmodels.RoleAdmin,
		Status:      "Active",
		FirebaseUID: adminUID,
		IsSystem:    true,
	}
	if _, err := userService.InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Infof("Admin user seeded from Firebase UID %s", adminUID)
	return nil
}

// seedCashPaymentMethod tạo phương thức thanh toán Cash hệ thống (POS luôn cần).
func seedCashPaymentMethod(ctx context.Context) error {
	log := logger.GetAppLogger()

	paymentService, err := paymentsvc.NewPaymentMethodService()
	if err != nil {
		return err
	}

	count, err := paymentService.CountDocuments(ctx, bson.M{"name": "Cash", "isSystem": true})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Cash payment method already exists, skipping seed")
		return nil
	}

	cash := paymentmodels.PaymentMethod{
		Name:        "Cash",
		Description: "Thanh toán tiền mặt tại quầy",
		Fee:         0,
		Status:      "Active",
		IsSystem:    true,
	}
	if _, err := paymentService.CreatePaymentMethod(ctx, cash); err != nil {
		return err
	}

	log.Info("Cash payment method seeded")
	return nil
}
