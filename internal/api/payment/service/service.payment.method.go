// Package paymentsvc - service phương thức thanh toán.
package paymentsvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/payment/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// PaymentMethodService service phương thức thanh toán.
type PaymentMethodService struct {
	*basesvc.BaseServiceMongoImpl[models.PaymentMethod]
}

// NewPaymentMethodService tạo mới PaymentMethodService
func NewPaymentMethodService() (*PaymentMethodService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PaymentMethods)
	if !exist {
		return nil, fmt.Errorf("failed to get payment_methods collection: %v", common.ErrNotFound)
	}
	return &PaymentMethodService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.PaymentMethod](collection),
	}, nil
}

// CreatePaymentMethod tạo phương thức thanh toán mới, cấp paymentId (uuid).
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, method models.PaymentMethod) (models.PaymentMethod, error) {
	method.PaymentID = uuid.NewString()
	return s.InsertOne(ctx, method)
}

// SoftDeleteById đánh dấu xóa phương thức thanh toán. Chặn khi còn đơn hàng
// tham chiếu hoặc bản ghi là dữ liệu hệ thống (Cash).
func (s *PaymentMethodService) SoftDeleteById(ctx context.Context, id primitive.ObjectID) (models.PaymentMethod, error) {
	method, err := s.FindOneById(ctx, id)
	if err != nil {
		return method, err
	}
	if method.IsSystem {
		return method, common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể xóa phương thức thanh toán hệ thống",
			common.StatusForbidden,
			nil,
		)
	}
	if err := basesvc.ValidateBeforeDeletePaymentMethod(ctx, method.PaymentID); err != nil {
		return method, err
	}
	return s.BaseServiceMongoImpl.SoftDeleteById(ctx, id)
}
