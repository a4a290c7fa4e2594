// Package ordersvc - service đơn hàng.
package ordersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](collection),
	}, nil
}

// UpdateStatus chuyển trạng thái đơn hàng theo bảng chuyển hợp lệ.
// Chuyển không hợp lệ trả 409 và không ghi gì vào database.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus string) (models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return order, err
	}
	if err := models.ValidateTransition(order.Status, newStatus); err != nil {
		return order, err
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"status": newStatus}}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return updated, err
	}
	logrus.WithFields(logrus.Fields{
		"order_id": updated.OrderID,
		"from":     order.Status,
		"to":       newStatus,
	}).Info("UpdateStatus: Đã chuyển trạng thái đơn hàng")
	return updated, nil
}

// UpdatePaymentStatus chuyển trạng thái thanh toán.
// Đơn đã hủy chỉ được chuyển sang Refunded hoặc Failed.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, newPaymentStatus string) (models.Order, error) {
	order, err := s.FindOneById(ctx, id)
	if err != nil {
		return order, err
	}
	if err := models.ValidatePaymentStatusChange(order.Status, newPaymentStatus); err != nil {
		return order, err
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"paymentStatus": newPaymentStatus}}
	return s.UpdateById(ctx, id, update)
}

// UpdateTracking ghi thông tin vận chuyển vào đơn.
func (s *OrderService) UpdateTracking(ctx context.Context, id primitive.ObjectID, tracking models.Tracking) (models.Order, error) {
	tracking.UpdatedAt = time.Now().UnixMilli()
	update := &basesvc.UpdateData{Set: map[string]interface{}{"tracking": tracking}}
	return s.UpdateById(ctx, id, update)
}

// FindByOrderID tìm đơn theo business id.
func (s *OrderService) FindByOrderID(ctx context.Context, orderID string) (models.Order, error) {
	return s.FindOne(ctx, bson.M{"orderId": orderID}, nil)
}
