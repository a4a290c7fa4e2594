// Package deliverysvc chứa service data access cho domain Delivery (queue, history).
// Nằm trong folder service/ để đối xứng với dto/, handler/. Base service (BaseServiceMongoImpl) ở api/basesvc.
package deliverysvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// DeliveryQueueService quản lý hàng đợi gửi thông báo (enqueue, dequeue, retry).
type DeliveryQueueService struct {
	*basesvc.BaseServiceMongoImpl[deliverymodels.DeliveryQueueItem]
}

// NewDeliveryQueueService tạo mới DeliveryQueueService
func NewDeliveryQueueService() (*DeliveryQueueService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DeliveryQueue)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery_queue collection: %v", common.ErrNotFound)
	}
	return &DeliveryQueueService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[deliverymodels.DeliveryQueueItem](collection),
	}, nil
}

// FindPending tìm các item pending (hoặc processing bị kẹt quá 5 phút) đã đến hạn retry.
func (s *DeliveryQueueService) FindPending(ctx context.Context, limit int) ([]deliverymodels.DeliveryQueueItem, error) {
	now := time.Now().UnixMilli()
	staleThreshold := now - 5*60*1000

	filter := bson.M{
		"$and": []bson.M{
			{
				"$or": []bson.M{
					{"status": deliverymodels.QueueStatusPending},
					{
						"status":    deliverymodels.QueueStatusProcessing,
						"updatedAt": bson.M{"$lt": staleThreshold},
					},
				},
			},
			{
				"$or": []bson.M{
					{"nextRetryAt": nil},
					{"nextRetryAt": bson.M{"$lte": now}},
				},
			},
		},
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "priority", Value: 1},
			{Key: "createdAt", Value: 1},
		}).
		SetLimit(int64(limit))

	cursor, err := s.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []deliverymodels.DeliveryQueueItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return items, nil
}

// UpdateStatus cập nhật status cho nhiều item cùng lúc.
func (s *DeliveryQueueService) UpdateStatus(ctx context.Context, ids []primitive.ObjectID, status string) error {
	if len(ids) == 0 {
		return nil
	}
	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UnixMilli()}}
	_, err := s.Collection().UpdateMany(ctx, filter, update)
	return common.ConvertMongoError(err)
}

// RetryDecision tính trạng thái tiếp theo sau một lần gửi thất bại:
// còn lượt retry → quay về pending với backoff lũy tiến (delayMs > 0),
// hết lượt → failed hẳn (delayMs = 0).
func RetryDecision(retryCount, maxRetries int) (status string, delayMs int64) {
	next := retryCount + 1
	if next >= maxRetries {
		return deliverymodels.QueueStatusFailed, 0
	}
	return deliverymodels.QueueStatusPending, int64(next) * 30 * 1000
}

// MarkFailedAttempt ghi nhận một lần gửi thất bại: tăng retryCount, đặt lịch retry
// hoặc chuyển failed hẳn khi hết maxRetries.
func (s *DeliveryQueueService) MarkFailedAttempt(ctx context.Context, item deliverymodels.DeliveryQueueItem, sendErr error) error {
	now := time.Now().UnixMilli()
	status, delayMs := RetryDecision(item.RetryCount, item.MaxRetries)
	set := bson.M{
		"retryCount": item.RetryCount + 1,
		"lastError":  sendErr.Error(),
		"updatedAt":  now,
		"status":     status,
	}
	if delayMs > 0 {
		set["nextRetryAt"] = now + delayMs
	}
	_, err := s.Collection().UpdateOne(ctx, bson.M{"_id": item.ID}, bson.M{"$set": set})
	return common.ConvertMongoError(err)
}

// CleanupFailedItems xóa các item failed quá N ngày.
func (s *DeliveryQueueService) CleanupFailedItems(ctx context.Context, daysOld int) (int64, error) {
	cutoff := time.Now().UnixMilli() - int64(daysOld)*24*60*60*1000
	filter := bson.M{
		"status":    deliverymodels.QueueStatusFailed,
		"updatedAt": bson.M{"$lt": cutoff},
	}
	result, err := s.Collection().DeleteMany(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// HasRecentDuplicate kiểm tra đã có item cùng (eventType, recipient, channel) đang
// chờ gửi trong cửa sổ thời gian chưa, để tránh spam khách khi admin bấm nhiều lần.
func (s *DeliveryQueueService) HasRecentDuplicate(ctx context.Context, eventType, recipient, channelType string, windowSeconds int64) (bool, error) {
	threshold := time.Now().UnixMilli() - windowSeconds*1000
	filter := bson.M{
		"eventType":   eventType,
		"recipient":   recipient,
		"channelType": channelType,
		"createdAt":   bson.M{"$gte": threshold},
		"status":      bson.M{"$in": []string{deliverymodels.QueueStatusPending, deliverymodels.QueueStatusProcessing}},
	}
	count, err := s.Collection().CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
