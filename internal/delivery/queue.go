// Package delivery điều phối việc gửi thông báo SMS/email cho khách hàng:
// enqueue vào delivery_queue, worker dequeue và gửi qua channel tương ứng.
package delivery

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	deliverysvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// Cửa sổ chống trùng khi enqueue cùng một thông báo (giây).
const duplicateWindowSeconds = 60

// Queue xử lý việc enqueue và dequeue.
type Queue struct {
	queueService *deliverysvc.DeliveryQueueService
}

// NewQueue tạo mới Queue
func NewQueue() (*Queue, error) {
	queueService, err := deliverysvc.NewDeliveryQueueService()
	if err != nil {
		return nil, fmt.Errorf("failed to create queue service: %w", err)
	}
	return &Queue{queueService: queueService}, nil
}

// Enqueue thêm một thông báo vào hàng đợi. Item trùng (cùng sự kiện, người nhận,
// kênh) trong cửa sổ chống trùng sẽ bị bỏ qua, trả về false.
func (q *Queue) Enqueue(ctx context.Context, item deliverymodels.DeliveryQueueItem) (bool, error) {
	dup, err := q.queueService.HasRecentDuplicate(ctx, item.EventType, item.Recipient, item.ChannelType, duplicateWindowSeconds)
	if err != nil {
		return false, err
	}
	if dup {
		logger.GetAppLogger().WithFields(map[string]interface{}{
			"eventType": item.EventType,
			"recipient": item.Recipient,
			"channel":   item.ChannelType,
		}).Warn("Bỏ qua thông báo trùng trong cửa sổ chống spam")
		return false, nil
	}

	item.Status = deliverymodels.QueueStatusPending
	item.RetryCount = 0
	if item.MaxRetries == 0 {
		item.MaxRetries = 3
	}
	if item.Priority == 0 {
		item.Priority = 3
	}

	inserted, err := q.queueService.InsertOne(ctx, item)
	if err != nil {
		logger.GetAppLogger().WithError(err).Error("Lỗi khi insert queue item vào database")
		return false, err
	}
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"queueItemId": inserted.ID.Hex(),
		"eventType":   inserted.EventType,
		"channel":     inserted.ChannelType,
	}).Info("Đã enqueue thông báo")
	return true, nil
}

// Dequeue lấy tối đa limit item đến hạn gửi và chuyển chúng sang processing.
func (q *Queue) Dequeue(ctx context.Context, limit int) ([]deliverymodels.DeliveryQueueItem, error) {
	items, err := q.queueService.FindPending(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if err := q.queueService.UpdateStatus(ctx, ids, deliverymodels.QueueStatusProcessing); err != nil {
		return nil, err
	}
	return items, nil
}

// Service trả về queue service phía dưới (processor cần đánh dấu retry/failed).
func (q *Queue) Service() *deliverysvc.DeliveryQueueService {
	return q.queueService
}
