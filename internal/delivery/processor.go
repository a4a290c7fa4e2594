package delivery

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	deliverysvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/delivery/channels"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// Sender gửi một queue item qua kênh tương ứng. Tách interface để test processor
// bằng spy sender, không chạm gateway thật.
type Sender interface {
	Send(ctx context.Context, item deliverymodels.DeliveryQueueItem) error
}

// gatewaySender gửi qua SMS gateway / email API theo cấu hình server.
type gatewaySender struct{}

func (gatewaySender) Send(ctx context.Context, item deliverymodels.DeliveryQueueItem) error {
	cfg := global.ServerConfig
	switch item.ChannelType {
	case deliverymodels.ChannelSMS:
		return channels.SendSMS(ctx, channels.SMSConfig{
			GatewayURL: cfg.SMSGatewayURL,
			APIKey:     cfg.SMSGatewayAPIKey,
			SenderID:   cfg.SMSSenderID,
		}, item.Recipient, item.Content)
	case deliverymodels.ChannelEmail:
		return channels.SendEmail(ctx, channels.EmailConfig{
			SMTPHost:     cfg.SMTPHost,
			SMTPPort:     cfg.SMTPPort,
			SMTPUsername: cfg.SMTPUsername,
			SMTPPassword: cfg.SMTPPassword,
			FromName:     cfg.EmailFromName,
			FromEmail:    cfg.EmailFrom,
		}, item.Recipient, item.Subject, item.Content)
	default:
		return fmt.Errorf("kênh không hỗ trợ: %s", item.ChannelType)
	}
}

// Processor xử lý hàng đợi: dequeue, gửi, ghi history, retry khi thất bại.
type Processor struct {
	queue          *Queue
	historyService *deliverysvc.DeliveryHistoryService
	sender         Sender
}

// NewProcessor tạo mới Processor với sender mặc định (gateway thật).
func NewProcessor() (*Processor, error) {
	queue, err := NewQueue()
	if err != nil {
		return nil, err
	}
	historyService, err := deliverysvc.NewDeliveryHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create history service: %w", err)
	}
	return &Processor{queue: queue, historyService: historyService, sender: gatewaySender{}}, nil
}

// NewProcessorWithSender tạo Processor với sender tùy biến (dùng trong test).
func NewProcessorWithSender(queue *Queue, historyService *deliverysvc.DeliveryHistoryService, sender Sender) *Processor {
	return &Processor{queue: queue, historyService: historyService, sender: sender}
}

// ProcessBatch lấy một lô item và gửi tuần tự. Trả về số item gửi thành công.
func (p *Processor) ProcessBatch(ctx context.Context, limit int) (int, error) {
	items, err := p.queue.Dequeue(ctx, limit)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, item := range items {
		if p.processOne(ctx, item) {
			sent++
		}
	}
	return sent, nil
}

// CleanupFailed xóa các item failed quá daysOld ngày khỏi hàng đợi.
func (p *Processor) CleanupFailed(ctx context.Context, daysOld int) (int64, error) {
	return p.queue.Service().CleanupFailedItems(ctx, daysOld)
}

// processOne gửi một item. Thành công: đánh dấu sent + ghi history.
// Thất bại: lên lịch retry; nếu hết retry thì ghi history failed.
func (p *Processor) processOne(ctx context.Context, item deliverymodels.DeliveryQueueItem) bool {
	log := logger.GetAppLogger()
	sendErr := p.sender.Send(ctx, item)
	now := time.Now().UnixMilli()

	if sendErr == nil {
		if err := p.queue.Service().UpdateStatus(ctx, []primitive.ObjectID{item.ID}, deliverymodels.QueueStatusSent); err != nil {
			log.WithError(err).Error("Không cập nhật được trạng thái sent cho queue item")
		}
		_, err := p.historyService.InsertOne(ctx, deliverymodels.DeliveryHistory{
			QueueItemID: item.ID,
			EventType:   item.EventType,
			ChannelType: item.ChannelType,
			Recipient:   item.Recipient,
			OrderID:     item.OrderID,
			Status:      deliverymodels.QueueStatusSent,
			Content:     item.Content,
			RetryCount:  item.RetryCount,
			SentAt:      &now,
		})
		if err != nil {
			log.WithError(err).Error("Không ghi được delivery history")
		}
		return true
	}

	log.WithError(sendErr).WithFields(map[string]interface{}{
		"queueItemId": item.ID.Hex(),
		"channel":     item.ChannelType,
		"retryCount":  item.RetryCount,
	}).Warn("Gửi thông báo thất bại")

	if err := p.queue.Service().MarkFailedAttempt(ctx, item, sendErr); err != nil {
		log.WithError(err).Error("Không ghi nhận được lần gửi thất bại")
		return false
	}
	if item.RetryCount+1 >= item.MaxRetries {
		_, err := p.historyService.InsertOne(ctx, deliverymodels.DeliveryHistory{
			QueueItemID: item.ID,
			EventType:   item.EventType,
			ChannelType: item.ChannelType,
			Recipient:   item.Recipient,
			OrderID:     item.OrderID,
			Status:      deliverymodels.QueueStatusFailed,
			Content:     item.Content,
			Error:       sendErr.Error(),
			RetryCount:  item.RetryCount + 1,
		})
		if err != nil {
			log.WithError(err).Error("Không ghi được delivery history (failed)")
		}
	}
	return false
}
