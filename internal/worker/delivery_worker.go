// Package worker chứa các background worker chạy định kỳ của server.
package worker

import (
	"context"
	"time"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/delivery"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// DeliveryWorker xử lý hàng đợi gửi thông báo theo chu kỳ và dọn item failed cũ.
type DeliveryWorker struct {
	processor      *delivery.Processor
	interval       time.Duration
	batchSize      int
	cleanupDaysOld int
}

// NewDeliveryWorker tạo mới DeliveryWorker
func NewDeliveryWorker(interval time.Duration, batchSize int) (*DeliveryWorker, error) {
	processor, err := delivery.NewProcessor()
	if err != nil {
		return nil, err
	}
	if interval < 5*time.Second {
		interval = 15 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 20
	}
	return &DeliveryWorker{
		processor:      processor,
		interval:       interval,
		batchSize:      batchSize,
		cleanupDaysOld: 7,
	}, nil
}

// Start chạy worker cho đến khi ctx bị hủy.
func (w *DeliveryWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Dọn item failed cũ mỗi 24h
	cleanupTicker := time.NewTicker(24 * time.Hour)
	defer cleanupTicker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("Delivery worker bắt đầu chạy")

	for {
		select {
		case <-ctx.Done():
			log.Info("Delivery worker dừng")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{"panic": r}).Error("Panic trong delivery worker, bỏ qua chu kỳ này")
					}
				}()
				sent, err := w.processor.ProcessBatch(ctx, w.batchSize)
				if err != nil {
					log.WithError(err).Error("Xử lý lô thông báo thất bại")
					return
				}
				if sent > 0 {
					log.WithFields(map[string]interface{}{"sent": sent}).Info("Đã gửi lô thông báo")
				}
			}()
		case <-cleanupTicker.C:
			if removed, err := w.processor.CleanupFailed(ctx, w.cleanupDaysOld); err == nil && removed > 0 {
				log.WithFields(map[string]interface{}{"removed": removed}).Info("Đã dọn item failed cũ khỏi hàng đợi")
			}
		}
	}
}
