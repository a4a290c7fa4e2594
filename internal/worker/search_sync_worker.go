package worker

import (
	"context"
	"time"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/search"
)

// SearchSyncWorker retry các lần push Elasticsearch thất bại còn nằm trong backlog.
type SearchSyncWorker struct {
	indexer  *search.ProductIndexer
	interval time.Duration
}

// NewSearchSyncWorker tạo mới SearchSyncWorker. indexer nil = indexing tắt,
// worker không làm gì.
func NewSearchSyncWorker(indexer *search.ProductIndexer, interval time.Duration) *SearchSyncWorker {
	if interval < 10*time.Second {
		interval = 1 * time.Minute
	}
	return &SearchSyncWorker{indexer: indexer, interval: interval}
}

// Start chạy worker cho đến khi ctx bị hủy.
func (w *SearchSyncWorker) Start(ctx context.Context) {
	if w.indexer == nil {
		return
	}
	log := logger.GetAppLogger()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("Search sync worker bắt đầu chạy")

	for {
		select {
		case <-ctx.Done():
			log.Info("Search sync worker dừng")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{"panic": r}).Error("Panic trong search sync worker, bỏ qua chu kỳ này")
					}
				}()
				if w.indexer.BacklogSize() == 0 {
					return
				}
				done := w.indexer.RetryBacklog(ctx)
				if done > 0 {
					log.WithFields(map[string]interface{}{"synced": done}).Info("Đã đồng bộ lại sản phẩm vào search index")
				}
			}()
		}
	}
}
