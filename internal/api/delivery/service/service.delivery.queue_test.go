// Package deliverysvc - Test logic retry của hàng đợi gửi thông báo.
package deliverysvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
)

func TestRetryDecision_ConLuotThiPendingKemBackoff(t *testing.T) {
	// Lần thất bại đầu tiên (retryCount 0 → 1), maxRetries 3
	status, delayMs := RetryDecision(0, 3)
	assert.Equal(t, deliverymodels.QueueStatusPending, status)
	assert.Equal(t, int64(30_000), delayMs)

	// Lần thứ hai: backoff tuyến tính tăng
	status, delayMs = RetryDecision(1, 3)
	assert.Equal(t, deliverymodels.QueueStatusPending, status)
	assert.Equal(t, int64(60_000), delayMs)
}

func TestRetryDecision_HetLuotThiFailed(t *testing.T) {
	status, delayMs := RetryDecision(2, 3)
	assert.Equal(t, deliverymodels.QueueStatusFailed, status)
	assert.Equal(t, int64(0), delayMs)

	// maxRetries 0: thất bại ngay lần đầu
	status, _ = RetryDecision(0, 0)
	assert.Equal(t, deliverymodels.QueueStatusFailed, status)

	// retryCount đã vượt max (dữ liệu cũ): vẫn failed
	status, _ = RetryDecision(10, 3)
	assert.Equal(t, deliverymodels.QueueStatusFailed, status)
}
