package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Subscriber chạy nền sau khi handler HTTP đã trả về, nên context của request
// (đã bị hủy / tái sử dụng) không được truyền xuống handler.
func TestEmitDataChanged_HandlerNhanContextTachRiengKhoiRequest(t *testing.T) {
	ClearHandlers()
	defer ClearHandlers()

	errCh := make(chan error, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		errCh <- ctx.Err()
	})

	// Context request đã bị hủy trước khi subscriber kịp chạy
	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	EmitDataChanged(reqCtx, DataChangeEvent{CollectionName: "orders", Operation: OpUpdate})

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("handler không được gọi")
	}
}

func TestEmitDataChanged_PanicTrongHandlerKhongLanSangHandlerKhac(t *testing.T) {
	ClearHandlers()
	defer ClearHandlers()

	done := make(chan struct{}, 1)
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("hỏng")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		done <- struct{}{}
	})

	EmitDataChanged(context.Background(), DataChangeEvent{CollectionName: "products", Operation: OpInsert})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler thứ hai không được gọi")
	}
}

func TestGetStringField(t *testing.T) {
	type doc struct {
		ItemID string
		Qty    int
	}
	assert.Equal(t, "giay-1", GetStringField(doc{ItemID: "giay-1"}, "ItemID"))
	assert.Equal(t, "giay-1", GetStringField(&doc{ItemID: "giay-1"}, "ItemID"))
	assert.Equal(t, "", GetStringField(doc{}, "KhongTonTai"))
	assert.Equal(t, "", GetStringField(doc{Qty: 3}, "Qty"))
	assert.Equal(t, "", GetStringField(nil, "ItemID"))
}
