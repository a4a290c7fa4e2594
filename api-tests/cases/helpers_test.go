package tests

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

// waitForHealth đợi server sẵn sàng qua endpoint /health.
// Server không lên sau số lần thử thì skip suite thay vì fail,
// để chạy go test không kèm server vẫn xanh.
func waitForHealth(serverURL string, attempts int, delay time.Duration, t *testing.T) {
	client := &http.Client{Timeout: 2 * time.Second}
	for i := 0; i < attempts; i++ {
		resp, err := client.Get(serverURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Printf("✅ Server sẵn sàng tại %s\n", serverURL)
				return
			}
		}
		time.Sleep(delay)
	}
	t.Skipf("⚠️ Server không phản hồi tại %s sau %d lần thử, skip integration test", serverURL, attempts)
}

// adminToken lấy bearer token admin từ biến môi trường.
// Thiếu token thì skip vì các route đều yêu cầu đăng nhập.
func adminToken(t *testing.T) string {
	token := os.Getenv("ADMIN_TOKEN")
	if token == "" {
		t.Skip("⚠️ Thiếu biến môi trường ADMIN_TOKEN, skip integration test")
	}
	return token
}
