// Package channels chứa các sender theo kênh (SMS, email) cho Delivery System.
// Mỗi sender là một HTTP client mỏng quanh gateway của nhà cung cấp; nội dung
// đã được render sẵn trước khi vào queue.
package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// SMSConfig cấu hình gateway SMS.
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	SenderID   string
}

// SendSMS gửi một SMS qua gateway HTTP.
func SendSMS(ctx context.Context, cfg SMSConfig, recipient, message string) error {
	if cfg.GatewayURL == "" {
		return fmt.Errorf("SMS gateway chưa được cấu hình")
	}

	body, err := json.Marshal(map[string]string{
		"to":        recipient,
		"message":   message,
		"sender_id": cfg.SenderID,
	})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("sms gateway trả về %d: %s", resp.StatusCode, string(respBody))
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"recipient": recipient,
		"length":    len(message),
	}).Info("Đã gửi SMS qua gateway")
	return nil
}
