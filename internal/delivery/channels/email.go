package channels

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// EmailConfig cấu hình SMTP gửi email.
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// dialAndSend cho phép test thay tầng SMTP thật bằng spy.
var dialAndSend = func(cfg EmailConfig, msg *gomail.Message) error {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return dialer.DialAndSend(msg)
}

// SendEmail gửi một email HTML qua SMTP.
func SendEmail(ctx context.Context, cfg EmailConfig, recipient, subject, content string) error {
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP chưa được cấu hình")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail))
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", content)

	if err := dialAndSend(cfg, msg); err != nil {
		return fmt.Errorf("gửi email thất bại: %w", err)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"recipient": recipient,
		"subject":   subject,
	}).Info("Đã gửi email qua SMTP")
	return nil
}
