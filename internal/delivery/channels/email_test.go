package channels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"
)

func TestSendEmail_ChuaCauHinhSMTPThiKhongGui(t *testing.T) {
	orig := dialAndSend
	defer func() { dialAndSend = orig }()

	called := 0
	dialAndSend = func(cfg EmailConfig, msg *gomail.Message) error {
		called++
		return nil
	}

	err := SendEmail(context.Background(), EmailConfig{}, "khach@example.com", "Đơn hàng", "<p>nội dung</p>")
	assert.Error(t, err)
	assert.Equal(t, 0, called)
}

func TestSendEmail_TruyenDungHeaderVaCauHinh(t *testing.T) {
	orig := dialAndSend
	defer func() { dialAndSend = orig }()

	var gotCfg EmailConfig
	var gotMsg *gomail.Message
	dialAndSend = func(cfg EmailConfig, msg *gomail.Message) error {
		gotCfg = cfg
		gotMsg = msg
		return nil
	}

	cfg := EmailConfig{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "bot",
		SMTPPassword: "secret",
		FromName:     "NEVERBE",
		FromEmail:    "no-reply@neverbe.lk",
	}
	err := SendEmail(context.Background(), cfg, "khach@example.com", "Đơn hàng NB-1 đã giao", "<p>Cảm ơn bạn</p>")
	assert.NoError(t, err)

	assert.Equal(t, cfg, gotCfg)
	assert.Equal(t, []string{"khach@example.com"}, gotMsg.GetHeader("To"))
	assert.Equal(t, []string{"Đơn hàng NB-1 đã giao"}, gotMsg.GetHeader("Subject"))
	assert.Equal(t, []string{"NEVERBE <no-reply@neverbe.lk>"}, gotMsg.GetHeader("From"))
}
