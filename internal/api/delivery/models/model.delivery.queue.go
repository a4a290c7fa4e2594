// Package models - model hàng đợi gửi thông báo (SMS/email) thuộc domain Delivery.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái item trong hàng đợi.
const (
	QueueStatusPending    = "pending"
	QueueStatusProcessing = "processing"
	QueueStatusSent       = "sent"
	QueueStatusFailed     = "failed"
)

// Kênh gửi thông báo.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Loại sự kiện sinh thông báo.
const (
	EventOrderStatusChanged = "order_status_changed"
	EventManualSMS          = "manual_sms"
)

// DeliveryQueueItem một thông báo chờ gửi. Worker dequeue theo priority rồi createdAt.
type DeliveryQueueItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EventType   string             `json:"eventType" bson:"eventType" index:"single:1"`
	ChannelType string             `json:"channelType" bson:"channelType" index:"single:1"`
	Recipient   string             `json:"recipient" bson:"recipient"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Content     string             `json:"content" bson:"content"`
	OrderID     string             `json:"orderId,omitempty" bson:"orderId,omitempty"`
	Status      string             `json:"status" bson:"status" default:"pending" index:"single:1"`
	Priority    int                `json:"priority" bson:"priority"`
	RetryCount  int                `json:"retryCount" bson:"retryCount"`
	MaxRetries  int                `json:"maxRetries" bson:"maxRetries"`
	NextRetryAt *int64             `json:"nextRetryAt,omitempty" bson:"nextRetryAt,omitempty"`
	LastError   string             `json:"lastError,omitempty" bson:"lastError,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
