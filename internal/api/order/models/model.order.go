// Package models - model đơn hàng và vòng đời thanh toán/giao hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng.
const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusReturned   = "Returned"
)

// Trạng thái thanh toán.
const (
	PaymentStatusPaid     = "Paid"
	PaymentStatusPending  = "Pending"
	PaymentStatusFailed   = "Failed"
	PaymentStatusRefunded = "Refunded"
)

// Customer thông tin khách hàng nhúng trong đơn (snapshot tại thời điểm đặt).
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string `json:"email,omitempty" bson:"email,omitempty"`
	Address string `json:"address,omitempty" bson:"address,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
}

// OrderItem một dòng hàng trong đơn. Snapshot bất biến: giá và tên
// tại thời điểm đặt hàng, không đổi khi catalog đổi.
type OrderItem struct {
	ItemID      string  `json:"itemId" bson:"itemId"`
	VariantID   string  `json:"variantId" bson:"variantId"`
	Name        string  `json:"name" bson:"name"`
	VariantName string  `json:"variantName" bson:"variantName"`
	Size        string  `json:"size" bson:"size"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
	Thumbnail   string  `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
}

// Tracking thông tin vận chuyển của đơn.
type Tracking struct {
	TrackingNumber  string `json:"trackingNumber" bson:"trackingNumber"`
	TrackingCompany string `json:"trackingCompany" bson:"trackingCompany"`
	TrackingURL     string `json:"trackingUrl,omitempty" bson:"trackingUrl,omitempty"`
	Status          string `json:"status,omitempty" bson:"status,omitempty"`
	UpdatedAt       int64  `json:"updatedAt" bson:"updatedAt"`
}

// Order đơn hàng. Không bao giờ hard delete.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID         string             `json:"orderId" bson:"orderId" index:"unique"`
	PaymentID       string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	Items           []OrderItem        `json:"items" bson:"items"`
	PaymentStatus   string             `json:"paymentStatus" bson:"paymentStatus" default:"Pending"`
	PaymentMethod   string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentMethodID string             `json:"paymentMethodId,omitempty" bson:"paymentMethodId,omitempty"`
	Status          string             `json:"status" bson:"status" default:"Processing"`
	Customer        Customer           `json:"customer" bson:"customer"`
	ShippingFee     float64            `json:"shippingFee" bson:"shippingFee"`
	Total           float64            `json:"total" bson:"total"`
	Discount        float64            `json:"discount" bson:"discount"`
	Tracking        *Tracking          `json:"tracking,omitempty" bson:"tracking,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
