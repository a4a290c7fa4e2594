// Package models - model người dùng admin panel (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role của người dùng admin panel.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Trạng thái tài khoản.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
	UserStatusPending  = "Pending"
)

// User định nghĩa mô hình người dùng admin panel.
// Token chứa token xác thực mới nhất của người dùng.
// Tokens chứa danh sách các token, mỗi thiết bị khác nhau sẽ có một token riêng để xác thực (bằng hwid).
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	PasswordHash string             `json:"-" bson:"passwordHash,omitempty"`
	Role         string             `json:"role" bson:"role" default:"User"`
	Status       string             `json:"status" bson:"status" default:"Pending"`
	FirebaseUID  string             `json:"firebaseUid,omitempty" bson:"firebaseUid,omitempty" index:"unique,sparse"`
	AvatarURL    string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Token        string             `json:"token,omitempty" bson:"token,omitempty"`
	Tokens       []Token            `json:"-" bson:"tokens,omitempty"`
	IsSystem     bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	IsDeleted    bool               `json:"isDeleted,omitempty" bson:"isDeleted,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// Sanitize xóa các field nhạy cảm trước khi trả về client.
func (u *User) Sanitize() {
	u.PasswordHash = ""
	u.Tokens = nil
}

// IsActive kiểm tra tài khoản có được phép đăng nhập hay không.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive && !u.IsDeleted
}
