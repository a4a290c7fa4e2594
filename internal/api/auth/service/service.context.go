// Package authsvc - service xác thực và quản lý người dùng admin panel.
package authsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
)

type contextKey string

const (
	userIDContextKey   contextKey = "auth_user_id"
	userRoleContextKey contextKey = "auth_user_role"
)

// SetUserIDToContext gắn user id của người thao tác vào context.
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy user id của người thao tác từ context.
func GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}

// SetUserRoleToContext gắn role của người thao tác vào context.
func SetUserRoleToContext(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleContextKey, role)
}

// GetUserRoleFromContext lấy role của người thao tác từ context.
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleContextKey).(string)
	return role, ok
}

// IsAdminFromContext kiểm tra người thao tác có role Admin hay không.
// Được inject vào base service để bảo vệ dữ liệu hệ thống (isSystem).
func IsAdminFromContext(ctx context.Context) bool {
	role, ok := GetUserRoleFromContext(ctx)
	return ok && role == models.RoleAdmin
}
