package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/utility"
)

// AuthUser là thông tin user tối thiểu mà middleware cần sau khi xác thực token.
type AuthUser struct {
	ID     string
	Name   string
	Email  string
	Role   string // Admin | User
	Status string // Active | Inactive | Pending
}

// UserLookupFunc tìm user theo bearer token. Được gán từ auth domain khi khởi tạo app
// để tránh import cycle middleware -> auth service -> base handler -> middleware.
type UserLookupFunc func(ctx context.Context, token string) (*AuthUser, error)

var (
	userLookup UserLookupFunc
	tokenCache = utility.NewCache(5*time.Minute, 10*time.Minute)
)

// SetUserLookup đăng ký hàm tìm user theo token. Gọi một lần khi init.
func SetUserLookup(fn UserLookupFunc) {
	userLookup = fn
	tokenCache.Clear()
}

// AuthMiddleware middleware xác thực bearer token cho Fiber.
// Fail closed: thiếu token hoặc token sai định dạng trả 401 ngay, KHÔNG chạm vào database.
// requireRole: "" = chỉ cần đăng nhập; "Admin" = chỉ Admin được qua.
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]
		if token == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if userLookup == nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				"Auth chưa được khởi tạo",
				common.StatusInternalServerError,
				nil,
			))
			return nil
		}

		// Tìm user có token. Cache 5 phút để giảm tải database.
		var user *AuthUser
		if cached, found := tokenCache.Get(token); found {
			user = cached.(*AuthUser)
		} else {
			found, err := userLookup(c.Context(), token)
			if err != nil {
				logger.GetAppLogger().WithFields(logrus.Fields{
					"path":  c.Path(),
					"error": err.Error(),
				}).Warn("[AUTH] Token not found in database")
				HandleErrorResponse(c, common.ErrTokenInvalid)
				return nil
			}
			user = found
			tokenCache.Set(token, user)
		}

		// Kiểm tra trạng thái tài khoản
		if user.Status != "Active" {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản không hoạt động (trạng thái: "+user.Status+")",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID)
		c.Locals("user_role", user.Role)
		c.Locals("user_email", user.Email)

		// Nếu không yêu cầu role cụ thể, cho phép truy cập ngay
		if requireRole == "" {
			return c.Next()
		}

		if user.Role != requireRole {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":       user.ID,
				"user_role":     user.Role,
				"required_role": requireRole,
				"path":          c.Path(),
			}).Warn("[AUTH] User does not have required role")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Chức năng này yêu cầu quyền "+requireRole+".",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		return c.Next()
	}
}

// InvalidateTokenCache xóa token khỏi cache (gọi khi logout hoặc đổi token).
func InvalidateTokenCache(token string) {
	tokenCache.Delete(token)
}
