// Package authhdl - handler xác thực và quản lý người dùng admin panel.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
	authsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/service"
	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// Service trả về UserService (dùng khi init để wire middleware lookup).
func (h *UserHandler) Service() *authsvc.UserService {
	return h.userService
}

// HandleLoginWithFirebase đăng nhập bằng Firebase ID token
func (h *UserHandler) HandleLoginWithFirebase(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.FirebaseLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.LoginWithFirebase(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login_firebase_failed", c, map[string]interface{}{"error": err.Error()})
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("login_firebase", c, map[string]interface{}{"user_id": user.ID.Hex()})
		user.Sanitize()
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLoginWithPassword đăng nhập bằng email + mật khẩu
func (h *UserHandler) HandleLoginWithPassword(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.PasswordLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.LoginWithPassword(c.Context(), &input)
		if err != nil {
			logger.LogAuth("login_password_failed", c, map[string]interface{}{"email": input.Email})
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogAuth("login_password", c, map[string]interface{}{"user_id": user.ID.Hex()})
		user.Sanitize()
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserLogoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.userService.Logout(c.Context(), objID, &input)
		if err == nil {
			logger.LogAuth("logout", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user.Sanitize()
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleCreateUser tạo người dùng admin panel mới (Admin gate ở router).
// Password (nếu có) được băm bcrypt trước khi lưu.
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user := models.User{
			Name:        input.Name,
			Email:       input.Email,
			Role:        input.Role,
			Status:      input.Status,
			FirebaseUID: input.FirebaseUID,
		}
		if input.Password != "" {
			hash, err := authsvc.HashPassword(input.Password)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			user.PasswordHash = hash
		}

		created, err := h.userService.InsertOne(c.Context(), user)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "user", created.ID.Hex(), c, map[string]interface{}{"email": created.Email})
		created.Sanitize()
		h.HandleResponse(c, created, nil)
		return nil
	})
}

// HandleUpdateUser cập nhật người dùng (Admin gate ở router).
func (h *UserHandler) HandleUpdateUser(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		var input authdto.UserUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update := &basesvc.UpdateData{Set: map[string]interface{}{}}
		if input.Name != "" {
			update.Set["name"] = input.Name
		}
		if input.Role != "" {
			update.Set["role"] = input.Role
		}
		if input.Status != "" {
			update.Set["status"] = input.Status
		}
		if input.Password != "" {
			hash, err := authsvc.HashPassword(input.Password)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			update.Set["passwordHash"] = hash
		}
		if len(update.Set) == 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu để cập nhật", common.StatusBadRequest, nil))
			return nil
		}

		ctx := c.Context()
		if role, ok := c.Locals("user_role").(string); ok && role != "" {
			ctx = authsvc.SetUserRoleToContext(ctx, role)
		}
		updated, err := h.userService.UpdateById(ctx, objID, update)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("update", "user", updated.ID.Hex(), c, nil)
		updated.Sanitize()
		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// currentUserID lấy ObjectID của user đang đăng nhập từ Locals (middleware đã set).
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "Chưa đăng nhập", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}
