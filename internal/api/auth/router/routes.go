// Package router đăng ký các route thuộc domain auth: login, profile, quản lý người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/handler"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/auth/models"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
)

// Register đăng ký tất cả route auth lên /api/v1.
func Register(r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Auth middleware tra user theo bearer token qua UserService
	middleware.SetUserLookup(userHandler.Service().MiddlewareLookup())

	authGroup := r.V1Group("/auth")
	authOnly := middleware.AuthMiddleware("")

	// Login không cần middleware
	authGroup.Post("/login", userHandler.HandleLoginWithFirebase)
	authGroup.Post("/login/password", userHandler.HandleLoginWithPassword)
	apirouter.RegisterRouteWithMiddleware(authGroup, "", "POST", "/logout", []fiber.Handler{authOnly}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(authGroup, "", "GET", "/me", []fiber.Handler{authOnly}, userHandler.HandleGetProfile)

	// Quản lý người dùng: chỉ Admin
	usersGroup := r.V1Group("/users")
	adminOnly := middleware.AuthMiddleware(models.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(usersGroup, "", "GET", "/", []fiber.Handler{adminOnly}, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(usersGroup, "", "GET", "/:id", []fiber.Handler{adminOnly}, userHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(usersGroup, "", "POST", "/", []fiber.Handler{adminOnly}, userHandler.HandleCreateUser)
	apirouter.RegisterRouteWithMiddleware(usersGroup, "", "PUT", "/:id", []fiber.Handler{adminOnly}, userHandler.HandleUpdateUser)
	apirouter.RegisterRouteWithMiddleware(usersGroup, "", "DELETE", "/:id", []fiber.Handler{adminOnly}, userHandler.SoftDeleteById)

	return nil
}
