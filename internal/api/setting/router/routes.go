// Package router đăng ký route cấu hình storefront: /api/v1/setting/banners và /api/v1/storage.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/middleware"
	apirouter "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/router"
	settinghdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/setting/handler"
	settingsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/setting/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/storage"
)

// Register đăng ký route banner và storage. Cần Cloudinary được cấu hình.
func Register(r *apirouter.Router) error {
	blobStore, err := storage.NewCloudinaryStore(global.ServerConfig.CloudinaryURL, global.ServerConfig.CloudinaryFolder)
	if err != nil {
		return fmt.Errorf("failed to create blob store: %w", err)
	}
	bannerService, err := settingsvc.NewBannerService(blobStore)
	if err != nil {
		return fmt.Errorf("failed to create banner service: %w", err)
	}
	bannerHandler := settinghdl.NewBannerHandler(bannerService)
	storageHandler := settinghdl.NewStorageHandler(blobStore)

	authOnly := middleware.AuthMiddleware("")
	adminOnly := middleware.AuthMiddleware("Admin")

	banners := r.V1Group("/setting/banners")
	apirouter.RegisterRouteWithMiddleware(banners, "", "GET", "/", []fiber.Handler{authOnly}, bannerHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(banners, "", "POST", "/", []fiber.Handler{adminOnly}, bannerHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(banners, "", "DELETE", "/:id", []fiber.Handler{adminOnly}, bannerHandler.HandleDelete)

	blobs := r.V1Group("/storage")
	apirouter.RegisterRouteWithMiddleware(blobs, "", "POST", "/", []fiber.Handler{authOnly}, storageHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(blobs, "", "DELETE", "/", []fiber.Handler{authOnly}, storageHandler.HandleDelete)

	return nil
}
