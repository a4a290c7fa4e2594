// Package settinghdl - handler cấu hình storefront (banner, storage).
package settinghdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	settingsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/setting/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// BannerHandler xử lý các request banner
type BannerHandler struct {
	bannerService *settingsvc.BannerService
}

// NewBannerHandler tạo instance mới của BannerHandler
func NewBannerHandler(bannerService *settingsvc.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// HandleList GET danh sách banner chưa xóa.
func (h *BannerHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		page, limit := basehdl.ParsePaginationQuery(c)
		result, err := h.bannerService.FindWithPagination(c.Context(), basesvc.NotDeletedFilter(nil), page, limit, nil)
		basehdl.WriteResponse(c, result, err)
		return nil
	})
}

// HandleCreate POST multipart (field "file") - upload blob rồi ghi document.
func (h *BannerHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file upload", common.StatusBadRequest, err))
			return nil
		}
		file, err := fileHeader.Open()
		if err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không đọc được file upload", common.StatusBadRequest, err))
			return nil
		}
		defer file.Close()

		banner, err := h.bannerService.CreateBanner(c.Context(), file, fileHeader.Filename)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "banner", banner.ID.Hex(), c, map[string]interface{}{"fileName": banner.FileName})
		basehdl.WriteResponse(c, banner, nil)
		return nil
	})
}

// HandleDelete DELETE /:id - gỡ banner và xóa blob.
func (h *BannerHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		banner, err := h.bannerService.DeleteBanner(c.Context(), objID)
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("delete", "banner", banner.ID.Hex(), c, nil)
		basehdl.WriteResponse(c, banner, nil)
		return nil
	})
}
