package settinghdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/storage"
)

// StorageHandler xử lý upload/xóa blob trực tiếp (ảnh sản phẩm, variant).
type StorageHandler struct {
	blobStore storage.BlobStore
}

// NewStorageHandler tạo instance mới của StorageHandler
func NewStorageHandler(blobStore storage.BlobStore) *StorageHandler {
	return &StorageHandler{blobStore: blobStore}
}

// HandleUpload POST multipart (field "file", query "folder" optional).
func (h *StorageHandler) HandleUpload(c fiber.Ctx) error {
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

		result, err := h.blobStore.Upload(c.Context(), file, c.Query("folder"))
		if err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "blob", result.PublicID, c, map[string]interface{}{"fileName": fileHeader.Filename})
		basehdl.WriteResponse(c, result, nil)
		return nil
	})
}

// HandleDelete DELETE theo publicId (query "publicId").
func (h *StorageHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		publicID := c.Query("publicId")
		if publicID == "" {
			basehdl.WriteResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu publicId", common.StatusBadRequest, nil))
			return nil
		}
		if err := h.blobStore.Destroy(c.Context(), publicID); err != nil {
			basehdl.WriteResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("delete", "blob", publicID, c, nil)
		basehdl.WriteResponse(c, map[string]interface{}{"deleted": true}, nil)
		return nil
	})
}
