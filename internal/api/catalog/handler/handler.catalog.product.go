// Package cataloghdl - handler catalog master data.
package cataloghdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/dto"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	catalogsvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/service"
	basehdl "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/handler"
	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// ProductHandler xử lý các request sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// InsertOne tạo sản phẩm mới: validate pricing, cấp itemId + variantId rồi insert.
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := input.ValidatePricing(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product.Thumbnail = models.Thumbnail{URL: input.Thumbnail.URL, File: input.Thumbnail.File}
		product.Variants = variantsFromInput(input.Variants)

		created, err := h.productService.CreateProduct(c.Context(), *product)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "product", created.ItemID, c, map[string]interface{}{"name": created.Name})
		h.HandleResponse(c, created, nil)
		return nil
	})
}

// UpdateById cập nhật sản phẩm (partial). Nếu input có variants thì ghi đè cây variant,
// giữ variantId đã có và cấp uuid cho variant mới.
func (h *ProductHandler) UpdateById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}

		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.validateUpdatePricing(c.Context(), objID, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update := &basesvc.UpdateData{Set: map[string]interface{}{}}
		if input.Type != "" {
			update.Set["type"] = input.Type
		}
		if input.BrandID != "" {
			brandID, err := primitive.ObjectIDFromHex(input.BrandID)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "brandId không hợp lệ", common.StatusBadRequest, err))
				return nil
			}
			update.Set["brandId"] = brandID
		}
		if input.CategoryID != "" {
			categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "categoryId không hợp lệ", common.StatusBadRequest, err))
				return nil
			}
			update.Set["categoryId"] = categoryID
		}
		if input.Manufacturer != "" {
			update.Set["manufacturer"] = input.Manufacturer
		}
		if input.Name != "" {
			update.Set["name"] = input.Name
		}
		if input.BuyingPrice != nil {
			update.Set["buyingPrice"] = *input.BuyingPrice
		}
		if input.SellingPrice != nil {
			update.Set["sellingPrice"] = *input.SellingPrice
		}
		if input.MarketPrice != nil {
			update.Set["marketPrice"] = *input.MarketPrice
		}
		if input.Discount != nil {
			update.Set["discount"] = *input.Discount
		}
		if input.Tags != nil {
			update.Set["tags"] = input.Tags
		}
		if input.Thumbnail != nil {
			update.Set["thumbnail"] = models.Thumbnail{URL: input.Thumbnail.URL, File: input.Thumbnail.File}
		}
		if input.Status != "" {
			update.Set["status"] = input.Status
		}

		var updated models.Product
		if len(update.Set) > 0 {
			updated, err = h.productService.UpdateById(c.Context(), objID, update)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}
		if input.Variants != nil {
			updated, err = h.productService.ReplaceVariants(c.Context(), objID, variantsFromInput(input.Variants))
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}
		if len(update.Set) == 0 && input.Variants == nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có dữ liệu để cập nhật", common.StatusBadRequest, nil))
			return nil
		}

		logger.LogCRUD("update", "product", updated.ItemID, c, nil)
		h.HandleResponse(c, updated, nil)
		return nil
	})
}

// SoftDeleteById đánh dấu xóa sản phẩm (chặn khi còn tồn kho tham chiếu).
func (h *ProductHandler) SoftDeleteById(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		objID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		deleted, err := h.productService.SoftDeleteProduct(c.Context(), objID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("delete", "product", deleted.ItemID, c, nil)
		h.HandleResponse(c, deleted, nil)
		return nil
	})
}

// validateUpdatePricing kiểm tra giá bán sau giảm không âm với giá trị sẽ có sau update.
func (h *ProductHandler) validateUpdatePricing(ctx context.Context, id primitive.ObjectID, input *catalogdto.ProductUpdateInput) error {
	if input.SellingPrice == nil && input.Discount == nil {
		return nil
	}
	existing, err := h.productService.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	sellingPrice := existing.SellingPrice
	discount := existing.Discount
	if input.SellingPrice != nil {
		sellingPrice = *input.SellingPrice
	}
	if input.Discount != nil {
		discount = *input.Discount
	}
	if sellingPrice*(1-discount/100) < 0 {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Giá bán sau giảm giá không được âm",
			common.StatusBadRequest,
			map[string]interface{}{"sellingPrice": sellingPrice, "discount": discount},
		)
	}
	return nil
}

// variantsFromInput chuyển VariantInput sang model Variant.
func variantsFromInput(inputs []catalogdto.VariantInput) []models.Variant {
	variants := make([]models.Variant, 0, len(inputs))
	for _, in := range inputs {
		sizes := make([]models.VariantSize, 0, len(in.Sizes))
		for _, s := range in.Sizes {
			sizes = append(sizes, models.VariantSize{Size: s.Size, Stock: s.Stock})
		}
		variants = append(variants, models.Variant{
			VariantID:   in.VariantID,
			VariantName: in.VariantName,
			Images:      in.Images,
			Sizes:       sizes,
		})
	}
	return variants
}
