// Package settingsvc - service cấu hình storefront (banner).
package settingsvc

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	models "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/setting/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/storage"
)

// BannerService quản lý banner: document trong Mongo + blob trên Cloudinary.
type BannerService struct {
	*basesvc.BaseServiceMongoImpl[models.Banner]
	blobStore storage.BlobStore
}

// NewBannerService tạo mới BannerService
func NewBannerService(blobStore storage.BlobStore) (*BannerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Banners)
	if !exist {
		return nil, fmt.Errorf("failed to get banners collection: %v", common.ErrNotFound)
	}
	return &BannerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Banner](collection),
		blobStore:            blobStore,
	}, nil
}

// CreateBanner upload blob trước, ghi document sau. Ghi document thất bại thì
// xóa blob vừa upload (bước bù), banner không bao giờ trỏ tới blob mồ côi.
func (s *BannerService) CreateBanner(ctx context.Context, file io.Reader, fileName string) (models.Banner, error) {
	var zero models.Banner
	uploaded, err := s.blobStore.Upload(ctx, file, "banners")
	if err != nil {
		return zero, err
	}

	banner, err := s.InsertOne(ctx, models.Banner{
		FileName: fileName,
		URL:      uploaded.URL,
		PublicID: uploaded.PublicID,
	})
	if err != nil {
		if destroyErr := s.blobStore.Destroy(ctx, uploaded.PublicID); destroyErr != nil {
			logger.GetAppLogger().WithError(destroyErr).WithFields(map[string]interface{}{
				"publicId": uploaded.PublicID,
			}).Error("Bù saga thất bại, blob mồ côi cần dọn thủ công")
		}
		return zero, err
	}
	return banner, nil
}

// DeleteBanner đánh dấu xóa document rồi xóa blob. Xóa blob lỗi chỉ ghi log,
// banner đã gỡ khỏi storefront là kết quả chính.
func (s *BannerService) DeleteBanner(ctx context.Context, id primitive.ObjectID) (models.Banner, error) {
	banner, err := s.SoftDeleteById(ctx, id)
	if err != nil {
		return banner, err
	}
	if err := s.blobStore.Destroy(ctx, banner.PublicID); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"bannerId": id.Hex(),
			"publicId": banner.PublicID,
		}).Error("Không xóa được blob của banner")
	}
	return banner, nil
}
