package settingsvc

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/storage"
)

// spyBlobStore ghi lại các lời gọi Upload/Destroy, không đụng Cloudinary thật.
type spyBlobStore struct {
	uploadCalls  int
	destroyCalls int
	uploadErr    error
	destroyedIDs []string
}

func (s *spyBlobStore) Upload(ctx context.Context, file io.Reader, folder string) (*storage.UploadResult, error) {
	s.uploadCalls++
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &storage.UploadResult{URL: "https://cdn.example/banner.webp", PublicID: "banners/abc123"}, nil
}

func (s *spyBlobStore) Destroy(ctx context.Context, publicID string) error {
	s.destroyCalls++
	s.destroyedIDs = append(s.destroyedIDs, publicID)
	return nil
}

func TestCreateBanner_UploadLoiThiKhongGhiDocument(t *testing.T) {
	spy := &spyBlobStore{uploadErr: errors.New("cloudinary timeout")}
	svc := &BannerService{blobStore: spy}

	_, err := svc.CreateBanner(context.Background(), strings.NewReader("anh"), "banner.webp")

	assert.Error(t, err)
	assert.Equal(t, 1, spy.uploadCalls)
	// Upload chưa thành công thì không có blob nào để bù
	assert.Equal(t, 0, spy.destroyCalls)
}
