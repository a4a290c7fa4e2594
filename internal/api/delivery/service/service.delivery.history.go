// Package deliverysvc - DeliveryHistoryService (xem service.delivery.queue.go cho package doc).
package deliverysvc

import (
	"fmt"

	basesvc "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/base/service"
	deliverymodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/delivery/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// DeliveryHistoryService quản lý lịch sử gửi thông báo.
type DeliveryHistoryService struct {
	*basesvc.BaseServiceMongoImpl[deliverymodels.DeliveryHistory]
}

// NewDeliveryHistoryService tạo mới DeliveryHistoryService
func NewDeliveryHistoryService() (*DeliveryHistoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DeliveryHistory)
	if !exist {
		return nil, fmt.Errorf("failed to get delivery_history collection: %v", common.ErrNotFound)
	}
	return &DeliveryHistoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[deliverymodels.DeliveryHistory](collection),
	}, nil
}
