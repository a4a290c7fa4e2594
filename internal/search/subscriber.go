package search

import (
	"context"

	catalogmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/events"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"
)

// RegisterProductSync đăng ký hook events: mỗi thay đổi trên collection products
// được phản chiếu sang Elasticsearch. Sản phẩm xóa mềm cũng bị gỡ khỏi index.
func RegisterProductSync(indexer *ProductIndexer) {
	if indexer == nil {
		return
	}
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Products {
			return
		}
		product, ok := e.Document.(catalogmodels.Product)
		if !ok {
			return
		}
		if e.Operation == events.OpDelete || product.IsDeleted {
			indexer.DeleteProduct(ctx, product.ItemID)
			return
		}
		indexer.IndexProduct(ctx, product)
	})
}
