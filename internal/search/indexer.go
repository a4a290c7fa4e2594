// Package search đồng bộ sản phẩm sang Elasticsearch cho storefront search.
// Address rỗng = tắt indexing, toàn bộ package trở thành no-op.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	catalogmodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/catalog/models"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/logger"
)

// productDoc document đánh index cho một sản phẩm.
type productDoc struct {
	ItemID       string   `json:"itemId"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	SellingPrice float64  `json:"sellingPrice"`
	Discount     float64  `json:"discount"`
	FinalPrice   float64  `json:"finalPrice"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Status       string   `json:"status"`
	UpdatedAt    int64    `json:"updatedAt"`
}

// ProductIndexer đẩy sản phẩm lên Elasticsearch. Push lỗi được giữ trong
// backlog, SyncWorker sẽ retry.
type ProductIndexer struct {
	client    *elasticsearch.Client
	indexName string

	mu      sync.Mutex
	backlog map[string]*catalogmodels.Product // itemId -> bản ghi mới nhất chờ retry; nil = chờ xóa
}

// NewProductIndexer tạo indexer. address rỗng trả về nil (indexing tắt);
// caller phải chịu được indexer nil.
func NewProductIndexer(address, apiKey, indexName string) (*ProductIndexer, error) {
	if address == "" {
		return nil, nil
	}
	cfg := elasticsearch.Config{Addresses: []string{address}}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch init: %w", err)
	}
	return &ProductIndexer{
		client:    client,
		indexName: indexName,
		backlog:   make(map[string]*catalogmodels.Product),
	}, nil
}

// IndexProduct đẩy một sản phẩm lên index. Lỗi được ghi backlog để retry.
func (ix *ProductIndexer) IndexProduct(ctx context.Context, product catalogmodels.Product) {
	if ix == nil {
		return
	}
	if err := ix.push(ctx, product); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"itemId": product.ItemID,
		}).Warn("Index sản phẩm thất bại, đưa vào backlog")
		ix.mu.Lock()
		ix.backlog[product.ItemID] = &product
		ix.mu.Unlock()
	}
}

// DeleteProduct gỡ sản phẩm khỏi index (khi xóa mềm hoặc xóa hẳn).
func (ix *ProductIndexer) DeleteProduct(ctx context.Context, itemID string) {
	if ix == nil {
		return
	}
	if err := ix.remove(ctx, itemID); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"itemId": itemID,
		}).Warn("Gỡ sản phẩm khỏi index thất bại, đưa vào backlog")
		ix.mu.Lock()
		ix.backlog[itemID] = nil
		ix.mu.Unlock()
	}
}

// RetryBacklog thử lại toàn bộ backlog. Trả về số entry xử lý thành công.
func (ix *ProductIndexer) RetryBacklog(ctx context.Context) int {
	if ix == nil {
		return 0
	}
	ix.mu.Lock()
	pending := ix.backlog
	ix.backlog = make(map[string]*catalogmodels.Product)
	ix.mu.Unlock()

	done := 0
	for itemID, product := range pending {
		var err error
		if product == nil {
			err = ix.remove(ctx, itemID)
		} else {
			err = ix.push(ctx, *product)
		}
		if err != nil {
			ix.mu.Lock()
			// Không ghi đè entry mới hơn đã vào backlog trong lúc retry
			if _, exists := ix.backlog[itemID]; !exists {
				ix.backlog[itemID] = product
			}
			ix.mu.Unlock()
			continue
		}
		done++
	}
	return done
}

// BacklogSize trả về số entry đang chờ retry.
func (ix *ProductIndexer) BacklogSize() int {
	if ix == nil {
		return 0
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return len(ix.backlog)
}

func (ix *ProductIndexer) push(ctx context.Context, product catalogmodels.Product) error {
	doc := productDoc{
		ItemID:       product.ItemID,
		Name:         product.Name,
		Type:         product.Type,
		Manufacturer: product.Manufacturer,
		Tags:         product.Tags,
		SellingPrice: product.SellingPrice,
		Discount:     product.Discount,
		FinalPrice:   product.FinalPrice(),
		Thumbnail:    product.Thumbnail.URL,
		Status:       product.Status,
		UpdatedAt:    product.UpdatedAt,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal product doc: %w", err)
	}

	res, err := ix.client.Index(
		ix.indexName,
		bytes.NewReader(body),
		ix.client.Index.WithDocumentID(product.ItemID),
		ix.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index request: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("elasticsearch trả về %s", res.Status())
	}
	return nil
}

func (ix *ProductIndexer) remove(ctx context.Context, itemID string) error {
	res, err := ix.client.Delete(
		ix.indexName,
		itemID,
		ix.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer res.Body.Close()
	// 404 = đã không còn trong index, coi như thành công
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("elasticsearch trả về %s", res.Status())
	}
	return nil
}
