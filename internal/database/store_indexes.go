// Package database - Index bổ sung cho cửa hàng (compound, nested fields) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateStoreAdditionalIndexes tạo các index bổ sung cho dữ liệu cửa hàng.
// Gọi sau CreateIndexes cho từng collection.
func CreateStoreAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// inventory: bộ tứ (productId, variantId, size, stockId) unique — upsert tồn kho
	inventory := db.Collection(global.MongoDB_ColNames.Inventory)
	if _, err := inventory.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "variantId", Value: 1},
			{Key: "size", Value: 1},
			{Key: "stockId", Value: 1},
		},
		Options: options.Index().SetName("inventory_tuple_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (status, createdAt) — danh sách đơn theo trạng thái, mới nhất trước
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: items.itemId multikey — tra đơn chứa sản phẩm (báo cáo bán hàng)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "items.itemId", Value: 1},
		},
		Options: options.Index().SetName("order_item_id"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: customer.phone sparse — tra cứu đơn theo số điện thoại khách
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customer.phone", Value: 1},
		},
		Options: options.Index().SetName("order_customer_phone").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// delivery_queue: (status, priority, createdAt) — vòng lặp lấy item chờ gửi
	queue := db.Collection(global.MongoDB_ColNames.DeliveryQueue)
	if _, err := queue.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "priority", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("delivery_queue_pending"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
