package reportsvc

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	reportdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/dto"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// GetStockReport báo cáo tồn kho hiện hành: gộp quantity theo (productId, stockId),
// bỏ qua bản ghi đã xóa mềm, kèm tên sản phẩm và tên kho.
func (s *ReportService) GetStockReport(ctx context.Context) (*reportdto.StockReportResult, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"isDeleted": bson.M{"$ne": true}}},
		{"$group": bson.M{
			"_id":      bson.M{"productId": "$productId", "stockId": "$stockId"},
			"quantity": bson.M{"$sum": "$quantity"},
		}},
	}
	cursor, err := s.inventory.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	type groupDoc struct {
		ID struct {
			ProductID string             `bson:"productId"`
			StockID   primitive.ObjectID `bson:"stockId"`
		} `bson:"_id"`
		Quantity int64 `bson:"quantity"`
	}

	result := &reportdto.StockReportResult{Items: []reportdto.StockReportItem{}}
	productIds := make(map[string]bool)
	stockIds := make(map[primitive.ObjectID]bool)
	var groups []groupDoc
	for cursor.Next(ctx) {
		var doc groupDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		groups = append(groups, doc)
		productIds[doc.ID.ProductID] = true
		stockIds[doc.ID.StockID] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	productNames, err := s.loadProductNames(ctx, productIds)
	if err != nil {
		return nil, err
	}
	stockNames, err := s.loadStockNames(ctx, stockIds)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		productName := productNames[g.ID.ProductID]
		if productName == "" {
			productName = "Không xác định"
		}
		stockName := stockNames[g.ID.StockID]
		if stockName == "" {
			stockName = "Không xác định"
		}
		result.Items = append(result.Items, reportdto.StockReportItem{
			ProductID:   g.ID.ProductID,
			ProductName: productName,
			StockID:     g.ID.StockID.Hex(),
			StockName:   stockName,
			Quantity:    g.Quantity,
		})
		result.TotalQuantity += g.Quantity
	}
	sort.Slice(result.Items, func(i, j int) bool {
		if result.Items[i].ProductName != result.Items[j].ProductName {
			return result.Items[i].ProductName < result.Items[j].ProductName
		}
		return result.Items[i].StockName < result.Items[j].StockName
	})
	return result, nil
}

// loadProductNames map itemId -> tên sản phẩm.
func (s *ReportService) loadProductNames(ctx context.Context, ids map[string]bool) (map[string]string, error) {
	names := make(map[string]string)
	if len(ids) == 0 {
		return names, nil
	}
	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}
	opts := options.Find().SetProjection(bson.M{"itemId": 1, "name": 1})
	cursor, err := s.products.Find(ctx, bson.M{"itemId": bson.M{"$in": idList}}, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var doc struct {
			ItemID string `bson:"itemId"`
			Name   string `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		names[doc.ItemID] = doc.Name
	}
	return names, cursor.Err()
}

// loadStockNames map stockId -> tên kho.
func (s *ReportService) loadStockNames(ctx context.Context, ids map[primitive.ObjectID]bool) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string)
	if len(ids) == 0 {
		return names, nil
	}
	idList := make([]primitive.ObjectID, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1})
	cursor, err := s.stocks.Find(ctx, bson.M{"_id": bson.M{"$in": idList}}, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var doc struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		names[doc.ID] = doc.Name
	}
	return names, cursor.Err()
}
