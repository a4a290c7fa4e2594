package reportsvc

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	reportdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/dto"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// GetExpenseReport báo cáo chi phí trong from..to, gộp theo loại.
func (s *ReportService) GetExpenseReport(ctx context.Context, from, to int64) (*reportdto.ExpenseReportResult, error) {
	from, to = ResolvePeriod(from, to, time.Now())
	result := &reportdto.ExpenseReportResult{From: from, To: to, ByType: []reportdto.ExpenseTypeItem{}}

	pipeline := []bson.M{
		{"$match": bson.M{
			"createdAt": bson.M{"$gte": from, "$lte": to},
			"isDeleted": bson.M{"$ne": true},
		}},
		{"$group": bson.M{
			"_id":    bson.M{"$ifNull": bson.A{"$type", "Không xác định"}},
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$amount"},
		}},
	}
	cursor, err := s.expenses.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var doc struct {
			ID     string  `bson:"_id"`
			Count  int64   `bson:"count"`
			Amount float64 `bson:"amount"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		result.ByType = append(result.ByType, reportdto.ExpenseTypeItem{
			Type:   doc.ID,
			Count:  doc.Count,
			Amount: doc.Amount,
		})
		result.TotalAmount += doc.Amount
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	sort.Slice(result.ByType, func(i, j int) bool {
		return result.ByType[i].Amount > result.ByType[j].Amount
	})
	return result, nil
}
