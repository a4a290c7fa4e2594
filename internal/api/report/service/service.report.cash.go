package reportsvc

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	ordermodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	reportdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/dto"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// GetCashReport báo cáo dòng tiền trong from..to: tiền vào là đơn đã thanh toán
// (gộp theo phương thức), tiền ra là tổng expenses cùng kỳ.
func (s *ReportService) GetCashReport(ctx context.Context, from, to int64) (*reportdto.CashReportResult, error) {
	from, to = ResolvePeriod(from, to, time.Now())
	result := &reportdto.CashReportResult{From: from, To: to, ByMethod: []reportdto.CashMethodItem{}}

	pipeline := []bson.M{
		{"$match": bson.M{
			"createdAt":     bson.M{"$gte": from, "$lte": to},
			"paymentStatus": ordermodels.PaymentStatusPaid,
		}},
		{"$group": bson.M{
			"_id":    bson.M{"$ifNull": bson.A{"$paymentMethod", "Không xác định"}},
			"count":  bson.M{"$sum": 1},
			"amount": bson.M{"$sum": "$total"},
		}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline, options.Aggregate())
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
		result.ByMethod = append(result.ByMethod, reportdto.CashMethodItem{
			PaymentMethod: doc.ID,
			OrderCount:    doc.Count,
			Amount:        doc.Amount,
		})
		result.TotalIn += doc.Amount
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	sort.Slice(result.ByMethod, func(i, j int) bool {
		return result.ByMethod[i].Amount > result.ByMethod[j].Amount
	})

	totalOut, err := s.sumExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}
	result.TotalOut = totalOut
	result.Net = result.TotalIn - result.TotalOut
	return result, nil
}

// sumExpenses tổng chi phí (chưa xóa mềm) trong from..to.
func (s *ReportService) sumExpenses(ctx context.Context, from, to int64) (float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"createdAt": bson.M{"$gte": from, "$lte": to},
			"isDeleted": bson.M{"$ne": true},
		}},
		{"$group": bson.M{
			"_id":    nil,
			"amount": bson.M{"$sum": "$amount"},
		}},
	}
	cursor, err := s.expenses.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	var total float64
	if cursor.Next(ctx) {
		var doc struct {
			Amount float64 `bson:"amount"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return 0, common.ConvertMongoError(err)
		}
		total = doc.Amount
	}
	return total, cursor.Err()
}
