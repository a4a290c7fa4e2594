package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	ordermodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	reportdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/dto"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// GetDailyOverview tổng quan hôm nay: đơn, doanh thu, chi phí, chênh lệch.
func (s *ReportService) GetDailyOverview(ctx context.Context) (*reportdto.OverviewResult, error) {
	now := time.Now()
	from, to := DayBounds(now)
	return s.buildOverview(ctx, now.Format("2006-01-02"), from, to)
}

// GetMonthlyOverview tổng quan tháng này.
func (s *ReportService) GetMonthlyOverview(ctx context.Context) (*reportdto.OverviewResult, error) {
	now := time.Now()
	from, to := MonthBounds(now)
	return s.buildOverview(ctx, now.Format("2006-01"), from, to)
}

func (s *ReportService) buildOverview(ctx context.Context, period string, from, to int64) (*reportdto.OverviewResult, error) {
	result := &reportdto.OverviewResult{Period: period, From: from, To: to}

	pipeline := []bson.M{
		{"$match": bson.M{
			"createdAt": bson.M{"$gte": from, "$lte": to},
			"status":    bson.M{"$ne": ordermodels.OrderStatusCancelled},
		}},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$total"},
		}},
	}
	cursor, err := s.orders.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)
	if cursor.Next(ctx) {
		var doc struct {
			Count   int64   `bson:"count"`
			Revenue float64 `bson:"revenue"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		result.OrderCount = doc.Count
		result.Revenue = doc.Revenue
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	expenseTotal, err := s.sumExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}
	result.ExpenseTotal = expenseTotal
	result.Net = result.Revenue - result.ExpenseTotal
	return result, nil
}
