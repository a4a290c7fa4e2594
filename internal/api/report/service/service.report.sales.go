package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	ordermodels "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/order/models"
	reportdto "github.com/HewageNKM/NEVER-PANEL-sub001/internal/api/report/dto"
	"github.com/HewageNKM/NEVER-PANEL-sub001/internal/common"
)

// GetSalesReport báo cáo doanh số: gộp đơn hàng theo bucket thời gian trong from..to.
// Đơn Cancelled không tính doanh số. Bucket không có đơn vẫn xuất hiện với giá trị 0.
func (s *ReportService) GetSalesReport(ctx context.Context, from, to int64, granularity string) (*reportdto.SalesReportResult, error) {
	from, to = ResolvePeriod(from, to, time.Now())
	if granularity != GranularityMonthly {
		granularity = GranularityDaily
	}

	filter := bson.M{
		"createdAt": bson.M{"$gte": from, "$lte": to},
		"status":    bson.M{"$ne": ordermodels.OrderStatusCancelled},
	}
	cursor, err := s.orders.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	byKey := make(map[string]*reportdto.SalesBucket)
	result := &reportdto.SalesReportResult{From: from, To: to}
	for cursor.Next(ctx) {
		var order ordermodels.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, common.ConvertMongoError(err)
		}
		key := BucketKey(order.CreatedAt, granularity)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &reportdto.SalesBucket{Period: key}
			byKey[key] = bucket
		}
		bucket.OrderCount++
		for _, item := range order.Items {
			bucket.ItemCount += int64(item.Quantity)
		}
		bucket.Revenue += order.Total
		bucket.Discount += order.Discount
		bucket.ShippingFee += order.ShippingFee

		result.TotalOrders++
		result.TotalRevenue += order.Total
	}
	if err := cursor.Err(); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Chuỗi bucket liên tục, kể cả kỳ trống
	keys := BucketKeys(from, to, granularity)
	result.Buckets = make([]reportdto.SalesBucket, 0, len(keys))
	for _, key := range keys {
		if bucket, ok := byKey[key]; ok {
			result.Buckets = append(result.Buckets, *bucket)
			continue
		}
		result.Buckets = append(result.Buckets, reportdto.SalesBucket{Period: key})
	}
	return result, nil
}
