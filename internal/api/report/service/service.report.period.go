// Package reportsvc - báo cáo bán hàng / tồn kho / dòng tiền / chi phí, query trực tiếp DB.
package reportsvc

import (
	"time"
)

// GranularityDaily / GranularityMonthly độ gộp bucket thời gian của báo cáo.
const (
	GranularityDaily   = "daily"
	GranularityMonthly = "monthly"
)

// ResolvePeriod chuẩn hóa khoảng thời gian báo cáo (UnixMilli).
// from <= 0: mặc định lùi 30 ngày từ to. to <= 0: mặc định now.
// from > to thì hoán đổi.
func ResolvePeriod(from, to int64, now time.Time) (int64, int64) {
	if to <= 0 {
		to = now.UnixMilli()
	}
	if from <= 0 {
		from = time.UnixMilli(to).AddDate(0, 0, -30).UnixMilli()
	}
	if from > to {
		from, to = to, from
	}
	return from, to
}

// BucketKey trả về khóa bucket cho một mốc thời gian UnixMilli:
// daily → "2006-01-02", monthly → "2006-01". Dùng local time của server.
func BucketKey(ms int64, granularity string) string {
	t := time.UnixMilli(ms)
	if granularity == GranularityMonthly {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}

// BucketKeys liệt kê mọi khóa bucket trong khoảng from..to theo thứ tự tăng dần,
// kể cả bucket không có dữ liệu (báo cáo trả về chuỗi liên tục).
func BucketKeys(from, to int64, granularity string) []string {
	if from > to {
		from, to = to, from
	}
	start := time.UnixMilli(from)
	end := time.UnixMilli(to)

	var keys []string
	if granularity == GranularityMonthly {
		cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
		last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
		for !cur.After(last) {
			keys = append(keys, cur.Format("2006-01"))
			cur = cur.AddDate(0, 1, 0)
		}
		return keys
	}

	cur := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	for !cur.After(last) {
		keys = append(keys, cur.Format("2006-01-02"))
		cur = cur.AddDate(0, 0, 1)
	}
	return keys
}

// DayBounds trả về [đầu ngày, cuối ngày) của now theo UnixMilli.
func DayBounds(now time.Time) (int64, int64) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start.UnixMilli(), start.AddDate(0, 0, 1).UnixMilli() - 1
}

// MonthBounds trả về [đầu tháng, cuối tháng) của now theo UnixMilli.
func MonthBounds(now time.Time) (int64, int64) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start.UnixMilli(), start.AddDate(0, 1, 0).UnixMilli() - 1
}
