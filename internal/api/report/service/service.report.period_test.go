// Package reportsvc - Test chuẩn hóa khoảng thời gian và bucket báo cáo.
package reportsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod_MacDinh(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

	// Thiếu cả hai: to = now, from = to - 30 ngày
	from, to := ResolvePeriod(0, 0, now)
	assert.Equal(t, now.UnixMilli(), to)
	assert.Equal(t, now.AddDate(0, 0, -30).UnixMilli(), from)

	// Chỉ thiếu from
	explicitTo := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	from, to = ResolvePeriod(0, explicitTo, now)
	assert.Equal(t, explicitTo, to)
	assert.Equal(t, time.UnixMilli(explicitTo).AddDate(0, 0, -30).UnixMilli(), from)
}

func TestResolvePeriod_HoanDoiKhiNguoc(t *testing.T) {
	now := time.Now()
	a := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local).UnixMilli()
	b := time.Date(2025, 3, 20, 0, 0, 0, 0, time.Local).UnixMilli()

	from, to := ResolvePeriod(b, a, now)
	assert.Equal(t, a, from)
	assert.Equal(t, b, to)
}

func TestBucketKey(t *testing.T) {
	ms := time.Date(2025, 2, 7, 23, 59, 59, 0, time.Local).UnixMilli()
	assert.Equal(t, "2025-02-07", BucketKey(ms, GranularityDaily))
	assert.Equal(t, "2025-02", BucketKey(ms, GranularityMonthly))
}

func TestBucketKeys_Daily_LienTucBaoGomHaiDau(t *testing.T) {
	from := time.Date(2025, 1, 30, 15, 0, 0, 0, time.Local).UnixMilli()
	to := time.Date(2025, 2, 2, 1, 0, 0, 0, time.Local).UnixMilli()

	keys := BucketKeys(from, to, GranularityDaily)
	assert.Equal(t, []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}, keys)
}

func TestBucketKeys_Monthly(t *testing.T) {
	from := time.Date(2024, 11, 20, 0, 0, 0, 0, time.Local).UnixMilli()
	to := time.Date(2025, 2, 5, 0, 0, 0, 0, time.Local).UnixMilli()

	keys := BucketKeys(from, to, GranularityMonthly)
	assert.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-02"}, keys)
}

func TestBucketKeys_MotNgay(t *testing.T) {
	ms := time.Date(2025, 5, 5, 8, 0, 0, 0, time.Local).UnixMilli()
	assert.Equal(t, []string{"2025-05-05"}, BucketKeys(ms, ms, GranularityDaily))
}

func TestDayBounds(t *testing.T) {
	now := time.Date(2025, 7, 10, 14, 22, 5, 0, time.Local)
	start, end := DayBounds(now)

	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.Local).UnixMilli(), start)
	assert.Equal(t, time.Date(2025, 7, 11, 0, 0, 0, 0, time.Local).UnixMilli()-1, end)
}

func TestMonthBounds_QuaThangNhuanVaCuoiNam(t *testing.T) {
	// Tháng 2 năm nhuận
	feb := time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local)
	start, end := MonthBounds(feb)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local).UnixMilli(), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local).UnixMilli()-1, end)

	// Tháng 12 lăn sang năm mới
	dec := time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local)
	start, end = MonthBounds(dec)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.Local).UnixMilli(), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local).UnixMilli()-1, end)
}
