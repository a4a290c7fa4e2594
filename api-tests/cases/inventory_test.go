package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"neverbe_api_tests/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInventoryModule kiểm tra API tồn kho: upsert theo bộ tứ
// (productId, variantId, size, stockId), cách ly giữa các bộ tứ,
// ghi đè số lượng tuyệt đối và phân trang.
func TestInventoryModule(t *testing.T) {
	serverURL := "http://localhost:8080"
	waitForHealth(serverURL, 10, 1*time.Second, t)

	client := utils.NewHTTPClient(serverURL, 10)
	client.SetToken(adminToken(t))

	// Mỗi lần chạy dùng productId riêng để không đụng dữ liệu cũ
	productID := fmt.Sprintf("giay-test-%d", time.Now().UnixNano())
	variantID := "den"

	var stockID string
	var recordID string
	var secondRecordID string

	// parseEnvelope đọc envelope chuẩn {code, message, data, status}
	parseEnvelope := func(t *testing.T, body []byte) map[string]interface{} {
		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &result), "Phải parse được JSON response")
		return result
	}

	// listByProduct trả về items của GET /api/v2/inventory?productId=...
	listByProduct := func(t *testing.T) []interface{} {
		resp, body, err := client.GET("/api/v2/inventory/?productId=" + productID)
		require.NoError(t, err, "Lỗi khi liệt kê tồn kho")
		require.Equal(t, http.StatusOK, resp.StatusCode, "LIST tồn kho thất bại (body: %s)", string(body))

		result := parseEnvelope(t, body)
		data, ok := result["data"].(map[string]interface{})
		require.True(t, ok, "data phải là object phân trang")
		items, _ := data["items"].([]interface{})
		return items
	}

	// ============================================
	// SETUP: tạo địa điểm kho
	// ============================================
	t.Run("SETUP - Tạo địa điểm kho", func(t *testing.T) {
		payload := map[string]interface{}{
			"name":    fmt.Sprintf("Kho Test %d", time.Now().UnixNano()),
			"address": "123 Galle Road, Colombo",
		}

		resp, body, err := client.POST("/api/v2/master/stocks/", payload)
		if err != nil {
			t.Fatalf("❌ Lỗi khi tạo kho: %v", err)
		}

		require.True(t, resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated,
			"CREATE kho thất bại (status: %d, body: %s)", resp.StatusCode, string(body))

		result := parseEnvelope(t, body)
		assert.Equal(t, "success", result["status"], "Status phải là success")

		data, ok := result["data"].(map[string]interface{})
		require.True(t, ok, "data phải là object")
		stockID, _ = data["id"].(string)
		require.NotEmpty(t, stockID, "Phải có stock ID")
		fmt.Printf("✅ CREATE kho thành công, ID: %s\n", stockID)
	})

	// ============================================
	// UPSERT: cùng bộ tứ hai lần → một bản ghi, số lượng bị thay
	// ============================================
	t.Run("📦 UPSERT - Cùng bộ tứ hai lần chỉ còn một bản ghi", func(t *testing.T) {
		if stockID == "" {
			t.Skip("Skipping: Chưa có stock ID")
		}

		payload := map[string]interface{}{
			"productId": productID,
			"variantId": variantID,
			"size":      "42",
			"stockId":   stockID,
			"quantity":  10,
		}

		// Lần 1: tạo mới
		resp, body, err := client.POST("/api/v2/inventory/", payload)
		require.NoError(t, err, "Lỗi khi upsert tồn kho lần 1")
		require.Equal(t, http.StatusOK, resp.StatusCode, "UPSERT lần 1 thất bại (body: %s)", string(body))
		result := parseEnvelope(t, body)
		assert.Equal(t, "success", result["status"], "Status phải là success")
		fmt.Printf("✅ UPSERT lần 1 (quantity=10) thành công\n")

		// Lần 2: cùng bộ tứ, số lượng khác → thay số lượng, không thêm bản ghi
		payload["quantity"] = 25
		resp, body, err = client.POST("/api/v2/inventory/", payload)
		require.NoError(t, err, "Lỗi khi upsert tồn kho lần 2")
		require.Equal(t, http.StatusOK, resp.StatusCode, "UPSERT lần 2 thất bại (body: %s)", string(body))
		fmt.Printf("✅ UPSERT lần 2 (quantity=25) thành công\n")

		items := listByProduct(t)
		require.Len(t, items, 1, "Cùng bộ tứ upsert hai lần phải chỉ còn MỘT bản ghi")

		record, ok := items[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(25), record["quantity"], "Số lượng phải bị thay bằng giá trị mới nhất")
		recordID, _ = record["id"].(string)
		require.NotEmpty(t, recordID, "Phải có record ID")
		fmt.Printf("✅ Xác nhận một bản ghi duy nhất, quantity=25, ID: %s\n", recordID)
	})

	// ============================================
	// ISOLATION: bộ tứ khác (size khác) tạo bản ghi riêng
	// ============================================
	t.Run("🔀 ISOLATION - Bộ tứ khác không ảnh hưởng lẫn nhau", func(t *testing.T) {
		if stockID == "" || recordID == "" {
			t.Skip("Skipping: Chưa có dữ liệu từ bước upsert")
		}

		payload := map[string]interface{}{
			"productId": productID,
			"variantId": variantID,
			"size":      "43",
			"stockId":   stockID,
			"quantity":  5,
		}

		resp, body, err := client.POST("/api/v2/inventory/", payload)
		require.NoError(t, err, "Lỗi khi upsert bộ tứ thứ hai")
		require.Equal(t, http.StatusOK, resp.StatusCode, "UPSERT bộ tứ thứ hai thất bại (body: %s)", string(body))

		items := listByProduct(t)
		require.Len(t, items, 2, "Hai bộ tứ khác nhau phải là HAI bản ghi riêng")

		quantityBySize := map[string]float64{}
		for _, it := range items {
			record, ok := it.(map[string]interface{})
			require.True(t, ok)
			size, _ := record["size"].(string)
			qty, _ := record["quantity"].(float64)
			quantityBySize[size] = qty
			if size == "43" {
				secondRecordID, _ = record["id"].(string)
			}
		}
		assert.Equal(t, float64(25), quantityBySize["42"], "Bản ghi size 42 phải giữ nguyên quantity=25")
		assert.Equal(t, float64(5), quantityBySize["43"], "Bản ghi size 43 phải có quantity=5")
		fmt.Printf("✅ Hai bộ tứ cách ly đúng: size 42 = 25, size 43 = 5\n")
	})

	// ============================================
	// SET QUANTITY: PUT v1 ghi đè số lượng tuyệt đối theo id
	// ============================================
	t.Run("✏️ SET_QUANTITY - PUT v1 ghi đè số lượng theo id", func(t *testing.T) {
		if recordID == "" {
			t.Skip("Skipping: Chưa có record ID")
		}

		payload := map[string]interface{}{"quantity": 7}
		resp, body, err := client.PUT("/api/v1/inventory/"+recordID, payload)
		require.NoError(t, err, "Lỗi khi set quantity")
		require.Equal(t, http.StatusOK, resp.StatusCode, "SET quantity thất bại (body: %s)", string(body))

		resp, body, err = client.GET("/api/v2/inventory/" + recordID)
		require.NoError(t, err, "Lỗi khi đọc lại bản ghi")
		require.Equal(t, http.StatusOK, resp.StatusCode, "READ bản ghi thất bại (body: %s)", string(body))

		result := parseEnvelope(t, body)
		record, ok := result["data"].(map[string]interface{})
		require.True(t, ok, "data phải là object")
		assert.Equal(t, float64(7), record["quantity"], "Số lượng phải bị ghi đè thành 7")
		fmt.Printf("✅ SET quantity=7 thành công\n")
	})

	// ============================================
	// PAGINATION: tham số size là alias của limit
	// ============================================
	t.Run("📄 PAGINATION - Tham số size giới hạn số item mỗi trang", func(t *testing.T) {
		if recordID == "" || secondRecordID == "" {
			t.Skip("Skipping: Chưa đủ hai bản ghi")
		}

		resp, body, err := client.GET("/api/v2/inventory/?productId=" + productID + "&page=1&size=1")
		require.NoError(t, err, "Lỗi khi phân trang")
		require.Equal(t, http.StatusOK, resp.StatusCode, "LIST phân trang thất bại (body: %s)", string(body))

		result := parseEnvelope(t, body)
		data, ok := result["data"].(map[string]interface{})
		require.True(t, ok, "data phải là object phân trang")
		assert.Equal(t, float64(1), data["limit"], "size=1 phải được nhận làm limit")
		assert.Equal(t, float64(2), data["total"], "Tổng phải là 2 bản ghi")
		items, _ := data["items"].([]interface{})
		assert.Len(t, items, 1, "Trang phải chứa đúng 1 item")
		fmt.Printf("✅ Phân trang với size=1 trả đúng limit=1, total=2\n")
	})

	// ============================================
	// CLEANUP: xóa các bản ghi tồn kho và kho test
	// ============================================
	t.Run("🧹 CLEANUP - Xóa dữ liệu test", func(t *testing.T) {
		for _, id := range []string{recordID, secondRecordID} {
			if id == "" {
				continue
			}
			resp, body, err := client.DELETE("/api/v2/inventory/" + id)
			if err != nil {
				t.Logf("⚠️ Lỗi khi xóa bản ghi tồn kho %s: %v", id, err)
				continue
			}
			if resp.StatusCode != http.StatusOK {
				t.Logf("⚠️ DELETE tồn kho %s (status: %d, body: %s)", id, resp.StatusCode, string(body))
			}
		}
		if stockID != "" {
			resp, body, err := client.DELETE("/api/v2/master/stocks/" + stockID)
			if err != nil {
				t.Logf("⚠️ Lỗi khi xóa kho test: %v", err)
			} else if resp.StatusCode != http.StatusOK {
				t.Logf("⚠️ DELETE kho test (status: %d, body: %s)", resp.StatusCode, string(body))
			}
		}
		fmt.Printf("✅ Dọn dẹp dữ liệu test xong\n")
	})

	fmt.Printf("\n✅ Hoàn thành test module tồn kho\n")
}
