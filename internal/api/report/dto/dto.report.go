// Package reportdto - DTO kết quả cho các báo cáo bán hàng / tồn kho / dòng tiền / chi phí.
package reportdto

// SalesBucket doanh số gộp theo một bucket thời gian (ngày hoặc tháng).
type SalesBucket struct {
	Period      string  `json:"period"` // "2006-01-02" hoặc "2006-01"
	OrderCount  int64   `json:"orderCount"`
	ItemCount   int64   `json:"itemCount"`
	Revenue     float64 `json:"revenue"`
	Discount    float64 `json:"discount"`
	ShippingFee float64 `json:"shippingFee"`
}

// SalesReportResult báo cáo doanh số trong khoảng from..to.
type SalesReportResult struct {
	From        int64         `json:"from"`
	To          int64         `json:"to"`
	TotalOrders int64         `json:"totalOrders"`
	TotalRevenue float64      `json:"totalRevenue"`
	Buckets     []SalesBucket `json:"buckets"`
}

// StockReportItem tồn kho gộp theo sản phẩm tại một kho.
type StockReportItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	StockID     string `json:"stockId"`
	StockName   string `json:"stockName"`
	Quantity    int64  `json:"quantity"`
}

// StockReportResult báo cáo tồn kho hiện hành.
type StockReportResult struct {
	TotalQuantity int64             `json:"totalQuantity"`
	Items         []StockReportItem `json:"items"`
}

// CashMethodItem doanh thu đã thu theo phương thức thanh toán.
type CashMethodItem struct {
	PaymentMethod string  `json:"paymentMethod"`
	OrderCount    int64   `json:"orderCount"`
	Amount        float64 `json:"amount"`
}

// CashReportResult báo cáo dòng tiền: thu (đơn đã thanh toán) trừ chi (expenses).
type CashReportResult struct {
	From         int64            `json:"from"`
	To           int64            `json:"to"`
	TotalIn      float64          `json:"totalIn"`
	TotalOut     float64          `json:"totalOut"`
	Net          float64          `json:"net"`
	ByMethod     []CashMethodItem `json:"byMethod"`
}

// ExpenseTypeItem tổng chi theo loại chi phí.
type ExpenseTypeItem struct {
	Type   string  `json:"type"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// ExpenseReportResult báo cáo chi phí trong khoảng from..to.
type ExpenseReportResult struct {
	From        int64             `json:"from"`
	To          int64             `json:"to"`
	TotalAmount float64           `json:"totalAmount"`
	ByType      []ExpenseTypeItem `json:"byType"`
}

// OverviewResult tổng quan một kỳ (hôm nay hoặc tháng này): doanh thu, đơn, chi phí, lợi nhuận gộp.
type OverviewResult struct {
	Period       string  `json:"period"`
	From         int64   `json:"from"`
	To           int64   `json:"to"`
	OrderCount   int64   `json:"orderCount"`
	Revenue      float64 `json:"revenue"`
	ExpenseTotal float64 `json:"expenseTotal"`
	Net          float64 `json:"net"`
}
