package models

// ProductAnalytics 单个商品的分析结果（按请求实时计算，不落库）
type ProductAnalytics struct {
	ProductID           uint    `json:"product_id"`
	ProductName         string  `json:"product_name"`
	ProductCode         string  `json:"product_code"`
	BrandName           string  `json:"brand_name"`
	SellInQuantity      int64   `json:"sell_in_quantity"`
	SellThroughQuantity int64   `json:"sell_through_quantity"`
	TurnoverRate        float64 `json:"turnover_rate"`
	TotalRevenue        float64 `json:"total_revenue"`
	CurrentStock        int64   `json:"current_stock"`
}

// OverallAnalytics 全量汇总分析结果
type OverallAnalytics struct {
	TotalSellIn         int64   `json:"total_sell_in"`
	TotalSellThrough    int64   `json:"total_sell_through"`
	AverageTurnoverRate float64 `json:"average_turnover_rate"`
	TotalRevenue        float64 `json:"total_revenue"`
}
