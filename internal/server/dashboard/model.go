package dashboard

// Summary is the landing-page aggregate: current month metrics, growth
// against the previous month, and the attention lists.
type Summary struct {
	CurrentMonthRevenue    float64            `json:"current_month_revenue"`
	CurrentMonthSalesCount int                `json:"current_month_sales_count"`
	RevenueGrowth          float64            `json:"revenue_growth"`
	CurrentBalance         float64            `json:"current_balance"`
	LowStockMaterialsCount int                `json:"low_stock_materials_count"`
	LowStockMaterials      []LowStockMaterial `json:"low_stock_materials"`
	TopProducts            []SummaryProduct   `json:"top_products"`
	CurrentMonthExpenses   float64            `json:"current_month_expenses"`
	RecentProductions      int                `json:"recent_productions"`
}

// LowStockMaterial is a material whose stock fell to or below its alert level.
type LowStockMaterial struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	StockQuantity float64 `json:"stock_quantity"`
	MinStockAlert float64 `json:"min_stock_alert"`
}

// SummaryProduct is the short best-seller row embedded in the summary.
type SummaryProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// SalesPoint is one month of the sales chart.
type SalesPoint struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	SalesCount int     `json:"sales_count"`
}

// TopProduct is one row of the standalone best-sellers report.
type TopProduct struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	QuantitySold int     `json:"quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// MonthlyRow is a raw month bucket as produced by the sales aggregation
// query; the service turns it into a labelled SalesPoint.
type MonthlyRow struct {
	Year       int
	Month      int
	Revenue    float64
	SalesCount int
}
