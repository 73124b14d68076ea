// Package models holds the wire-level records the client exchanges with the
// remote service. JSON tags mirror the service contract exactly.
package models

// Summary carries aggregate metrics for the landing dashboard.
type Summary struct {
	CurrentMonthRevenue    float64            `json:"current_month_revenue"`
	RevenueGrowth          float64            `json:"revenue_growth"`
	CurrentMonthSalesCount int                `json:"current_month_sales_count"`
	CurrentBalance         float64            `json:"current_balance"`
	LowStockMaterialsCount int                `json:"low_stock_materials_count"`
	LowStockMaterials      []LowStockMaterial `json:"low_stock_materials"`
	CurrentMonthExpenses   float64            `json:"current_month_expenses"`
	RecentProductions      int                `json:"recent_productions"`
}

// LowStockMaterial is a material whose stock fell below its alert level.
type LowStockMaterial struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StockQuantity float64 `json:"stock_quantity"`
	Unit          string  `json:"unit"`
}

// SalesPoint is one month of the sales chart, chronological order assumed.
type SalesPoint struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	SalesCount int     `json:"sales_count"`
}

// TopProduct is one row of the best-sellers list, ordered by the service.
type TopProduct struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	QuantitySold int     `json:"quantity_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}
