// Package dashboard computes the aggregate metrics behind the landing
// dashboard: monthly revenue and growth, expense balance, low-stock alerts,
// production activity, the monthly sales chart, and the best-sellers report.
package dashboard

import (
	"context"
	"math"
	"time"
)

const (
	lowStockDisplayLimit = 5
	summaryTopLimit      = 5
	topProductsLimit     = 10
	defaultTopDays       = 30
)

type Service struct {
	repo Repository

	// now is a test seam for period boundaries.
	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Summary assembles the aggregate for the current calendar month. Growth is
// relative to the previous month's revenue and reported as a percentage
// rounded to two decimals; when the previous month had no revenue the growth
// is zero.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {

	today := s.now()
	currentMonthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	lastMonthStart := currentMonthStart.AddDate(0, -1, 0)

	currentRevenue, currentCount, err := s.repo.SalesTotals(ctx, currentMonthStart, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	lastRevenue, _, err := s.repo.SalesTotals(ctx, lastMonthStart, currentMonthStart)
	if err != nil {
		return nil, err
	}

	var growth float64
	if lastRevenue > 0 {
		growth = math.Round((currentRevenue-lastRevenue)/lastRevenue*100*100) / 100
	}

	lowStock, err := s.repo.LowStockMaterials(ctx)
	if err != nil {
		return nil, err
	}
	lowStockCount := len(lowStock)
	if len(lowStock) > lowStockDisplayLimit {
		lowStock = lowStock[:lowStockDisplayLimit]
	}

	top, err := s.repo.TopProducts(ctx, today.AddDate(0, 0, -defaultTopDays), summaryTopLimit)
	if err != nil {
		return nil, err
	}
	summaryTop := make([]SummaryProduct, 0, len(top))
	for _, p := range top {
		summaryTop = append(summaryTop, SummaryProduct{Name: p.Name, Quantity: p.QuantitySold})
	}

	expenses, err := s.repo.ExpensesTotal(ctx, currentMonthStart)
	if err != nil {
		return nil, err
	}

	productions, err := s.repo.ProductionsCount(ctx, today.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	return &Summary{
		CurrentMonthRevenue:    currentRevenue,
		CurrentMonthSalesCount: currentCount,
		RevenueGrowth:          growth,
		CurrentBalance:         currentRevenue - expenses,
		LowStockMaterialsCount: lowStockCount,
		LowStockMaterials:      lowStock,
		TopProducts:            summaryTop,
		CurrentMonthExpenses:   expenses,
		RecentProductions:      productions,
	}, nil
}

// SalesChart returns one point per month with sales over the last year,
// chronological, labelled like "Jan 2006".
func (s *Service) SalesChart(ctx context.Context) ([]SalesPoint, error) {

	since := s.now().AddDate(0, 0, -365)

	rows, err := s.repo.MonthlySales(ctx, since)
	if err != nil {
		return nil, err
	}

	points := make([]SalesPoint, 0, len(rows))
	for _, row := range rows {
		label := time.Date(row.Year, time.Month(row.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
		points = append(points, SalesPoint{
			Month:      label,
			Revenue:    row.Revenue,
			SalesCount: row.SalesCount,
		})
	}

	return points, nil
}

// TopProducts returns the ten best sellers over the trailing window of the
// given number of days; non-positive days fall back to the 30-day default.
func (s *Service) TopProducts(ctx context.Context, days int) ([]TopProduct, error) {
	if days <= 0 {
		days = defaultTopDays
	}
	return s.repo.TopProducts(ctx, s.now().AddDate(0, 0, -days), topProductsLimit)
}
