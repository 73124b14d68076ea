package dashboard

import (
	"context"
	"time"
)

type Repository interface {
	// SalesTotals returns the revenue sum and sale count for sales with
	// sale_date in [from, to).
	SalesTotals(ctx context.Context, from, to time.Time) (float64, int, error)
	// LowStockMaterials returns every material at or below its alert level.
	LowStockMaterials(ctx context.Context) ([]LowStockMaterial, error)
	// TopProducts returns up to limit products ordered by quantity sold
	// since the given date.
	TopProducts(ctx context.Context, since time.Time, limit int) ([]TopProduct, error)
	// ExpensesTotal returns the expense sum since the given date.
	ExpensesTotal(ctx context.Context, since time.Time) (float64, error)
	// ProductionsCount returns the number of production runs since the
	// given date.
	ProductionsCount(ctx context.Context, since time.Time) (int, error)
	// MonthlySales returns per-month revenue and sale counts since the
	// given date, in chronological order.
	MonthlySales(ctx context.Context, since time.Time) ([]MonthlyRow, error)
}
