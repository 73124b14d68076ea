package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	currentRevenue float64
	currentCount   int
	lastRevenue    float64
	salesErr       error

	lowStock []LowStockMaterial
	top      []TopProduct
	expenses float64
	prods    int
	monthly  []MonthlyRow

	topSince time.Time
	topLimit int
}

func (f *fakeRepo) SalesTotals(ctx context.Context, from, to time.Time) (float64, int, error) {
	if f.salesErr != nil {
		return 0, 0, f.salesErr
	}
	// The previous-month query spans a full month; the current-month one
	// ends at tomorrow.
	if to.After(from.AddDate(0, 1, -1)) {
		return f.lastRevenue, 0, nil
	}
	return f.currentRevenue, f.currentCount, nil
}

func (f *fakeRepo) LowStockMaterials(ctx context.Context) ([]LowStockMaterial, error) {
	return f.lowStock, nil
}

func (f *fakeRepo) TopProducts(ctx context.Context, since time.Time, limit int) ([]TopProduct, error) {
	f.topSince, f.topLimit = since, limit
	return f.top, nil
}

func (f *fakeRepo) ExpensesTotal(ctx context.Context, since time.Time) (float64, error) {
	return f.expenses, nil
}

func (f *fakeRepo) ProductionsCount(ctx context.Context, since time.Time) (int, error) {
	return f.prods, nil
}

func (f *fakeRepo) MonthlySales(ctx context.Context, since time.Time) ([]MonthlyRow, error) {
	return f.monthly, nil
}

func newTestService(repo Repository, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestSummary_GrowthAgainstPreviousMonth(t *testing.T) {
	repo := &fakeRepo{currentRevenue: 150, currentCount: 3, lastRevenue: 100, expenses: 40}
	s := newTestService(repo, testNow)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 150.0, sum.CurrentMonthRevenue)
	assert.Equal(t, 3, sum.CurrentMonthSalesCount)
	assert.Equal(t, 50.0, sum.RevenueGrowth)
	assert.Equal(t, 110.0, sum.CurrentBalance)
	assert.Equal(t, 40.0, sum.CurrentMonthExpenses)
}

func TestSummary_GrowthZeroWhenNoPreviousRevenue(t *testing.T) {
	repo := &fakeRepo{currentRevenue: 150, lastRevenue: 0}
	s := newTestService(repo, testNow)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.RevenueGrowth)
}

func TestSummary_GrowthRoundedToTwoDecimals(t *testing.T) {
	repo := &fakeRepo{currentRevenue: 100, lastRevenue: 300}
	s := newTestService(repo, testNow)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -66.67, sum.RevenueGrowth)
}

func TestSummary_LowStockListTrimmedButCountFull(t *testing.T) {
	var materials []LowStockMaterial
	for i := 0; i < 8; i++ {
		materials = append(materials, LowStockMaterial{Name: "m", Unit: "kg"})
	}
	repo := &fakeRepo{lowStock: materials}
	s := newTestService(repo, testNow)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, sum.LowStockMaterialsCount)
	assert.Len(t, sum.LowStockMaterials, 5)
}

func TestSummary_TopProductsShortened(t *testing.T) {
	repo := &fakeRepo{top: []TopProduct{{Name: "Brigadeiro", Price: 5, QuantitySold: 42, TotalRevenue: 210}}}
	s := newTestService(repo, testNow)

	sum, err := s.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, sum.TopProducts, 1)
	assert.Equal(t, SummaryProduct{Name: "Brigadeiro", Quantity: 42}, sum.TopProducts[0])
	assert.Equal(t, 5, repo.topLimit)
}

func TestSummary_RepositoryErrorSurfaces(t *testing.T) {
	repo := &fakeRepo{salesErr: errors.New("db down")}
	s := newTestService(repo, testNow)

	_, err := s.Summary(context.Background())
	assert.Error(t, err)
}

func TestSalesChart_LabelsMonths(t *testing.T) {
	repo := &fakeRepo{monthly: []MonthlyRow{
		{Year: 2025, Month: 11, Revenue: 500, SalesCount: 4},
		{Year: 2025, Month: 12, Revenue: 700, SalesCount: 6},
		{Year: 2026, Month: 1, Revenue: 300, SalesCount: 2},
	}}
	s := newTestService(repo, testNow)

	points, err := s.SalesChart(context.Background())
	require.NoError(t, err)

	require.Len(t, points, 3)
	assert.Equal(t, SalesPoint{Month: "Nov 2025", Revenue: 500, SalesCount: 4}, points[0])
	assert.Equal(t, SalesPoint{Month: "Dec 2025", Revenue: 700, SalesCount: 6}, points[1])
	assert.Equal(t, SalesPoint{Month: "Jan 2026", Revenue: 300, SalesCount: 2}, points[2])
}

func TestTopProducts_DefaultWindow(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, testNow)

	_, err := s.TopProducts(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, testNow.AddDate(0, 0, -30), repo.topSince)
	assert.Equal(t, 10, repo.topLimit)
}

func TestTopProducts_ExplicitWindow(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, testNow)

	_, err := s.TopProducts(context.Background(), 90)
	require.NoError(t, err)

	assert.Equal(t, testNow.AddDate(0, 0, -90), repo.topSince)
}
