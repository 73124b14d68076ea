// Package dashboard merges the three independent dashboard reads into one
// view model with all-or-nothing semantics: the model is ready only when all
// three sources resolved, and any failure fails the whole aggregation.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/craftops/atelier/internal/client/models"
	"github.com/craftops/atelier/internal/logging"
)

// Fetcher is the slice of the API client the aggregator consumes.
type Fetcher interface {
	Summary(ctx context.Context) (models.Summary, error)
	SalesChart(ctx context.Context) ([]models.SalesPoint, error)
	TopProducts(ctx context.Context) ([]models.TopProduct, error)
}

// ViewModel is the merged dashboard payload. It exists only fully populated;
// no partial rendition is ever produced.
type ViewModel struct {
	Summary     models.Summary
	SalesSeries []models.SalesPoint
	TopProducts []models.TopProduct
}

// Aggregator drives the landing dashboard fetch.
type Aggregator struct {
	api Fetcher
	log logging.Logger
}

func NewAggregator(api Fetcher, log logging.Logger) *Aggregator {
	return &Aggregator{api: api, log: log}
}

// Load issues the three reads concurrently and resolves after all of them
// settled. If any read fails, the whole aggregation fails with the first
// underlying cause preserved; the caller may retry, which re-issues all
// three requests (nothing is memoized). Load has no retry and no timeout of
// its own — any timeout is the transport's.
//
// The requests are not cancelled when a sibling fails; late results are
// simply discarded with the failed aggregation.
func (a *Aggregator) Load(ctx context.Context) (*ViewModel, error) {
	var vm ViewModel

	var g errgroup.Group

	g.Go(func() error {
		summary, err := a.api.Summary(ctx)
		if err != nil {
			return fmt.Errorf("summary: %w", err)
		}
		vm.Summary = summary
		return nil
	})

	g.Go(func() error {
		series, err := a.api.SalesChart(ctx)
		if err != nil {
			return fmt.Errorf("sales chart: %w", err)
		}
		vm.SalesSeries = series
		return nil
	})

	g.Go(func() error {
		products, err := a.api.TopProducts(ctx)
		if err != nil {
			return fmt.Errorf("top products: %w", err)
		}
		vm.TopProducts = products
		return nil
	})

	if err := g.Wait(); err != nil {
		a.log.Warn(ctx, "dashboard load failed", "error", err.Error())
		return nil, fmt.Errorf("dashboard unavailable: %w", err)
	}

	return &vm, nil
}
