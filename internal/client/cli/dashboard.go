package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftops/atelier/internal/client/gate"
	"github.com/craftops/atelier/internal/common"
)

// Dashboard loads and renders the landing dashboard. The view is gated: when
// the session is not established the command redirects to the login surface
// instead of issuing any request. A failed aggregation leaves nothing on
// screen — there is no partial rendering.
func (a *App) Dashboard(ctx context.Context) error {
	if route := a.Route(); route != gate.RouteShell {
		printlnFn("Please log in first.")
		return nil
	}

	vm, err := a.agg.Load(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			// The session transition already happened; the route change is
			// reported by the transition observer.
			return err
		}
		printlnFn("Dashboard unavailable:", err.Error())
		return err
	}

	s := vm.Summary
	printlnFn("== Dashboard ==")
	printlnFn(fmt.Sprintf("Revenue (month):    %s (%+.1f%%)", a.money.Format(s.CurrentMonthRevenue), s.RevenueGrowth))
	printlnFn(fmt.Sprintf("Sales (month):      %d", s.CurrentMonthSalesCount))
	printlnFn(fmt.Sprintf("Balance:            %s", a.money.Format(s.CurrentBalance)))
	printlnFn(fmt.Sprintf("Expenses (month):   %s", a.money.Format(s.CurrentMonthExpenses)))
	printlnFn(fmt.Sprintf("Recent productions: %d", s.RecentProductions))

	if s.LowStockMaterialsCount > 0 {
		printlnFn(fmt.Sprintf("Low stock (%d):", s.LowStockMaterialsCount))
		for _, m := range s.LowStockMaterials {
			printlnFn(fmt.Sprintf("  - %s: %.1f %s", m.Name, m.StockQuantity, m.Unit))
		}
	}

	if len(vm.SalesSeries) > 0 {
		printlnFn("Sales by month:")
		for _, p := range vm.SalesSeries {
			printlnFn(fmt.Sprintf("  %-8s %s (%d sales)", p.Month, a.money.Format(p.Revenue), p.SalesCount))
		}
	}

	if len(vm.TopProducts) > 0 {
		printlnFn("Top products:")
		for _, p := range vm.TopProducts {
			printlnFn(fmt.Sprintf("  %-20s %4d sold  %s", p.Name, p.QuantitySold, a.money.Format(p.TotalRevenue)))
		}
	}

	return nil
}

// Status prints the current session state and decided route.
func (a *App) Status(ctx context.Context) error {
	s := a.manager.Current()
	printlnFn("Session:", string(s.Status))
	printlnFn("Route:  ", string(a.Route()))
	if s.User != nil {
		printlnFn("User:   ", fmt.Sprintf("%s <%s>", s.User.Name, s.User.Email))
	}
	return nil
}
