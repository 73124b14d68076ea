package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/craftops/atelier/internal/server/dashboard"
)

// DashboardService is the slice of the dashboard service the handlers need.
type DashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
	SalesChart(ctx context.Context) ([]dashboard.SalesPoint, error)
	TopProducts(ctx context.Context, days int) ([]dashboard.TopProduct, error)
}

// DashboardHandler serves the aggregate read endpoints.
type DashboardHandler struct {
	dash DashboardService
}

func NewDashboardHandler(dash DashboardService) *DashboardHandler {
	return &DashboardHandler{dash: dash}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.dash.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (h *DashboardHandler) SalesChart(w http.ResponseWriter, r *http.Request) {
	points, err := h.dash.SalesChart(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if points == nil {
		points = []dashboard.SalesPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

// TopProducts accepts an optional ?days=N query parameter; anything missing
// or unparsable falls back to the service default.
func (h *DashboardHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	products, err := h.dash.TopProducts(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if products == nil {
		products = []dashboard.TopProduct{}
	}
	writeJSON(w, http.StatusOK, products)
}
