package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) SalesTotals(ctx context.Context, from, to time.Time) (float64, int, error) {

	query :=
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM sales
		 WHERE sale_date >= $1 AND sale_date < $2
		 `

	var revenue float64
	var count int
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&revenue, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return revenue, count, nil
}

func (r *PostgresRepository) LowStockMaterials(ctx context.Context) ([]LowStockMaterial, error) {

	query :=
		`SELECT id, name, unit, stock_quantity, min_stock_alert FROM materials
		 WHERE stock_quantity <= min_stock_alert
		 ORDER BY stock_quantity / NULLIF(min_stock_alert, 0) NULLS FIRST, name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []LowStockMaterial
	for rows.Next() {
		var m LowStockMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.StockQuantity, &m.MinStockAlert); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) TopProducts(ctx context.Context, since time.Time, limit int) ([]TopProduct, error) {

	query :=
		`SELECT p.name, COALESCE(p.final_price, 0),
		        COALESCE(SUM(si.quantity), 0), COALESCE(SUM(si.total_price), 0)
		 FROM products p
		 JOIN sale_items si ON si.product_id = p.id
		 JOIN sales s ON s.id = si.sale_id
		 WHERE s.sale_date >= $1
		 GROUP BY p.id, p.name, p.final_price
		 ORDER BY SUM(si.quantity) DESC
		 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []TopProduct
	for rows.Next() {
		var p TopProduct
		if err := rows.Scan(&p.Name, &p.Price, &p.QuantitySold, &p.TotalRevenue); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %v", err)
	}

	return result, nil
}

func (r *PostgresRepository) ExpensesTotal(ctx context.Context, since time.Time) (float64, error) {

	query :=
		`SELECT COALESCE(SUM(amount), 0) FROM expenses
		 WHERE expense_date >= $1
		 `

	var total float64
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return total, nil
}

func (r *PostgresRepository) ProductionsCount(ctx context.Context, since time.Time) (int, error) {

	query :=
		`SELECT COUNT(*) FROM productions
		 WHERE production_date >= $1
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("error performing sql request: %v", err)
	}

	return count, nil
}

func (r *PostgresRepository) MonthlySales(ctx context.Context, since time.Time) ([]MonthlyRow, error) {

	query :=
		`SELECT EXTRACT(YEAR FROM sale_date)::int, EXTRACT(MONTH FROM sale_date)::int,
		        COALESCE(SUM(total_amount), 0), COUNT(*)
		 FROM sales
		 WHERE sale_date >= $1
		 GROUP BY 1, 2
		 ORDER BY 1, 2
		 `

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}
	defer rows.Close()

	var result []MonthlyRow
	for rows.Next() {
		var row MonthlyRow
		if err := rows.Scan(&row.Year, &row.Month, &row.Revenue, &row.SalesCount); err != nil {
			return nil, fmt.Errorf("error scanning row: %v", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %v", err)
	}

	return result, nil
}
