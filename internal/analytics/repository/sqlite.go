package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/oaksmart/pos-ledger/internal/analytics"
)

type SqliteRepository struct {
	DB *sqlx.DB
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{DB: db}
}

func (r *SqliteRepository) TodaySales(ctx context.Context) (float64, error) {
	var total float64
	query := `
        SELECT COALESCE(SUM(total), 0)
        FROM transactions
        WHERE date(created_at, 'localtime') = date('now', 'localtime')
    `
	err := r.DB.GetContext(ctx, &total, query)
	return total, err
}

func (r *SqliteRepository) TodayProfit(ctx context.Context) (float64, error) {
	var profit float64
	query := `
        SELECT COALESCE(SUM((l.price - l.cost) * l.qty), 0)
        FROM transaction_lines l
        JOIN transactions t ON t.id = l.transaction_id
        WHERE date(t.created_at, 'localtime') = date('now', 'localtime')
    `
	err := r.DB.GetContext(ctx, &profit, query)
	return profit, err
}

func (r *SqliteRepository) TopSeller(ctx context.Context) (*analytics.TopSellerRow, error) {
	var row analytics.TopSellerRow
	// MIN(id) is the first line ever recorded for the barcode, so ties
	// resolve in first-encountered order, not alphabetically.
	query := `
        SELECT barcode, name, SUM(qty) AS qty_sold
        FROM transaction_lines
        GROUP BY barcode
        ORDER BY qty_sold DESC, MIN(id) ASC
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &row, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *SqliteRepository) DailyTotals(ctx context.Context, limit int) ([]float64, error) {
	totals := []float64{}
	query := `
        SELECT SUM(total)
        FROM transactions
        GROUP BY date(created_at, 'localtime')
        ORDER BY date(created_at, 'localtime') DESC
        LIMIT ?
    `
	err := r.DB.SelectContext(ctx, &totals, query, limit)
	return totals, err
}

func (r *SqliteRepository) TotalSold(ctx context.Context, barcode string) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(qty), 0) FROM transaction_lines WHERE barcode = ?`
	err := r.DB.GetContext(ctx, &total, query, barcode)
	return total, err
}
