package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type SqliteRepository struct {
	DB *sqlx.DB
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{DB: db}
}

func (r *SqliteRepository) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE barcode = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, barcode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SqliteRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM products ORDER BY name`
	err := r.DB.SelectContext(ctx, &products, query)
	return products, err
}

func (r *SqliteRepository) Upsert(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, barcode, name, price, cost, qty, is_new, created_at, updated_at
        )
        VALUES (
            :id, :barcode, :name, :price, :cost, :qty, :is_new, :created_at, :updated_at
        )
        ON CONFLICT (barcode)
        DO UPDATE SET
            name = excluded.name,
            price = excluded.price,
            cost = excluded.cost,
            qty = excluded.qty,
            is_new = excluded.is_new,
            updated_at = excluded.updated_at
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *SqliteRepository) ListMovements(ctx context.Context, barcode string, limit int) ([]model.StockMovement, error) {
	movements := []model.StockMovement{}
	query := `SELECT * FROM stock_movements WHERE barcode = ? ORDER BY id DESC`
	args := []interface{}{barcode}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	err := r.DB.SelectContext(ctx, &movements, query, args...)
	return movements, err
}
