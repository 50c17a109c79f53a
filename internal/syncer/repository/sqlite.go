package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type SqliteRepository struct {
	DB *sqlx.DB
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{DB: db}
}

func (r *SqliteRepository) ListOutbox(ctx context.Context) ([]model.OutboxEntry, error) {
	entries := []model.OutboxEntry{}
	query := `SELECT * FROM outbox ORDER BY created_at, id`
	err := r.DB.SelectContext(ctx, &entries, query)
	return entries, err
}

func (r *SqliteRepository) IncrementAttempts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`UPDATE outbox SET attempts = attempts + 1 WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, r.DB.Rebind(query), args...)
	return err
}

func (r *SqliteRepository) ApplyAck(ctx context.Context, localID string, synced bool) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE transactions SET synced = ? WHERE local_id = ?`, synced, localID); err != nil {
		return fmt.Errorf("mark transaction %s: %w", localID, err)
	}
	// The entry is removed for both ok and failed acks: the authority is the
	// final arbiter and a failed status means permanently rejected.
	if _, err := tx.ExecContext(ctx, `DELETE FROM outbox WHERE local_id = ?`, localID); err != nil {
		return fmt.Errorf("dequeue %s: %w", localID, err)
	}

	return tx.Commit()
}

func (r *SqliteRepository) MergeProduct(ctx context.Context, p *model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var before int
	known := true
	err = tx.GetContext(ctx, &before, `SELECT qty FROM products WHERE barcode = ?`, p.Barcode)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		known = false
	}

	upsert := `
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
	if _, err := tx.NamedExecContext(ctx, upsert, p); err != nil {
		return fmt.Errorf("merge product %s: %w", p.Barcode, err)
	}

	change := p.Qty
	if known {
		change = p.Qty - before
	}
	if change != 0 {
		insertMovement := `
            INSERT INTO stock_movements (barcode, change, reason, reference_id, created_at)
            VALUES (?, ?, ?, ?, ?)
        `
		if _, err := tx.ExecContext(ctx, insertMovement, p.Barcode, change, model.MovementReasonMerge, "", time.Now()); err != nil {
			return fmt.Errorf("log merge movement for %s: %w", p.Barcode, err)
		}
	}

	return tx.Commit()
}
