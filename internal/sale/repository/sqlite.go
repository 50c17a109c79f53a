package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type SqliteRepository struct {
	DB *sqlx.DB
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{DB: db}
}

func (r *SqliteRepository) Commit(ctx context.Context, t *model.Transaction, entry *model.OutboxEntry) ([]string, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertTx := `
        INSERT INTO transactions (id, local_id, created_at, total, payment_type, cashier, synced)
        VALUES (:id, :local_id, :created_at, :total, :payment_type, :cashier, :synced)
    `
	if _, err := tx.NamedExecContext(ctx, insertTx, t); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	insertLine := `
        INSERT INTO transaction_lines (transaction_id, barcode, name, qty, price, cost)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	// Decrement clamps at zero inside a single UPDATE so the read-modify-write
	// cannot interleave with another writer.
	decrement := `UPDATE products SET qty = MAX(0, qty - ?), updated_at = ? WHERE barcode = ?`
	insertMovement := `
        INSERT INTO stock_movements (barcode, change, reason, reference_id, created_at)
        VALUES (?, ?, ?, ?, ?)
    `

	var missing []string
	for _, line := range t.Lines {
		if _, err := tx.ExecContext(ctx, insertLine, t.ID, line.Barcode, line.Name, line.Qty, line.Price, line.Cost); err != nil {
			return nil, fmt.Errorf("insert transaction line: %w", err)
		}

		var before int
		err := tx.GetContext(ctx, &before, `SELECT qty FROM products WHERE barcode = ?`, line.Barcode)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				missing = append(missing, line.Barcode)
				continue
			}
			return nil, fmt.Errorf("read stock for %s: %w", line.Barcode, err)
		}

		if _, err := tx.ExecContext(ctx, decrement, line.Qty, t.CreatedAt, line.Barcode); err != nil {
			return nil, fmt.Errorf("decrement stock for %s: %w", line.Barcode, err)
		}

		// The movement records what actually left the shelf, so the audit
		// trail sums back to products.qty even when the decrement clamps.
		effective := line.Qty
		if before < effective {
			effective = before
		}
		if effective == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, insertMovement, line.Barcode, -effective, model.MovementReasonSale, t.LocalID, t.CreatedAt); err != nil {
			return nil, fmt.Errorf("log stock movement for %s: %w", line.Barcode, err)
		}
	}

	insertOutbox := `
        INSERT INTO outbox (id, local_id, payload, attempts, created_at)
        VALUES (:id, :local_id, :payload, :attempts, :created_at)
    `
	if _, err := tx.NamedExecContext(ctx, insertOutbox, entry); err != nil {
		return nil, fmt.Errorf("enqueue outbox entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return missing, nil
}

func (r *SqliteRepository) FindByLocalID(ctx context.Context, localID string) (*model.Transaction, error) {
	var t model.Transaction
	query := `SELECT * FROM transactions WHERE local_id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &t, query, localID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	lines := []model.TransactionLine{}
	err = r.DB.SelectContext(ctx, &lines, `SELECT * FROM transaction_lines WHERE transaction_id = ? ORDER BY id`, t.ID)
	if err != nil {
		return nil, err
	}
	t.Lines = lines
	return &t, nil
}
