package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/oaksmart/pos-ledger/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id          TEXT PRIMARY KEY,
    barcode     TEXT NOT NULL UNIQUE,
    name        TEXT NOT NULL DEFAULT '',
    price       REAL NOT NULL DEFAULT 0,
    cost        REAL NOT NULL DEFAULT 0,
    qty         INTEGER NOT NULL DEFAULT 0,
    is_new      INTEGER NOT NULL DEFAULT 1,
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id           TEXT PRIMARY KEY,
    local_id     TEXT NOT NULL UNIQUE,
    created_at   TIMESTAMP NOT NULL,
    total        REAL NOT NULL DEFAULT 0,
    payment_type TEXT NOT NULL DEFAULT 'cash',
    cashier      TEXT NOT NULL DEFAULT '',
    synced       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transaction_lines (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
    barcode        TEXT NOT NULL DEFAULT '',
    name           TEXT NOT NULL DEFAULT '',
    qty            INTEGER NOT NULL DEFAULT 0,
    price          REAL NOT NULL DEFAULT 0,
    cost           REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_lines_transaction ON transaction_lines(transaction_id);
CREATE INDEX IF NOT EXISTS idx_lines_barcode ON transaction_lines(barcode);

CREATE TABLE IF NOT EXISTS outbox (
    id         TEXT PRIMARY KEY,
    local_id   TEXT NOT NULL,
    payload    TEXT NOT NULL,
    attempts   INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_outbox_local_id ON outbox(local_id);

CREATE TABLE IF NOT EXISTS users (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    pin_hash   TEXT NOT NULL,
    is_admin   INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS stock_movements (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    barcode      TEXT NOT NULL,
    change       INTEGER NOT NULL,
    reason       TEXT NOT NULL,
    reference_id TEXT NOT NULL DEFAULT '',
    created_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_movements_barcode ON stock_movements(barcode);
`

// Open opens the local ledger database. The connection pool is capped at a
// single connection: SQLite allows one writer at a time and the ledger's
// consistency model assumes serialized read-modify-write sections.
func Open(cfg *config.SqliteConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", cfg.Path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates the ledger schema if it does not exist yet.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate ledger schema: %w", err)
	}
	return nil
}
