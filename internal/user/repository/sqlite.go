package repository

import (
	"context"
	"database/sql"
	"errors"
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

func (r *SqliteRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (id, name, pin_hash, is_admin, created_at, updated_at)
        VALUES (:id, :name, :pin_hash, :is_admin, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *SqliteRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var u model.User
	query := `SELECT * FROM users WHERE name = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &u, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *SqliteRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.DB.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY name`)
	return users, err
}

func (r *SqliteRepository) UpdatePinHash(ctx context.Context, id, pinHash string) error {
	query := `UPDATE users SET pin_hash = ?, updated_at = ? WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, pinHash, time.Now(), id)
	return err
}

func (r *SqliteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM users`)
	return count, err
}
