package user

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type Repository interface {
	Create(ctx context.Context, u *model.User) error
	// FindByName returns (nil, nil) when no user carries the name.
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdatePinHash(ctx context.Context, id, pinHash string) error
	Count(ctx context.Context) (int, error)
}
