package user

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/user/dto"
)

type UseCase interface {
	// Bootstrap creates the default admin with the configured PIN when the
	// user table is empty, so a fresh terminal is usable out of the box.
	Bootstrap(ctx context.Context, adminPIN string) error

	Login(ctx context.Context, name, pin string) (*model.User, error)
	CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error)
	ChangePin(ctx context.Context, input *dto.ChangePinInput) error
	ListUsers(ctx context.Context, adminName, adminPin string) ([]model.User, error)
}
