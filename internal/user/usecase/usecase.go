package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/user"
	"github.com/oaksmart/pos-ledger/internal/user/dto"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminRequired      = errors.New("admin credentials required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameAndPinRequired = errors.New("name and pin required")
)

type userUseCase struct {
	repo   user.Repository
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, logger *zap.Logger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *userUseCase) Bootstrap(ctx context.Context, adminPIN string) error {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	admin := &model.User{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      "admin",
		PinHash:   string(hash),
		IsAdmin:   true,
	}
	if err := uc.repo.Create(ctx, admin); err != nil {
		return err
	}
	uc.logger.Warn("created default admin user, change the PIN immediately")
	return nil
}

func (uc *userUseCase) Login(ctx context.Context, name, pin string) (*model.User, error) {
	if name == "" || pin == "" {
		return nil, ErrNameAndPinRequired
	}
	u, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PinHash), []byte(pin)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// requireAdmin verifies that the given credentials belong to an admin.
func (uc *userUseCase) requireAdmin(ctx context.Context, name, pin string) error {
	u, err := uc.Login(ctx, name, pin)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrNameAndPinRequired) {
			return ErrAdminRequired
		}
		return err
	}
	if !u.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	if err := uc.requireAdmin(ctx, input.AdminName, input.AdminPin); err != nil {
		return nil, err
	}
	if input.Name == "" || input.Pin == "" {
		return nil, ErrNameAndPinRequired
	}

	existing, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &model.User{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		PinHash:   string(hash),
		IsAdmin:   input.IsAdmin,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.logger.Info("user created", zap.String("name", u.Name), zap.Bool("is_admin", u.IsAdmin))
	return u, nil
}

func (uc *userUseCase) ChangePin(ctx context.Context, input *dto.ChangePinInput) error {
	if err := uc.requireAdmin(ctx, input.AdminName, input.AdminPin); err != nil {
		return err
	}
	if input.TargetName == "" || input.NewPin == "" {
		return ErrNameAndPinRequired
	}

	target, err := uc.repo.FindByName(ctx, input.TargetName)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.UpdatePinHash(ctx, target.ID, string(hash))
}

func (uc *userUseCase) ListUsers(ctx context.Context, adminName, adminPin string) ([]model.User, error) {
	if err := uc.requireAdmin(ctx, adminName, adminPin); err != nil {
		return nil, err
	}
	return uc.repo.FindAll(ctx)
}
