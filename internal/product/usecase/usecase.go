package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/product"
	"github.com/oaksmart/pos-ledger/internal/product/dto"
)

var ErrBarcodeRequired = errors.New("barcode required")

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, logger *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: logger,
	}
}

// UpsertProduct creates or updates a catalog entry keyed by barcode.
// Fields left nil in the input keep their stored value, mirroring the
// partial-update semantics of the authority's product endpoint.
func (uc *productUseCase) UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error) {
	if input.Barcode == "" {
		return nil, ErrBarcodeRequired
	}

	now := time.Now()
	p, err := uc.repo.FindByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &model.Product{
			BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now},
			Barcode:   input.Barcode,
			IsNew:     true,
		}
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Cost != nil {
		p.Cost = *input.Cost
	}
	if input.Qty != nil {
		p.Qty = *input.Qty
	}
	if input.IsNew != nil {
		p.IsNew = *input.IsNew
	}
	p.UpdatedAt = now

	if err := uc.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	uc.logger.Info("product upserted", zap.String("barcode", p.Barcode), zap.Int("qty", p.Qty))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, barcode string) (*model.Product, error) {
	return uc.repo.FindByBarcode(ctx, barcode)
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) ListMovements(ctx context.Context, barcode string, limit int) ([]model.StockMovement, error) {
	return uc.repo.ListMovements(ctx, barcode, limit)
}
