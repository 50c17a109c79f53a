package product

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/product/dto"
)

type UseCase interface {
	UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, barcode string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListMovements(ctx context.Context, barcode string, limit int) ([]model.StockMovement, error)
}
