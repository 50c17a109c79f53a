package product

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type Repository interface {
	// FindByBarcode returns (nil, nil) when no product carries the barcode.
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)

	// Upsert inserts the product or, when the barcode already exists,
	// overwrites every field except the surrogate id and created_at.
	Upsert(ctx context.Context, p *model.Product) error

	ListMovements(ctx context.Context, barcode string, limit int) ([]model.StockMovement, error)
}
