package sale

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/sale/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Transaction, error)
}
