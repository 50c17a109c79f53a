package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/internal/auth"
	"github.com/oaksmart/pos-ledger/internal/model"
	"github.com/oaksmart/pos-ledger/internal/sale"
	"github.com/oaksmart/pos-ledger/internal/sale/dto"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrBadLine   = errors.New("cart line qty must be positive")
)

type saleUseCase struct {
	repo   sale.Repository
	node   *snowflake.Node
	logger *zap.Logger
}

func NewSaleUseCase(repo sale.Repository, node *snowflake.Node, logger *zap.Logger) sale.UseCase {
	return &saleUseCase{
		repo:   repo,
		node:   node,
		logger: logger,
	}
}

// RecordSale turns a cart into a committed transaction: it stamps a fresh
// local id, decrements inventory for every known barcode (clamped at zero)
// and appends the outbox entry, all in one storage transaction. No network
// call happens here; delivery is the sync engine's job.
func (uc *saleUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*model.Transaction, error) {
	if len(input.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	lines := make([]model.TransactionLine, 0, len(input.Lines))
	for _, l := range input.Lines {
		if l.Qty <= 0 {
			return nil, fmt.Errorf("%w: barcode %s qty %d", ErrBadLine, l.Barcode, l.Qty)
		}
		total += float64(l.Qty) * l.Price
		lines = append(lines, model.TransactionLine{
			Barcode: l.Barcode,
			Name:    l.Name,
			Qty:     l.Qty,
			Price:   l.Price,
			Cost:    l.Cost,
		})
	}

	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = "cash"
	}

	now := time.Now()
	t := &model.Transaction{
		ID:          uuid.New().String(),
		LocalID:     uc.node.Generate().String(),
		CreatedAt:   now,
		Total:       total,
		PaymentType: paymentType,
		Cashier:     auth.CashierFromContext(ctx),
		Synced:      false,
		Lines:       lines,
	}

	payload, err := json.Marshal(model.NewTransactionPayload(t))
	if err != nil {
		return nil, fmt.Errorf("encode outbox payload: %w", err)
	}
	entry := &model.OutboxEntry{
		ID:        uuid.New().String(),
		LocalID:   t.LocalID,
		Payload:   string(payload),
		Attempts:  0,
		CreatedAt: now,
	}

	missing, err := uc.repo.Commit(ctx, t, entry)
	if err != nil {
		return nil, err
	}
	for _, barcode := range missing {
		// Sold but unknown locally; inventory left untouched until the
		// authority sends the product on the next sync.
		uc.logger.Warn("sold line has no local product", zap.String("barcode", barcode))
	}

	uc.logger.Info("sale recorded",
		zap.String("local_id", t.LocalID),
		zap.Float64("total", t.Total),
		zap.Int("lines", len(t.Lines)),
		zap.String("cashier", t.Cashier),
	)
	return t, nil
}
