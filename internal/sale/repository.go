package sale

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type Repository interface {
	// Commit persists the transaction, its lines, the inventory decrements
	// and the outbox entry as one atomic write. It returns the barcodes of
	// cart lines that had no matching product row; those lines are still
	// recorded as sold but leave inventory untouched.
	Commit(ctx context.Context, t *model.Transaction, entry *model.OutboxEntry) (missing []string, err error)

	// FindByLocalID returns (nil, nil) when no transaction carries the local id.
	FindByLocalID(ctx context.Context, localID string) (*model.Transaction, error)
}
