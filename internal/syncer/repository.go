package syncer

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
)

type Repository interface {
	ListOutbox(ctx context.Context) ([]model.OutboxEntry, error)

	// IncrementAttempts bumps the attempt counter of exactly the entries
	// that were part of a failed batch. Nothing else is touched.
	IncrementAttempts(ctx context.Context, ids []string) error

	// ApplyAck marks the transaction's synced flag and removes every outbox
	// entry carrying the local id, in one atomic write. Applying the same
	// ack twice is harmless: both statements are keyed updates.
	ApplyAck(ctx context.Context, localID string, synced bool) error

	// MergeProduct applies a full-field last-write-wins merge from the
	// authority, keyed by barcode, and records a stock movement when the
	// on-hand quantity changed.
	MergeProduct(ctx context.Context, p *model.Product) error
}
