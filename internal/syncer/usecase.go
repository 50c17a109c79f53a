package syncer

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/syncer/dto"
)

type UseCase interface {
	// Sync drains the outbox against the remote authority. At most one
	// round runs at a time; a trigger during a running round is a no-op
	// reported as StatusAlreadyRunning.
	Sync(ctx context.Context) (*dto.SyncResult, error)
}
