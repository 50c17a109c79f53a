package analytics

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/analytics/dto"
)

type UseCase interface {
	// Summary recomputes the derived views from the full ledger on demand;
	// nothing is maintained incrementally.
	Summary(ctx context.Context) (*dto.Summary, error)

	SuggestReorder(ctx context.Context, barcode string, lookbackDays int) (*dto.ReorderSuggestion, error)
}
