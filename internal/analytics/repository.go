package analytics

import "context"

// TopSellerRow is the all-time best seller by cumulative qty; ties go to
// the barcode whose first sold line was recorded earliest.
type TopSellerRow struct {
	Barcode string `db:"barcode"`
	Name    string `db:"name"`
	QtySold int    `db:"qty_sold"`
}

type Repository interface {
	TodaySales(ctx context.Context) (float64, error)
	TodayProfit(ctx context.Context) (float64, error)

	// TopSeller returns (nil, nil) when no lines exist.
	TopSeller(ctx context.Context) (*TopSellerRow, error)

	// DailyTotals returns per-day sales totals for the most recent distinct
	// days present in the ledger, newest first, at most limit entries.
	DailyTotals(ctx context.Context, limit int) ([]float64, error)

	TotalSold(ctx context.Context, barcode string) (int, error)
}
