package usecase

import (
	"context"
	"errors"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/oaksmart/pos-ledger/internal/analytics"
	"github.com/oaksmart/pos-ledger/internal/analytics/dto"
	"github.com/oaksmart/pos-ledger/internal/product"
)

var ErrProductNotFound = errors.New("product not found")

const (
	forecastWindowDays = 7
	safetyTargetDays   = 14
	minReorderTarget   = 5
)

type analyticsUseCase struct {
	repo     analytics.Repository
	products product.Repository
	logger   *zap.Logger
}

func NewAnalyticsUseCase(repo analytics.Repository, products product.Repository, logger *zap.Logger) analytics.UseCase {
	return &analyticsUseCase{
		repo:     repo,
		products: products,
		logger:   logger,
	}
}

func (uc *analyticsUseCase) Summary(ctx context.Context) (*dto.Summary, error) {
	sales, err := uc.repo.TodaySales(ctx)
	if err != nil {
		return nil, err
	}
	profit, err := uc.repo.TodayProfit(ctx)
	if err != nil {
		return nil, err
	}

	top := dto.TopSeller{Name: "none"}
	row, err := uc.repo.TopSeller(ctx)
	if err != nil {
		return nil, err
	}
	if row != nil {
		top = dto.TopSeller{Barcode: row.Barcode, Name: row.Name, QtySold: row.QtySold}
	}

	expected := 0.0
	totals, err := uc.repo.DailyTotals(ctx, forecastWindowDays)
	if err != nil {
		return nil, err
	}
	if len(totals) > 0 {
		expected, err = stats.Mean(totals)
		if err != nil {
			return nil, err
		}
	}

	return &dto.Summary{
		TodaySales:       sales,
		TodayProfit:      profit,
		TopSeller:        top,
		ExpectedTomorrow: expected,
	}, nil
}

// SuggestReorder reproduces the authority's heuristic locally: average
// daily sales over the lookback window, days of cover for the current
// stock, and a reorder quantity that tops stock up to a 14-day target.
func (uc *analyticsUseCase) SuggestReorder(ctx context.Context, barcode string, lookbackDays int) (*dto.ReorderSuggestion, error) {
	p, err := uc.products.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if lookbackDays < 1 {
		lookbackDays = 1
	}
	totalSold, err := uc.repo.TotalSold(ctx, barcode)
	if err != nil {
		return nil, err
	}
	avgDaily := float64(totalSold) / float64(lookbackDays)

	var daysOfCover *float64
	suggested := 0
	if avgDaily > 0 {
		cover := float64(p.Qty) / avgDaily
		daysOfCover = &cover

		target := int(avgDaily * safetyTargetDays)
		if target < minReorderTarget {
			target = minReorderTarget
		}
		if target > p.Qty {
			suggested = target - p.Qty
		}
	}

	margin := p.Price - p.Cost
	marginPct := 0.0
	if p.Price != 0 {
		marginPct = margin / p.Price * 100
	}

	return &dto.ReorderSuggestion{
		Product:             p,
		TotalSold:           totalSold,
		AvgDailyEstimate:    avgDaily,
		DaysOfCover:         daysOfCover,
		SuggestedReorderQty: suggested,
		SafetyTargetDays:    safetyTargetDays,
		Margin:              margin,
		MarginPct:           marginPct,
	}, nil
}
