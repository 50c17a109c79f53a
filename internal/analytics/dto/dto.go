package dto

import "github.com/oaksmart/pos-ledger/internal/model"

type TopSeller struct {
	Barcode string `json:"barcode"`
	Name    string `json:"name"`
	QtySold int    `json:"qty_sold"`
}

type Summary struct {
	TodaySales       float64   `json:"today_sales"`
	TodayProfit      float64   `json:"today_profit"`
	TopSeller        TopSeller `json:"top_seller"`
	ExpectedTomorrow float64   `json:"expected_tomorrow"`
}

type ReorderSuggestion struct {
	Product             *model.Product `json:"product"`
	TotalSold           int            `json:"total_sold_in_history"`
	AvgDailyEstimate    float64        `json:"avg_daily_estimate"`
	DaysOfCover         *float64       `json:"days_of_cover"`
	SuggestedReorderQty int            `json:"suggested_reorder_qty"`
	SafetyTargetDays    int            `json:"safety_target_days"`
	Margin              float64        `json:"margin"`
	MarginPct           float64        `json:"margin_pct"`
}
