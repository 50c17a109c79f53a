package model

import "time"

// StockMovement is an audit row written whenever a product's on-hand
// quantity changes, either by a local sale or by an authority merge.
type StockMovement struct {
	ID          int64     `db:"id" json:"id"`
	Barcode     string    `db:"barcode" json:"barcode"`
	Change      int       `db:"change" json:"change"`
	Reason      string    `db:"reason" json:"reason"`
	ReferenceID string    `db:"reference_id" json:"reference_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const (
	MovementReasonSale  = "sale"
	MovementReasonMerge = "authority_merge"
)
