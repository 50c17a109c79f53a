package model

import "time"

type Transaction struct {
	ID          string            `db:"id" json:"id"`
	LocalID     string            `db:"local_id" json:"local_id"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	Total       float64           `db:"total" json:"total"`
	PaymentType string            `db:"payment_type" json:"payment_type"`
	Cashier     string            `db:"cashier" json:"cashier"`
	Synced      bool              `db:"synced" json:"synced"`
	Lines       []TransactionLine `db:"-" json:"lines"`
}

type TransactionLine struct {
	ID            int64   `db:"id" json:"-"`
	TransactionID string  `db:"transaction_id" json:"-"`
	Barcode       string  `db:"barcode" json:"barcode"`
	Name          string  `db:"name" json:"name"`
	Qty           int     `db:"qty" json:"qty"`
	Price         float64 `db:"price" json:"price"`
	Cost          float64 `db:"cost" json:"cost"`
}
