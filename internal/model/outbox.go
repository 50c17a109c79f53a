package model

import "time"

// OutboxEntry holds a frozen snapshot of a transaction awaiting
// acknowledgment by the remote authority. The snapshot is resent
// unmodified on every sync round until the authority acks its LocalID.
type OutboxEntry struct {
	ID        string    `db:"id" json:"id"`
	LocalID   string    `db:"local_id" json:"local_id"`
	Payload   string    `db:"payload" json:"payload"` // JSON-encoded TransactionPayload
	Attempts  int       `db:"attempts" json:"attempts"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// TransactionPayload is the wire form of a transaction sent to the
// reconciliation endpoint. LocalID is the idempotency key; the authority
// must apply a given LocalID at most once. The timestamp key is camelCase
// while the rest are snake_case; that is what the endpoint reads.
type TransactionPayload struct {
	LocalID     string            `json:"local_id"`
	CreatedAt   time.Time         `json:"createdAt"`
	Total       float64           `json:"total"`
	PaymentType string            `json:"payment_type"`
	Lines       []TransactionLine `json:"lines"`
}

func NewTransactionPayload(t *Transaction) TransactionPayload {
	return TransactionPayload{
		LocalID:     t.LocalID,
		CreatedAt:   t.CreatedAt,
		Total:       t.Total,
		PaymentType: t.PaymentType,
		Lines:       t.Lines,
	}
}
