package syncer

import (
	"context"

	"github.com/oaksmart/pos-ledger/internal/model"
)

// ReconcileRequest carries every pending outbox payload to the authority.
// Payloads are resent unmodified on retry; delivery is at-least-once and
// the authority deduplicates on local_id.
type ReconcileRequest struct {
	Transactions []model.TransactionPayload `json:"transactions"`
}

type Ack struct {
	LocalID  string `json:"local_id"`
	Status   string `json:"status"`
	ServerID int64  `json:"server_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

const AckStatusOK = "ok"

type UpdatedProduct struct {
	Barcode string  `json:"barcode"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Cost    float64 `json:"cost"`
	Qty     int     `json:"qty"`
}

type ReconcileResponse struct {
	OK              bool             `json:"ok"`
	Ack             []Ack            `json:"ack"`
	UpdatedProducts []UpdatedProduct `json:"updated_products"`
	Error           string           `json:"error,omitempty"`
}

type Client interface {
	Reconcile(ctx context.Context, req *ReconcileRequest) (*ReconcileResponse, error)
}
