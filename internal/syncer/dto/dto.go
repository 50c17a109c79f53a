package dto

type SyncStatus string

const (
	StatusSucceeded      SyncStatus = "succeeded"
	StatusFailed         SyncStatus = "failed"
	StatusNothingToSync  SyncStatus = "nothing_to_sync"
	StatusAlreadyRunning SyncStatus = "already_running"
)

// SyncResult is the terminal outcome of one sync round. Every status is
// reported distinctly to the caller; a failed round never removes queue
// entries, it only bumps their attempt counters.
type SyncResult struct {
	Status          SyncStatus `json:"status"`
	Acked           int        `json:"acked"`
	UpdatedProducts int        `json:"updated_products"`
	Reason          string     `json:"reason,omitempty"`
}
