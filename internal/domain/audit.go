package domain

import "time"

// DeletionEvent records a successful delete for downstream auditing.
type DeletionEvent struct {
	ID        string    `json:"id"`
	Remaining int       `json:"remaining"`
	DeletedAt time.Time `json:"deleted_at"`
}

// NewDeletionEvent builds the audit record for a delete of id whose response
// echoed the remaining records.
func NewDeletionEvent(id string, resp CuacaResponse) DeletionEvent {
	return DeletionEvent{
		ID:        id,
		Remaining: len(resp.Data),
		DeletedAt: clock.Now().UTC(),
	}
}
