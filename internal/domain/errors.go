package domain

import (
	"errors"
	"fmt"
)

// ErrMissingID is returned when a delete is requested without a record id.
var ErrMissingID = errors.New("cuaca id is required")

// NetworkError describes a failed call to the cuaca API: connectivity,
// timeout, a non-2xx status or an undecodable body.
type NetworkError struct {
	Op         string // "list" or "delete"
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s cuaca: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s cuaca: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
