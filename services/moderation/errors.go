package moderation

import (
	"errors"
	"fmt"

	pendingRepo "wetopinie/database/repository/pending"
)

var (
	// ErrMissingReference means the submission points at no valid target,
	// e.g. a review without a clinic id. Approval aborts with zero writes.
	ErrMissingReference = errors.New("submission is missing its target reference")
	// ErrUnknownKind means the caller named a queue that does not exist.
	ErrUnknownKind = errors.New("unknown submission kind")
	// ErrNotFound means the pending item is gone, typically because another
	// reviewer already decided it.
	ErrNotFound = errors.New("pending item not found")
)

// queueError maps a pending-queue failure to the service taxonomy: a missing
// item becomes ErrNotFound, everything else stays a store failure so an
// outage is never reported as an already-decided item.
func queueError(err error) error {
	if errors.Is(err, pendingRepo.ErrNoPendingItem) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("pending queue unavailable: %w", err)
}
