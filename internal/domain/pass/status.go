package pass

import (
	"time"

	"skipass-api/internal/pkg/errs"
)

// ValidityWindow is how long a pass stays usable after activation.
const ValidityWindow = 12 * time.Hour

type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

var ErrInvalidStatus = errs.New("invalid pass status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusExpired:
		return Status(s), nil
	default:
		return "", errs.Mark(ErrInvalidStatus, errs.ErrInvalidInput)
	}
}

func (s Status) String() string { return string(s) }

// DeriveStatus is Active on [activatedAt, activatedAt+ValidityWindow) and
// Expired from the end of the window onward.
func DeriveStatus(activatedAt *time.Time, now time.Time) Status {
	if activatedAt == nil {
		return StatusPending
	}
	if now.Sub(*activatedAt) < ValidityWindow {
		return StatusActive
	}
	return StatusExpired
}

type Operation string

const (
	OperationActivate       Operation = "activate"
	OperationShowEntryProof Operation = "show_entry_proof"
)

func PermittedOperations(s Status) []Operation {
	switch s {
	case StatusPending:
		return []Operation{OperationActivate}
	case StatusActive:
		return []Operation{OperationShowEntryProof}
	default:
		return []Operation{}
	}
}
