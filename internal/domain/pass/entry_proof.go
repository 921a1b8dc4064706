package pass

import (
	"time"

	"skipass-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const entryProofPrefix = "booking:"

// EntryProof is what the QR / NFC screen renders at the gate.
type EntryProof struct {
	purchaseID uuid.UUID
	validUntil time.Time
}

func (p *Purchase) EntryProof(now time.Time) (EntryProof, error) {
	if p.Status(now) != StatusActive {
		return EntryProof{}, errs.ErrPassNotActive
	}
	return EntryProof{purchaseID: p.id, validUntil: *p.ValidUntil()}, nil
}

func (e EntryProof) PurchaseID() uuid.UUID { return e.purchaseID }
func (e EntryProof) ValidUntil() time.Time { return e.validUntil }
func (e EntryProof) Payload() string       { return entryProofPrefix + e.purchaseID.String() }
