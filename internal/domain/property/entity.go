package property

import (
	"github.com/google/uuid"
)

// Property is read-only inside the booking core. PricePerNight comes from
// persisted storage and is the only price ever fed into the pricing engine on
// the charging path.
type Property struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Title         string
	PricePerNight int64
	Currency      string
}

func (p *Property) IsOwnedBy(hostID uuid.UUID) bool {
	return p.HostID == hostID
}
