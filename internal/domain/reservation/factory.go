package reservation

import (
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateReservation books a slot in the future. Bookings made by staff are
// confirmed right away; client bookings wait for confirmation.
func (f *Factory) CreateReservation(
	organizationID, clientID, createdBy uuid.UUID,
	createdByRole user.Role,
	slot TimeSlot,
	lines []ServiceLine,
	note Note,
) (*Reservation, error) {
	now := f.Clock.Now()
	if !slot.StartsAfter(now) {
		return nil, ErrSlotInPast
	}

	status := StatusPending
	if createdByRole.AtLeast(user.RoleStaff) {
		status = StatusConfirmed
	}

	return NewReservation(organizationID, clientID, createdBy, slot, lines, note, status, now)
}
