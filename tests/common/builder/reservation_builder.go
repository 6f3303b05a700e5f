//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/domain/user"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationLine struct {
	Name           string
	PriceCents     int64
	PackageSession bool
}

type ReservationBuilder struct {
	OrganizationID uuid.UUID
	ClientID       uuid.UUID
	CreatedBy      uuid.UUID
	CreatorRole    user.Role
	Now            time.Time
	StartsAt       time.Time
	EndsAt         time.Time
	Lines          []ReservationLine
	Note           string
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		OrganizationID: uuid.New(),
		ClientID:       uuid.New(),
		CreatedBy:      uuid.New(),
		CreatorRole:    user.RoleStaff,
		Now:            now,
		StartsAt:       now.Add(24 * time.Hour),
		EndsAt:         now.Add(25 * time.Hour),
		Lines: []ReservationLine{
			{Name: "Facial", PriceCents: 10000},
			{Name: "Manicure", PriceCents: 5000},
		},
		Note: "first visit",
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithCreatorRole(role user.Role) *ReservationBuilder {
	b.CreatorRole = role
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.StartsAt = start
	b.EndsAt = end
	return b
}

func (b *ReservationBuilder) WithLine(name string, priceCents int64, packageSession bool) *ReservationBuilder {
	b.Lines = append(b.Lines, ReservationLine{Name: name, PriceCents: priceCents, PackageSession: packageSession})
	return b
}

func (b *ReservationBuilder) WithOrganizationID(id uuid.UUID) *ReservationBuilder {
	b.OrganizationID = id
	return b
}

func (b *ReservationBuilder) WithClientID(id uuid.UUID) *ReservationBuilder {
	b.ClientID = id
	return b
}

func (b *ReservationBuilder) TotalCents() int64 {
	var total int64
	for _, l := range b.Lines {
		total += l.PriceCents
	}
	return total
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	lines := make([]reservation.ServiceLine, 0, len(b.Lines))
	for _, l := range b.Lines {
		line, err := reservation.NewServiceLine(l.Name, l.PriceCents, l.PackageSession)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	note, err := reservation.NewNote(b.Note)
	if err != nil {
		return nil, err
	}

	f := reservation.NewFactory(clock.NewMockClock(b.Now))
	return f.CreateReservation(b.OrganizationID, b.ClientID, b.CreatedBy, b.CreatorRole, slot, lines, note)
}

func (b *ReservationBuilder) BuildCreateRequest() commands.CreateReservationRequest {
	clientID := b.ClientID
	req := commands.CreateReservationRequest{
		ClientID: &clientID,
		StartsAt: b.StartsAt,
		EndsAt:   b.EndsAt,
		Note:     b.Note,
	}
	for _, l := range b.Lines {
		req.Lines = append(req.Lines, commands.ServiceLineRequest{
			Name:           l.Name,
			PriceCents:     l.PriceCents,
			PackageSession: l.PackageSession,
		})
	}
	return req
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	clientID := b.ClientID
	note := b.Note
	req := reqdto.CreateReservationRequest{
		ClientID: &clientID,
		StartsAt: b.StartsAt,
		EndsAt:   b.EndsAt,
		Note:     &note,
	}
	for _, l := range b.Lines {
		req.Lines = append(req.Lines, reqdto.ServiceLine{
			Name:           l.Name,
			PriceCents:     l.PriceCents,
			PackageSession: l.PackageSession,
		})
	}
	return req
}

func (b *ReservationBuilder) BuildView(id uuid.UUID) *queries.ReservationView {
	status := reservation.StatusConfirmed.String()
	if !b.CreatorRole.AtLeast(user.RoleStaff) {
		status = reservation.StatusPending.String()
	}
	note := b.Note
	v := &queries.ReservationView{
		ID:              id,
		OrganizationID:  b.OrganizationID,
		ClientID:        b.ClientID,
		ClientFirstName: "Camille",
		ClientLastName:  "Martin",
		ClientEmail:     "client@example.com",
		CreatedBy:       b.CreatedBy,
		StartsAt:        b.StartsAt,
		EndsAt:          b.EndsAt,
		Status:          status,
		TotalCents:      b.TotalCents(),
		Note:            &note,
		Payment:         queries.PaymentView{Status: "unpaid", AppliedDiscounts: []string{}},
		Version:         1,
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
	for _, l := range b.Lines {
		v.Lines = append(v.Lines, queries.ReservationLineView{Name: l.Name, PriceCents: l.PriceCents, PackageSession: l.PackageSession})
	}
	return v
}
