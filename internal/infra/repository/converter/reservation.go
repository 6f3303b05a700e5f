package converter

import (
	"fmt"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/reservation"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	slot := res.TimeSlot()
	return sqlc.CreateReservationParams{
		ID:             res.ID(),
		OrganizationID: res.OrganizationID(),
		ClientID:       res.ClientID(),
		CreatedBy:      res.CreatedBy(),
		StartsAt:       pgconv.TimeToPgtype(slot.Start()),
		EndsAt:         pgconv.TimeToPgtype(slot.End()),
		Status:         res.Status().String(),
		TotalCents:     res.TotalCents(),
		Note:           pgconv.OptionalStringToPgtype(res.Note().String()),
		Version:        res.Version(),
		CreatedAt:      pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationLinesToParams(res *reservation.Reservation) []sqlc.CreateReservationLineParams {
	lines := res.Lines()
	params := make([]sqlc.CreateReservationLineParams, 0, len(lines))
	for i, l := range lines {
		params = append(params, sqlc.CreateReservationLineParams{
			ReservationID:  res.ID(),
			Position:       int32(i),
			Name:           l.Name(),
			PriceCents:     l.PriceCents(),
			PackageSession: l.IsPackageSession(),
		})
	}
	return params
}

// ReservationToStateParams carries the mutable state. Version is the one read
// under lock; the query bumps it.
func ReservationToStateParams(res *reservation.Reservation, expectedVersion int32) sqlc.UpdateReservationStateParams {
	p := res.Payment()
	discounts := p.Discounts
	if discounts == nil {
		discounts = []string{}
	}
	return sqlc.UpdateReservationStateParams{
		Status:           res.Status().String(),
		PaymentStatus:    string(p.Status),
		PaymentMethod:    pgconv.OptionalStringToPgtype(string(p.Method)),
		AmountPaidCents:  p.AmountCents,
		DiscountCents:    p.DiscountCents,
		GiftCardCents:    p.GiftCardCents,
		AppliedDiscounts: discounts,
		PaymentNotes:     pgconv.OptionalStringToPgtype(p.Notes),
		PaidAt:           pgconv.TimePtrToPgtype(p.PaidAt),
		ValidatedBy:      pgconv.UUIDPtrToPgtype(p.ValidatedBy),
		ValidatedAt:      pgconv.TimePtrToPgtype(p.ValidatedAt),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:               res.ID(),
		Version:          expectedVersion,
	}
}

func ReservationFromRow(row sqlc.Reservations, lineRows []sqlc.ReservationLines) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(row.StartsAt), pgconv.TimeFromPgtype(row.EndsAt))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	note, err := reservation.NewNote(pgconv.StringFromPgtype(row.Note))
	if err != nil {
		return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
	}

	lines := make([]reservation.ServiceLine, 0, len(lineRows))
	for _, lr := range lineRows {
		l, err := reservation.NewServiceLine(lr.Name, lr.PriceCents, lr.PackageSession)
		if err != nil {
			return nil, fmt.Errorf("reservation %s line %d: %w", row.ID, lr.Position, err)
		}
		lines = append(lines, l)
	}

	pay := reservation.Payment{
		Status:        payment.Status(row.PaymentStatus),
		Method:        payment.Method(pgconv.StringFromPgtype(row.PaymentMethod)),
		AmountCents:   row.AmountPaidCents,
		DiscountCents: row.DiscountCents,
		GiftCardCents: row.GiftCardCents,
		Discounts:     row.AppliedDiscounts,
		Notes:         pgconv.StringFromPgtype(row.PaymentNotes),
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		ValidatedBy:   pgconv.UUIDPtrFromPgtype(row.ValidatedBy),
		ValidatedAt:   pgconv.TimePtrFromPgtype(row.ValidatedAt),
	}

	return reservation.ReconstructReservation(
		row.ID, row.OrganizationID, row.ClientID, row.CreatedBy,
		slot, lines, row.TotalCents, status, pay, note, row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
