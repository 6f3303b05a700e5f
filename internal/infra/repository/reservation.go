package repository

import (
	"context"

	"salon-booking/internal/domain/reservation"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	CreateReservationLine(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationLineParams) error
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationLines(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationLines, error)
	UpdateReservationState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStateParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	for _, line := range converter.ReservationLinesToParams(res) {
		if err := r.queries.CreateReservationLine(ctx, tx, line); err != nil {
			return infra.WrapRepoErr("failed to create reservation line", err)
		}
	}

	return nil
}

// FindForUpdate locks the reservation row; lines are immutable and read without a lock.
func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	lines, err := r.queries.ListReservationLines(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation lines", err)
	}

	res, err := converter.ReservationFromRow(row, lines)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation", err)
	}
	return res, nil
}

// Save writes the mutable state when the stored version still matches expectedVersion.
func (r *ReservationRepository) Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, expectedVersion int32) error {
	n, err := r.queries.UpdateReservationState(ctx, tx, converter.ReservationToStateParams(res, expectedVersion))
	if err != nil {
		return infra.WrapRepoErr("failed to save reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation was modified concurrently", nil, infra.KindConflict)
	}
	return nil
}
