package readstore

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationLines(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationLines, error)
	ListReservationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsFirstPageParams) ([]sqlc.ListReservationsFirstPageRow, error)
	ListReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsKeysetParams) ([]sqlc.ListReservationsKeysetRow, error)
	ListReservationsForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsForExportParams) ([]sqlc.ListReservationsForExportRow, error)
	GetAccountingSummary(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAccountingSummaryParams) (sqlc.GetAccountingSummaryRow, error)
	CountReservationsByPaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByPaymentStatusParams) ([]sqlc.CountReservationsByPaymentStatusRow, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	lines, err := r.queries.ListReservationLines(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation lines", err)
	}

	view := &queries.ReservationView{
		ID:              row.ID,
		OrganizationID:  row.OrganizationID,
		ClientID:        row.ClientID,
		ClientFirstName: row.ClientFirstName,
		ClientLastName:  row.ClientLastName,
		ClientEmail:     row.ClientEmail,
		CreatedBy:       row.CreatedBy,
		StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:          pgconv.TimeFromPgtype(row.EndsAt),
		Status:          row.Status,
		TotalCents:      row.TotalCents,
		Note:            pgconv.StringPtrFromPgtype(row.Note),
		Lines:           make([]queries.ReservationLineView, 0, len(lines)),
		Payment: queries.PaymentView{
			Status:           row.PaymentStatus,
			Method:           pgconv.StringPtrFromPgtype(row.PaymentMethod),
			AmountPaidCents:  row.AmountPaidCents,
			DiscountCents:    row.DiscountCents,
			GiftCardCents:    row.GiftCardCents,
			AppliedDiscounts: nonNilStrings(row.AppliedDiscounts),
			Notes:            pgconv.StringPtrFromPgtype(row.PaymentNotes),
			PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
			ValidatedBy:      pgconv.UUIDPtrFromPgtype(row.ValidatedBy),
			ValidatedAt:      pgconv.TimePtrFromPgtype(row.ValidatedAt),
		},
		Version:   row.Version,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, queries.ReservationLineView{
			Name:           l.Name,
			PriceCents:     l.PriceCents,
			PackageSession: l.PackageSession,
		})
	}
	return view, nil
}

func (r *ReservationReadStore) ListFirstPage(ctx context.Context, organizationID uuid.UUID, f queries.ReservationFilter, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsFirstPage(ctx, r.db, sqlc.ListReservationsFirstPageParams{
		OrganizationID: organizationID,
		Status:         pgconv.StringPtrToPgtype(f.Status),
		ClientID:       pgconv.UUIDPtrToPgtype(f.ClientID),
		StartsFrom:     pgconv.TimePtrToPgtype(f.From),
		StartsTo:       pgconv.TimePtrToPgtype(f.To),
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	out := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReservationListItem(row))
	}
	return out, nil
}

func (r *ReservationReadStore) ListKeyset(ctx context.Context, organizationID uuid.UUID, f queries.ReservationFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsKeyset(ctx, r.db, sqlc.ListReservationsKeysetParams{
		OrganizationID: organizationID,
		Status:         pgconv.StringPtrToPgtype(f.Status),
		ClientID:       pgconv.UUIDPtrToPgtype(f.ClientID),
		StartsFrom:     pgconv.TimePtrToPgtype(f.From),
		StartsTo:       pgconv.TimePtrToPgtype(f.To),
		CreatedAt:      pgconv.TimeToPgtype(lastCreatedAt),
		ID:             lastID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	out := make([]*queries.ReservationListItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReservationListItem(sqlc.ListReservationsFirstPageRow(row)))
	}
	return out, nil
}

func (r *ReservationReadStore) ListForExport(ctx context.Context, organizationID uuid.UUID, dr queries.DateRange) ([]*queries.ReservationExportRow, error) {
	rows, err := r.queries.ListReservationsForExport(ctx, r.db, sqlc.ListReservationsForExportParams{
		OrganizationID: organizationID,
		StartsFrom:     pgconv.TimePtrToPgtype(dr.From),
		StartsTo:       pgconv.TimePtrToPgtype(dr.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to export reservations", err)
	}

	out := make([]*queries.ReservationExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.ReservationExportRow{
			ID:               row.ID,
			StartsAt:         pgconv.TimeFromPgtype(row.StartsAt),
			Status:           row.Status,
			ClientName:       strings.TrimSpace(row.ClientFirstName + " " + row.ClientLastName),
			ClientEmail:      row.ClientEmail,
			TotalCents:       row.TotalCents,
			DiscountCents:    row.DiscountCents,
			GiftCardCents:    row.GiftCardCents,
			AmountPaidCents:  row.AmountPaidCents,
			PaymentStatus:    row.PaymentStatus,
			PaymentMethod:    pgconv.StringFromPgtype(row.PaymentMethod),
			AppliedDiscounts: nonNilStrings(row.AppliedDiscounts),
			PaidAt:           pgconv.TimePtrFromPgtype(row.PaidAt),
		})
	}
	return out, nil
}

// Totals aggregates non-canceled reservations whose start falls in dr.
// Open bounds map to PostgreSQL infinity.
func (r *ReservationReadStore) Totals(ctx context.Context, organizationID uuid.UUID, dr queries.DateRange) (*queries.AccountingTotals, error) {
	from, to := rangeBounds(dr)

	sum, err := r.queries.GetAccountingSummary(ctx, r.db, sqlc.GetAccountingSummaryParams{
		OrganizationID: organizationID,
		StartsFrom:     from,
		StartsTo:       to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute accounting summary", err)
	}

	counts, err := r.queries.CountReservationsByPaymentStatus(ctx, r.db, sqlc.CountReservationsByPaymentStatusParams{
		OrganizationID: organizationID,
		StartsFrom:     from,
		StartsTo:       to,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by payment status", err)
	}

	totals := &queries.AccountingTotals{
		ReservationCount: sum.ReservationCount,
		RevenueCents:     sum.RevenueCents,
		DepositCents:     sum.DepositCents,
		DiscountCents:    sum.DiscountCents,
		GiftCardCents:    sum.GiftCardCents,
		ByPaymentStatus:  make(map[string]int64, len(counts)),
	}
	for _, c := range counts {
		totals.ByPaymentStatus[c.PaymentStatus] = c.Count
	}
	return totals, nil
}

func rangeBounds(dr queries.DateRange) (pgtype.Timestamptz, pgtype.Timestamptz) {
	from := pgtype.Timestamptz{InfinityModifier: pgtype.NegativeInfinity, Valid: true}
	to := pgtype.Timestamptz{InfinityModifier: pgtype.Infinity, Valid: true}
	if dr.From != nil {
		from = pgconv.TimeToPgtype(*dr.From)
	}
	if dr.To != nil {
		to = pgconv.TimeToPgtype(*dr.To)
	}
	return from, to
}

func toReservationListItem(row sqlc.ListReservationsFirstPageRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:              row.ID,
		ClientID:        row.ClientID,
		ClientFirstName: row.ClientFirstName,
		ClientLastName:  row.ClientLastName,
		ClientEmail:     row.ClientEmail,
		StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:          pgconv.TimeFromPgtype(row.EndsAt),
		Status:          row.Status,
		TotalCents:      row.TotalCents,
		PaymentStatus:   row.PaymentStatus,
		AmountPaidCents: row.AmountPaidCents,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
