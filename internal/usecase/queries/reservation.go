package queries

import (
	"context"
	"strings"
	"time"

	"salon-booking/internal/domain/invoice"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/csvexport"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListFirstPage(ctx context.Context, organizationID uuid.UUID, f ReservationFilter, limit int32) ([]*ReservationListItem, error)
	ListKeyset(ctx context.Context, organizationID uuid.UUID, f ReservationFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	ListForExport(ctx context.Context, organizationID uuid.UUID, r DateRange) ([]*ReservationExportRow, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips tenant checks; commands use it for read-after-write.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, actor shared.Actor, f ReservationFilter, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ExportCSV(ctx context.Context, actor shared.Actor, r DateRange) ([]byte, error)
	Invoice(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]byte, error)
}

type reservationQueriesImpl struct {
	repo  ReservationReadStore
	orgs  OrganizationReadStore
	clock clock.Clock
}

func NewReservationQueries(repo ReservationReadStore, orgs OrganizationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, orgs: orgs, clock: clock}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}

	// Clients only see their own reservations; another tenant's id looks absent.
	if !actor.CanAccess(view.OrganizationID) {
		return nil, ErrReservationNotFound
	}
	if !actor.AtLeast(user.RoleStaff) && view.ClientID != actor.UserID {
		return nil, ErrAccessDenied
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, actor shared.Actor, f ReservationFilter, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if !actor.AtLeast(user.RoleStaff) {
		if f.ClientID != nil && *f.ClientID != actor.UserID {
			return nil, nil, ErrAccessDenied
		}
		self := actor.UserID
		f.ClientID = &self
	}
	if err := (DateRange{From: f.From, To: f.To}).Validate(); err != nil {
		return nil, nil, err
	}

	return page(cursor, limit,
		func(limit int32) ([]*ReservationListItem, error) {
			return q.repo.ListFirstPage(ctx, actor.OrganizationID, f, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error) {
			return q.repo.ListKeyset(ctx, actor.OrganizationID, f, lastCreatedAt, lastID, limit)
		},
		func(it *ReservationListItem) (time.Time, uuid.UUID) { return it.CreatedAt, it.ID },
	)
}

var reservationExportHeader = []string{
	"reservation_id", "date", "status", "client", "email",
	"total", "discounts", "gift_card", "amount_paid",
	"payment_status", "payment_method", "applied_discounts", "paid_at",
}

func (q *reservationQueriesImpl) ExportCSV(ctx context.Context, actor shared.Actor, r DateRange) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	rows, err := q.repo.ListForExport(ctx, actor.OrganizationID, r)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		paidAt := ""
		if row.PaidAt != nil {
			paidAt = row.PaidAt.Format(time.RFC3339)
		}
		records = append(records, []string{
			row.ID.String(),
			row.StartsAt.Format(time.RFC3339),
			row.Status,
			row.ClientName,
			row.ClientEmail,
			csvexport.FormatCents(row.TotalCents),
			csvexport.FormatCents(row.DiscountCents),
			csvexport.FormatCents(row.GiftCardCents),
			csvexport.FormatCents(row.AmountPaidCents),
			row.PaymentStatus,
			row.PaymentMethod,
			strings.Join(row.AppliedDiscounts, ";"),
			paidAt,
		})
	}

	return csvexport.Write(reservationExportHeader, records)
}

func (q *reservationQueriesImpl) Invoice(ctx context.Context, actor shared.Actor, id uuid.UUID) ([]byte, error) {
	view, err := q.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	org, err := q.orgs.FindByID(ctx, view.OrganizationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}

	lines := make([]invoice.Line, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, invoice.Line{Description: l.Name, AmountCents: l.PriceCents})
	}
	method := ""
	if view.Payment.Method != nil {
		method = *view.Payment.Method
	}

	inv, err := invoice.FromReservation(invoice.Source{
		ReservationID: view.ID,
		SellerName:    org.Name,
		CustomerName:  strings.TrimSpace(view.ClientFirstName + " " + view.ClientLastName),
		CustomerEmail: view.ClientEmail,
		VisitDate:     view.StartsAt,
		Lines:         lines,
		TotalCents:    view.TotalCents,
		DiscountCents: view.Payment.DiscountCents,
		DiscountKinds: view.Payment.AppliedDiscounts,
		GiftCardCents: view.Payment.GiftCardCents,
		AmountPaid:    view.Payment.AmountPaidCents,
		PaymentMethod: method,
		PaymentStatus: view.Payment.Status,
		PaidAt:        view.Payment.PaidAt,
		Validated:     view.Payment.ValidatedAt != nil,
		InvoicePrefix: org.Settings.InvoicePrefix,
		VATRateBP:     org.Settings.VATRateBP,
		Currency:      org.Settings.Currency,
	}, q.clock.Now())
	if err != nil {
		if errs.Is(err, invoice.ErrNotInvoiceable) {
			return nil, errs.Mark(err, ErrNotInvoiceable)
		}
		return nil, err
	}

	return inv.RenderHTML()
}
