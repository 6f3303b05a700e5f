package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/loyalty"
	"salon-booking/internal/domain/referral"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/csvexport"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientReadStore interface {
	ListFirstPage(ctx context.Context, organizationID uuid.UUID, search *string, limit int32) ([]*ClientListItem, error)
	ListKeyset(ctx context.Context, organizationID uuid.UUID, search *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ClientListItem, error)
	ListForExport(ctx context.Context, organizationID uuid.UUID) ([]*ClientListItem, error)
}

// LoyaltyReadStore loads reward state without locking, for display only.
// Missing rows come back as nil without error.
type LoyaltyReadStore interface {
	Profile(ctx context.Context, clientID uuid.UUID) (*loyalty.Profile, error)
	AsReferred(ctx context.Context, clientID uuid.UUID) (*referral.Referral, error)
	AsSponsor(ctx context.Context, clientID uuid.UUID) ([]*referral.Referral, error)
	Birthday(ctx context.Context, clientID uuid.UUID, year int) (*loyalty.BirthdayDiscount, error)
}

type ClientQueries interface {
	List(ctx context.Context, actor shared.Actor, search *string, cursor *Cursor, limit int) ([]*ClientListItem, *Cursor, error)
	ExportCSV(ctx context.Context, actor shared.Actor) ([]byte, error)
	ReferralStatus(ctx context.Context, actor shared.Actor, clientID uuid.UUID) (*referral.Status, error)
}

type clientQueriesImpl struct {
	clients ClientReadStore
	users   UserReadStore
	loyalty LoyaltyReadStore
}

func NewClientQueries(clients ClientReadStore, users UserReadStore, loyalty LoyaltyReadStore) ClientQueries {
	return &clientQueriesImpl{clients: clients, users: users, loyalty: loyalty}
}

func (q *clientQueriesImpl) List(ctx context.Context, actor shared.Actor, search *string, cursor *Cursor, limit int) ([]*ClientListItem, *Cursor, error) {
	if !actor.AtLeast(user.RoleStaff) {
		return nil, nil, ErrAccessDenied
	}

	return page(cursor, limit,
		func(limit int32) ([]*ClientListItem, error) {
			return q.clients.ListFirstPage(ctx, actor.OrganizationID, search, limit)
		},
		func(lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ClientListItem, error) {
			return q.clients.ListKeyset(ctx, actor.OrganizationID, search, lastCreatedAt, lastID, limit)
		},
		func(c *ClientListItem) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID },
	)
}

var clientExportHeader = []string{
	"client_id", "first_name", "last_name", "email", "phone", "birth_date", "newsletter", "active",
	"individual_services", "package_sessions", "packages_completed", "referral_code", "total_spent", "created_at",
}

func (q *clientQueriesImpl) ExportCSV(ctx context.Context, actor shared.Actor) ([]byte, error) {
	if !actor.AtLeast(user.RoleStaff) {
		return nil, ErrAccessDenied
	}

	rows, err := q.clients.ListForExport(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(rows))
	for _, c := range rows {
		phone, birth := "", ""
		if c.Phone != nil {
			phone = *c.Phone
		}
		if c.BirthDate != nil {
			birth = c.BirthDate.Format(time.DateOnly)
		}
		records = append(records, []string{
			c.ID.String(),
			c.FirstName,
			c.LastName,
			c.Email,
			phone,
			birth,
			yesNo(c.Newsletter),
			yesNo(c.IsActive),
			itoa(c.Loyalty.IndividualServices),
			itoa(c.Loyalty.PackageSessions),
			itoa(c.Loyalty.PackagesCompleted),
			c.Loyalty.ReferralCode,
			csvexport.FormatCents(c.Loyalty.TotalSpentCents),
			c.CreatedAt.Format(time.RFC3339),
		})
	}

	return csvexport.Write(clientExportHeader, records)
}

func (q *clientQueriesImpl) ReferralStatus(ctx context.Context, actor shared.Actor, clientID uuid.UUID) (*referral.Status, error) {
	if !actor.AtLeast(user.RoleStaff) && actor.UserID != clientID {
		return nil, ErrAccessDenied
	}

	client, err := q.users.FindByID(ctx, clientID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(client.OrganizationID) {
		return nil, ErrClientNotFound
	}

	asReferred, err := q.loyalty.AsReferred(ctx, clientID)
	if err != nil {
		return nil, err
	}
	asSponsor, err := q.loyalty.AsSponsor(ctx, clientID)
	if err != nil {
		return nil, err
	}

	st := referral.StatusFor(clientID, asReferred, asSponsor)
	return &st, nil
}
