package queries

import (
	"context"

	"salon-booking/internal/domain/invoice"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountingReadStore interface {
	Totals(ctx context.Context, organizationID uuid.UUID, r DateRange) (*AccountingTotals, error)
}

type AccountingQueries interface {
	Summary(ctx context.Context, actor shared.Actor, r DateRange) (*AccountingSummary, error)
}

type accountingQueriesImpl struct {
	repo AccountingReadStore
	orgs OrganizationReadStore
}

func NewAccountingQueries(repo AccountingReadStore, orgs OrganizationReadStore) AccountingQueries {
	return &accountingQueriesImpl{repo: repo, orgs: orgs}
}

// Summary derives HT from the collected TTC at the tenant VAT rate.
func (q *accountingQueriesImpl) Summary(ctx context.Context, actor shared.Actor, r DateRange) (*AccountingSummary, error) {
	if !actor.AtLeast(user.RoleAdmin) {
		return nil, ErrAccessDenied
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	org, err := q.orgs.FindByID(ctx, actor.OrganizationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}

	totals, err := q.repo.Totals(ctx, actor.OrganizationID, r)
	if err != nil {
		return nil, err
	}

	ht := invoice.ExcludingVAT(totals.RevenueCents, org.Settings.VATRateBP)
	byStatus := totals.ByPaymentStatus
	if byStatus == nil {
		byStatus = map[string]int64{}
	}
	return &AccountingSummary{
		From:             r.From,
		To:               r.To,
		Currency:         org.Settings.Currency,
		ReservationCount: totals.ReservationCount,
		RevenueTTCCents:  totals.RevenueCents,
		RevenueHTCents:   ht,
		VATCents:         totals.RevenueCents - ht,
		DepositCents:     totals.DepositCents,
		DiscountCents:    totals.DiscountCents,
		GiftCardCents:    totals.GiftCardCents,
		ByPaymentStatus:  byStatus,
	}, nil
}
