package queries

import "salon-booking/internal/pkg/errs"

var (
	ErrInvalidCursor        = errs.New("invalid cursor")
	ErrAccessDenied         = errs.New("access denied")
	ErrInvalidDateRange     = errs.New("from must be before to")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrUserNotFound         = errs.New("user not found")
	ErrUserInactive         = errs.New("user inactive")
	ErrClientNotFound       = errs.New("client not found")
	ErrGiftCardNotFound     = errs.New("gift card not found")
	ErrOrganizationNotFound = errs.New("organization not found")
	ErrNotInvoiceable       = errs.New("reservation cannot be invoiced")
)
