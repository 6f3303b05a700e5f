package api

import (
	"log/slog"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated        = errs.New("request is not authenticated")
	errInvalidID              = errs.New("invalid id")
	errIdempotencyKeyRequired = errs.New("Idempotency-Key header is required")
	errIdempotencyKeyFormat   = errs.New("Idempotency-Key must be a UUID")
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first matching sentinel wins.
var errorMappings = []errorMapping{
	{commands.ErrAccessDenied, http.StatusForbidden, "Access denied"},
	{queries.ErrAccessDenied, http.StatusForbidden, "Access denied"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},

	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrClientNotFound, http.StatusNotFound, "Client not found"},
	{queries.ErrClientNotFound, http.StatusNotFound, "Client not found"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrGiftCardNotFound, http.StatusNotFound, "Gift card not found"},
	{queries.ErrGiftCardNotFound, http.StatusNotFound, "Gift card not found"},
	{commands.ErrOrganizationNotFound, http.StatusNotFound, "Organization not found"},
	{queries.ErrOrganizationNotFound, http.StatusNotFound, "Organization not found"},
	{commands.ErrTemplateNotFound, http.StatusNotFound, "Email template not found"},
	{commands.ErrPostNotFound, http.StatusNotFound, "Social post not found"},

	{commands.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency-Key was already used with a different request"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "A request with this Idempotency-Key is still being processed"},
	{commands.ErrReservationConflict, http.StatusConflict, "Reservation was modified concurrently, reload and retry"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Reservation cannot change to the requested state"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{commands.ErrSlugTaken, http.StatusConflict, "Organization slug already exists"},
	{commands.ErrGiftCardCodeTaken, http.StatusConflict, "Gift card code already exists"},
	{commands.ErrAlreadyPublished, http.StatusConflict, "Post already published"},

	{commands.ErrDiscountNotEligible, http.StatusUnprocessableEntity, "Client is not eligible for this discount"},
	{commands.ErrGiftCardUnusable, http.StatusUnprocessableEntity, "Gift card cannot be used"},
	{commands.ErrSponsorNotFound, http.StatusUnprocessableEntity, "Sponsor referral code not found"},
	{commands.ErrNoRecipients, http.StatusUnprocessableEntity, "No recipients"},
	{commands.ErrCannotDeactivateSelf, http.StatusUnprocessableEntity, "You cannot deactivate your own account"},
	{commands.ErrRoleNotAssignable, http.StatusUnprocessableEntity, "Role cannot be assigned"},
	{queries.ErrNotInvoiceable, http.StatusUnprocessableEntity, "Reservation cannot be invoiced"},
	{commands.ErrDomainValidation, http.StatusUnprocessableEntity, "Validation failed"},

	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{queries.ErrInvalidDateRange, http.StatusBadRequest, "from must be before to"},
	{reqdto.ErrInvalidDate, http.StatusBadRequest, "Invalid date"},
}

// respondError maps use-case errors onto HTTP statuses. 4xx responses carry
// the underlying message as detail; anything unmapped is a logged 500.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			var detail any
			if m.status == http.StatusUnprocessableEntity {
				detail = err.Error()
			}
			httperr.AbortWithError(c, m.status, err, m.msg, detail)
			return
		}
	}

	slog.Error("unhandled error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
