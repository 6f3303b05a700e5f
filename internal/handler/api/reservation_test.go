//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/payment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockReservationCommands
	mockValidations *commandsmock.MockValidationCommands
	mockQueries     *queriesmock.MockReservationQueries
	mockValidationQ *queriesmock.MockValidationQueries
	actor           shared.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockValidations = commandsmock.NewMockValidationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockValidationQ = queriesmock.NewMockValidationQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), OrganizationID: uuid.New(), Role: user.RoleStaff}

	clk := clock.NewMockClock(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC))
	h := api.NewReservationHandler(s.mockCommands, s.mockValidations, s.mockQueries, s.mockValidationQ, clk)

	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			middleware.SetActor(c, s.actor)
			next(c)
		}
	}
	s.router.POST("/reservations", withActor(h.Create))
	s.router.GET("/reservations/:id", withActor(h.Get))
	s.router.POST("/reservations/:id/cancel", withActor(h.Cancel))
	s.router.GET("/admin/reservations", withActor(h.List))
	s.router.GET("/admin/reservations/export", withActor(h.ExportCSV))
	s.router.POST("/admin/reservations/:id/validate", withActor(h.Validate))
	s.router.POST("/admin/reservations/:id/correct", withActor(h.CorrectPayment))
	s.router.GET("/admin/reservations/:id/invoice", withActor(h.Invoice))
	s.router.POST("/anonymous/reservations", h.Create)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) idempotencyHeaders(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildDTO()
	command := b.BuildCreateRequest()
	view := b.BuildView(uuid.New())

	s.Run("success: returns 201 with the reservation", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, command, key).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.idempotencyHeaders(key))

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(b.TotalCents(), response.TotalCents)
		s.Len(response.Lines, len(b.Lines))
		s.Equal(view.ClientID, response.Client.ID)
	})

	s.Run("error: 401 without an authenticated actor", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, "/anonymous/reservations", reqBody, s.idempotencyHeaders(uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: Idempotency-Key header", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")

		rec = httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing starts_at", mutate: testutil.Field("starts_at", nil)},
			{name: "ends_at before starts_at", mutate: testutil.Field("ends_at", b.StartsAt.Add(-time.Hour).Format(time.RFC3339))},
			{name: "no lines", mutate: testutil.Field("lines", []any{})},
			{name: "negative price", mutate: testutil.Field("lines", []any{map[string]any{"name": "Facial", "price_cents": -1}})},
			{name: "line without name", mutate: testutil.Field("lines", []any{map[string]any{"price_cents": 100}})},
			{name: "note too long", mutate: testutil.Field("note", strings.Repeat("a", 501))},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.idempotencyHeaders(uuid.New()))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"key reused", commands.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency-Key was already used"},
			{"key in flight", commands.ErrIdempotencyInProgress, http.StatusConflict, "still being processed"},
			{"client missing", commands.ErrClientNotFound, http.StatusNotFound, "Client not found"},
			{"forbidden", commands.ErrAccessDenied, http.StatusForbidden, "Access denied"},
			{"invalid domain", commands.ErrDomainValidation, http.StatusUnprocessableEntity, "Validation failed"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				key := uuid.New()
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, command, key).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.idempotencyHeaders(key))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetAndCancel() {
	id := uuid.New()
	view := builder.NewReservationBuilder().BuildView(id)

	s.Run("success: get", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
		s.NotNil(response.Payment.AppliedDiscounts)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, id).Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("success: cancel", func() {
		canceled := *view
		canceled.Status = "canceled"
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(&canceled, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("canceled", response.Status)
	})

	s.Run("error: cancel from a terminal state", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.actor, id).Return(nil, commands.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/admin/reservations"
	items := []*queries.ReservationListItem{{ID: uuid.New(), Status: "confirmed", TotalCents: 15000}}

	s.Run("success: forwards filters and limit", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, gomock.Any(), (*queries.Cursor)(nil), 10).
			DoAndReturn(func(_ any, _ shared.Actor, f queries.ReservationFilter, _ *queries.Cursor, _ int) ([]*queries.ReservationListItem, *queries.Cursor, error) {
				s.Require().NotNil(f.Status)
				s.Equal("confirmed", *f.Status)
				s.Require().NotNil(f.From)
				s.Require().NotNil(f.To)
				s.Equal(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), f.To.UTC())
				return items, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=confirmed&from=2026-03-01&to=2026-04-01&limit=10", nil, "")

		var response resdto.ListResponse[*resdto.ReservationListResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Nil(response.NextCursor)
	})

	s.Run("error: invalid status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=500", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=31/12/2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})
}

func (s *ReservationHandlerTestSuite) TestExportCSV() {
	s.mockQueries.EXPECT().ExportCSV(gomock.Any(), s.actor, gomock.Any()).
		Return([]byte("id,client\n"), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reservations/export", nil, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "text/csv")
	s.Equal(`attachment; filename="reservations-20260402.csv"`, rec.Header().Get("Content-Disposition"))
	s.Equal("id,client\n", rec.Body.String())
}

func (s *ReservationHandlerTestSuite) TestValidate() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/validate"
	view := builder.NewReservationBuilder().BuildView(id)
	body := map[string]any{
		"attendance":     "present",
		"settlement":     "paid",
		"method":         "card",
		"discounts":      map[string]any{"loyalty": true},
		"gift_card_code": " gift-abcd ",
	}

	s.Run("success: normalizes gift card code and returns breakdown", func() {
		key := uuid.New()
		breakdown := &payment.Breakdown{TotalCents: 15000, DiscountCents: 1000, AfterDiscountsCents: 14000, PayableCents: 14000}
		s.mockValidations.EXPECT().Validate(gomock.Any(), s.actor, id, gomock.Any(), key).
			DoAndReturn(func(_ any, _ shared.Actor, _ uuid.UUID, req commands.ValidatePaymentRequest, _ uuid.UUID) (*commands.ValidationResult, error) {
				s.Require().NotNil(req.GiftCardCode)
				s.Equal("GIFT-ABCD", *req.GiftCardCode)
				s.True(req.Discounts.Loyalty)
				return &commands.ValidationResult{Reservation: view, Breakdown: breakdown}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.idempotencyHeaders(key))

		var response resdto.ValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Breakdown)
		s.Equal(int64(14000), response.Breakdown.PayableCents)
		s.False(response.Replayed)
	})

	s.Run("success: full-length code typed in dashed groups passes binding", func() {
		key := uuid.New()
		dashed := testutil.DtoMap(s.T(), body, testutil.Field("gift_card_code", "abcd-efgh-jkmn-pqrs"))
		s.mockValidations.EXPECT().Validate(gomock.Any(), s.actor, id, gomock.Any(), key).
			DoAndReturn(func(_ any, _ shared.Actor, _ uuid.UUID, req commands.ValidatePaymentRequest, _ uuid.UUID) (*commands.ValidationResult, error) {
				s.Require().NotNil(req.GiftCardCode)
				s.Equal("ABCD-EFGH-JKMN-PQRS", *req.GiftCardCode)
				return &commands.ValidationResult{Reservation: view}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, dashed, s.idempotencyHeaders(key))
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: ineligible discount is 422 with detail", func() {
		key := uuid.New()
		s.mockValidations.EXPECT().Validate(gomock.Any(), s.actor, id, gomock.Any(), key).
			Return(nil, commands.ErrDiscountNotEligible).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.idempotencyHeaders(key))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not eligible")
	})

	s.Run("error: unknown payment method", func() {
		bad := testutil.DtoMap(s.T(), body, testutil.Field("method", "bitcoin"))
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, bad, s.idempotencyHeaders(uuid.New()))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ReservationHandlerTestSuite) TestCorrectPayment() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/correct"

	s.Run("error: notes are required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount_cents": 100}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: stale version", func() {
		version := int32(2)
		expected := commands.CorrectPaymentRequest{AmountCents: 100, Notes: "refund", ExpectedVersion: &version}
		s.mockCommands.EXPECT().CorrectPayment(gomock.Any(), s.actor, id, expected).
			Return(nil, commands.ErrReservationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount_cents": 100, "notes": " refund ", "expected_version": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "modified concurrently")
	})
}

func (s *ReservationHandlerTestSuite) TestInvoice() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String() + "/invoice"

	s.Run("success: returns html", func() {
		s.mockQueries.EXPECT().Invoice(gomock.Any(), s.actor, id).Return([]byte("<html></html>"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/html")
	})

	s.Run("error: not invoiceable", func() {
		s.mockQueries.EXPECT().Invoice(gomock.Any(), s.actor, id).Return(nil, queries.ErrNotInvoiceable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be invoiced")
	})
}
