//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type reservationSuite struct {
	e2e.SharedSuite
	orgID      uuid.UUID
	clientID   uuid.UUID
	staffToken string
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.orgID = dbtest.DefaultOrganizationID(t, s.DB)
	s.clientID = dbtest.CreateTestUser(t, s.DB, "client@example.com", string(user.RoleClient))
	s.staffToken = authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))
}

func (s *reservationSuite) authHeaders(token string, key uuid.UUID) map[string]string {
	return map[string]string{
		"Authorization":   "Bearer " + token,
		"Idempotency-Key": key.String(),
	}
}

func (s *reservationSuite) TestCreate() {
	startsAt := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Minute)
	body := request.CreateReservationRequest{
		ClientID: &s.clientID,
		StartsAt: startsAt,
		EndsAt:   startsAt.Add(time.Hour),
		Lines: []request.ServiceLine{
			{Name: "Facial", PriceCents: 10000},
		},
	}

	s.Run("success: staff booking is confirmed and replays on retry", func() {
		t := s.T()
		body.ClientID = &s.clientID
		key := uuid.New()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/reservations", body, s.authHeaders(s.staffToken, key))
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		assert.Equal(t, "confirmed", created.Status)
		assert.Equal(t, int64(10000), created.TotalCents)
		assert.Equal(t, s.clientID, created.Client.ID)

		again := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/reservations", body, s.authHeaders(s.staffToken, key))
		var replayed response.ReservationResponse
		httptest.AssertSuccessResponse(t, again, http.StatusCreated, &replayed)
		assert.Equal(t, created.ID, replayed.ID)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM reservations").Scan(&count))
		assert.Equal(t, 1, count)
	})

	s.Run("error: same key with another body", func() {
		t := s.T()
		body.ClientID = &s.clientID
		key := uuid.New()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/reservations", body, s.authHeaders(s.staffToken, key))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		changed := body
		changed.Lines = []request.ServiceLine{{Name: "Massage", PriceCents: 8000}}
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/reservations", changed, s.authHeaders(s.staffToken, key))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Idempotency-Key was already used")
	})

	s.Run("success: client books for themself and waits for confirmation", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "client@example.com", "password123")
		own := body
		own.ClientID = nil

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/reservations", own, s.authHeaders(token, uuid.New()))
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		assert.Equal(t, "pending", created.Status)
	})

	s.Run("error: client of another salon", func() {
		t := s.T()
		otherOrg := dbtest.CreateTestOrganization(t, s.DB, "Other Salon", "other-salon")
		stranger := dbtest.CreateTestUserIn(t, s.DB, otherOrg, "stranger@example.com", string(user.RoleClient))
		foreign := body
		foreign.ClientID = &stranger

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/reservations", foreign, s.authHeaders(s.staffToken, uuid.New()))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Client not found")
	})
}

func (s *reservationSuite) TestValidate() {
	s.Run("success: loyalty and gift card applied once", func() {
		t := s.T()
		staffID := dbtest.CreateTestUser(t, s.DB, "staff@example.com", string(user.RoleStaff))
		resID := dbtest.CreateTestReservation(t, s.DB, s.orgID, s.clientID, staffID, time.Now().Add(2*time.Hour), 10000)
		dbtest.SetLoyaltyCounters(t, s.DB, s.clientID, 5, 0)
		dbtest.CreateTestGiftCard(t, s.DB, s.orgID, "GIFTABCD", 3000)

		code := "gift-abcd"
		body := request.ValidatePaymentRequest{
			Attendance:   "present",
			Settlement:   "paid",
			Method:       "card",
			Discounts:    request.DiscountSelection{Loyalty: true},
			GiftCardCode: &code,
		}
		url := fmt.Sprintf("/api/admin/reservations/%s/validate", resID)
		key := uuid.New()

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, body, s.authHeaders(s.staffToken, key))
		var res response.ValidationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotNil(t, res.Breakdown)
		assert.False(t, res.Replayed)
		assert.Equal(t, int64(3000), res.Breakdown.GiftCardUsedCents)
		assert.Equal(t, int64(5000), res.Breakdown.PayableCents)
		assert.Equal(t, "completed", res.Reservation.Status)

		var balance int64
		var individual int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT balance_cents FROM gift_cards WHERE code = 'GIFTABCD'").Scan(&balance))
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT individual_services FROM loyalty_profiles WHERE client_id = $1", s.clientID).Scan(&individual))
		assert.Equal(t, int64(0), balance)
		assert.Equal(t, 0, individual, "loyalty counter resets on redemption")

		again := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, body, s.authHeaders(s.staffToken, key))
		var replay response.ValidationResponse
		httptest.AssertSuccessResponse(t, again, http.StatusOK, &replay)
		assert.True(t, replay.Replayed)
		assert.Nil(t, replay.Breakdown)
	})

	s.Run("error: second validation with a new key", func() {
		t := s.T()
		staffID := dbtest.CreateTestUser(t, s.DB, "staff@example.com", string(user.RoleStaff))
		resID := dbtest.CreateTestReservation(t, s.DB, s.orgID, s.clientID, staffID, time.Now().Add(2*time.Hour), 10000)
		body := request.ValidatePaymentRequest{Attendance: "present", Settlement: "paid", Method: "cash"}
		url := fmt.Sprintf("/api/admin/reservations/%s/validate", resID)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, body, s.authHeaders(s.staffToken, uuid.New()))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, body, s.authHeaders(s.staffToken, uuid.New()))
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("error: loyalty not yet earned", func() {
		t := s.T()
		staffID := dbtest.CreateTestUser(t, s.DB, "staff@example.com", string(user.RoleStaff))
		resID := dbtest.CreateTestReservation(t, s.DB, s.orgID, s.clientID, staffID, time.Now().Add(2*time.Hour), 10000)
		body := request.ValidatePaymentRequest{
			Attendance: "present",
			Settlement: "paid",
			Method:     "cash",
			Discounts:  request.DiscountSelection{Loyalty: true},
		}
		key := uuid.New()
		url := fmt.Sprintf("/api/admin/reservations/%s/validate", resID)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url, body, s.authHeaders(s.staffToken, key))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var keys int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM idempotency_keys WHERE key = $1", key).Scan(&keys))
		assert.Equal(t, 0, keys, "failed attempts release their key")
	})

	s.Run("error: client cannot validate", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "client@example.com", "password123")
		url := fmt.Sprintf("/api/admin/reservations/%s/validate", uuid.New())

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, url,
			request.ValidatePaymentRequest{Attendance: "present", Settlement: "paid", Method: "cash"}, s.authHeaders(token, uuid.New()))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) TestCancel() {
	s.Run("success: owner cancels a confirmed booking", func() {
		t := s.T()
		staffID := dbtest.CreateTestUser(t, s.DB, "staff@example.com", string(user.RoleStaff))
		resID := dbtest.CreateTestReservation(t, s.DB, s.orgID, s.clientID, staffID, time.Now().Add(72*time.Hour), 6000)
		token := authtest.LoginUser(t, s.Router, "client@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/reservations/%s/cancel", resID), nil, token)
		var res response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "canceled", res.Status)
		assert.Equal(t, int32(2), res.Version)
	})

	s.Run("error: reservation of another salon is hidden", func() {
		t := s.T()
		otherOrg := dbtest.CreateTestOrganization(t, s.DB, "Other Salon", "other-salon")
		otherClient := dbtest.CreateTestUserIn(t, s.DB, otherOrg, "far@example.com", string(user.RoleClient))
		otherStaff := dbtest.CreateTestUserIn(t, s.DB, otherOrg, "farstaff@example.com", string(user.RoleStaff))
		resID := dbtest.CreateTestReservation(t, s.DB, otherOrg, otherClient, otherStaff, time.Now().Add(72*time.Hour), 6000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/reservations/%s/cancel", resID), nil, s.staffToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})
}
