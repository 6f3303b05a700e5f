//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

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

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "staff@example.com", string(user.RoleStaff))
	dbtest.CreateTestUser(s.T(), s.DB, "client@example.com", string(user.RoleClient))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleStaff))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "success: admin", email: "admin@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "success: client", email: "client@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "success: email is case insensitive", email: "Staff@Example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "error: unknown user", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "error: wrong password", email: "admin@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "error: inactive user", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "error: empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "error: short password", email: "admin@example.com", password: "short", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			assert.NotEmpty(t, res.AccessToken)
			assert.Equal(t, int64(900), res.ExpiresIn)
			require.NotNil(t, res.User)
			assert.Equal(t, dbtest.DefaultOrganizationID(t, s.DB), res.User.OrganizationID)
			assert.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			assert.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("success: refresh cookie issues a new pair", func() {
		t := s.T()

		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "staff@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{httptest.ExtractCookie(login, "refresh_token")}, "")
		var res response.RefreshResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.NotEmpty(t, res.AccessToken)
	})

	s.Run("error: access token is not a refresh token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "staff@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			map[string]string{"refresh_token": token}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid refresh token")
	})

	s.Run("error: missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token required")
	})
}

func (s *authSuite) TestMe() {
	s.Run("success: bearer token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "client@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		var res response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "client@example.com", res.Email)
		assert.Equal(t, string(user.RoleClient), res.Role)
	})

	s.Run("error: expired token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expired@example.com", string(user.RoleStaff))
		token := s.jwt.CreateExpiredToken(t, id, dbtest.DefaultOrganizationID(t, s.DB), user.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: token for a deleted user", func() {
		t := s.T()
		token := s.jwt.GenerateToken(t, uuid.New(), dbtest.DefaultOrganizationID(t, s.DB), user.RoleStaff)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("error: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("success: cookies cleared", func() {
		t := s.T()
		login := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, login.Code)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, httptest.ExtractCookies(login), "")
		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})
}
