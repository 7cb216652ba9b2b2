//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	"tripcart/internal/handler/dto/request"
	"tripcart/internal/handler/dto/response"
	"tripcart/tests/common/dbtest"
	"tripcart/tests/common/httptest"
	"tripcart/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL        = "/api/auth/login"
	destinationsURL = "/api/destinations"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) loginAs(email, role string) string {
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, email, role)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
		request.LoginRequest{Email: email, Password: "password123"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokens response.TokenResponse
	httptest.DecodeResponseBody(t, w.Body, &tokens)
	return tokens.AccessToken
}

func (s *catalogSuite) TestListDestinations() {
	s.Run("the public list is served from the cache once warmed", func() {
		t := s.T()

		dbtest.CreateTestDestination(t, s.DB, "Bariloche", 150000)

		first := httptest.PerformRequest(t, s.Router, http.MethodGet, destinationsURL, nil, "")
		require.Equal(t, http.StatusOK, first.Code)
		require.Contains(t, first.Body.String(), "Bariloche")

		// Mutate the table behind the application's back. The cached
		// payload keeps serving until something invalidates it.
		_, err := s.DB.Exec(t.Context(), "DELETE FROM cart_lines")
		require.NoError(t, err)
		_, err = s.DB.Exec(t.Context(), "DELETE FROM destinations")
		require.NoError(t, err)

		second := httptest.PerformRequest(t, s.Router, http.MethodGet, destinationsURL, nil, "")
		require.Equal(t, http.StatusOK, second.Code)
		require.Contains(t, second.Body.String(), "Bariloche", "warm cache should not see the direct delete")
	})

	s.Run("an empty catalog returns an empty list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, destinationsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, "[]", w.Body.String())
	})
}

func (s *catalogSuite) TestAdminWrites() {
	s.Run("creating a destination invalidates the cached list", func() {
		t := s.T()

		dbtest.CreateTestDestination(t, s.DB, "Bariloche", 150000)
		adminToken := s.loginAs("admin@example.com", "admin")

		// Warm the cache with the single seeded destination.
		warm := httptest.PerformRequest(t, s.Router, http.MethodGet, destinationsURL, nil, "")
		require.Equal(t, http.StatusOK, warm.Code)
		require.NotContains(t, warm.Body.String(), "Mendoza")

		created := httptest.PerformRequest(t, s.Router, http.MethodPost, destinationsURL,
			request.DestinationRequest{
				Name:           "Mendoza",
				Description:    "Wine country",
				UnitPrice:      98000,
				AvailableCount: 20,
			}, adminToken)
		require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

		// The write dropped the cached payload, so the next read sees
		// the new destination.
		after := httptest.PerformRequest(t, s.Router, http.MethodGet, destinationsURL, nil, "")
		require.Equal(t, http.StatusOK, after.Code)
		require.Contains(t, after.Body.String(), "Mendoza")
	})

	s.Run("customers cannot create destinations", func() {
		t := s.T()

		customerToken := s.loginAs("customer@example.com", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, destinationsURL,
			request.DestinationRequest{Name: "Nope", UnitPrice: 1000}, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("unauthenticated writes are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, destinationsURL,
			request.DestinationRequest{Name: "Nope", UnitPrice: 1000}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
