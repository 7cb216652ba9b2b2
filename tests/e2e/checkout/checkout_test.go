//go:build e2e

package checkout_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"tripcart/internal/handler/dto/request"
	"tripcart/internal/handler/dto/response"
	"tripcart/internal/infra/gateway"
	"tripcart/tests/common/dbtest"
	"tripcart/tests/common/httptest"
	"tripcart/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL     = "/api/auth/register"
	addCartURL      = "/api/cart/add"
	cartURL         = "/api/cart"
	checkoutURL     = "/api/payments/checkout"
	notificationURL = "/api/payments/notifications"
	purchasesURL    = "/api/purchases"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

// registerCustomer creates an account through the public API and returns the
// access token plus the new user id.
func (s *checkoutSuite) registerCustomer(email string) (string, uuid.UUID) {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
		Email:           email,
		Password:        "password123",
		PasswordConfirm: "password123",
		FirstName:       "Ana",
		LastName:        "Silva",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var tokens response.TokenResponse
	httptest.DecodeResponseBody(t, w.Body, &tokens)
	return tokens.AccessToken, tokens.User.ID
}

func (s *checkoutSuite) addToCart(token string, destinationID uuid.UUID) {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, addCartURL,
		request.AddCartLineRequest{DestinationID: destinationID}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (s *checkoutSuite) checkout(token string, items []request.CheckoutItem) *response.CheckoutResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
		request.CreateCheckoutRequest{Items: items}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result response.CheckoutResponse
	httptest.DecodeResponseBody(t, w.Body, &result)
	return &result
}

func (s *checkoutSuite) lineState(userID uuid.UUID) (status string, preferenceID, paymentID *string, purchasedAt *time.Time) {
	t := s.T()

	err := s.DB.QueryRow(t.Context(), `
		SELECT status, preference_id, payment_id, purchased_at
		FROM cart_lines WHERE user_id = $1`, userID).
		Scan(&status, &preferenceID, &paymentID, &purchasedAt)
	require.NoError(t, err)
	return status, preferenceID, paymentID, purchasedAt
}

func (s *checkoutSuite) TestCheckoutFlow() {
	s.Run("approved payment marks the line purchased", func() {
		t := s.T()

		destID := dbtest.CreateTestDestination(t, s.DB, "Bariloche", 150000)
		token, userID := s.registerCustomer("buyer@example.com")
		s.addToCart(token, destID)

		result := s.checkout(token, []request.CheckoutItem{{DestinationID: destID, Quantity: 2}})
		require.NotEmpty(t, result.InitPoint)
		require.NotEmpty(t, result.PreferenceID)
		require.True(t, strings.HasPrefix(result.ExternalReference, "order-"+userID.String()+"-"))

		// The committed transaction left the line in_process with the
		// preference attached.
		status, preferenceID, _, _ := s.lineState(userID)
		require.Equal(t, "in_process", status)
		require.NotNil(t, preferenceID)
		require.Equal(t, result.PreferenceID, *preferenceID)

		// The buyer pays; the gateway notifies us asynchronously.
		s.Gateway.RegisterPayment(gateway.Payment{
			ID:                31337001,
			Status:            "approved",
			StatusDetail:      "accredited",
			ExternalReference: result.ExternalReference,
		})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationURL,
			map[string]any{"topic": "payment", "id": 31337001}, "")
		require.Equal(t, http.StatusOK, w.Code)

		status, _, paymentID, purchasedAt := s.lineState(userID)
		require.Equal(t, "approved", status)
		require.NotNil(t, paymentID)
		require.Equal(t, "31337001", *paymentID)
		require.NotNil(t, purchasedAt, "approved payments must stamp purchased_at")

		// The purchase shows up in the buyer's history.
		purchases := httptest.PerformRequest(t, s.Router, http.MethodGet, purchasesURL, nil, token)
		require.Equal(t, http.StatusOK, purchases.Code)
		require.Contains(t, purchases.Body.String(), "Bariloche")
		require.Contains(t, purchases.Body.String(), "approved")

		// And the active cart is empty again.
		cart := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		require.Equal(t, http.StatusOK, cart.Code)
		require.NotContains(t, cart.Body.String(), "Bariloche")
	})

	s.Run("gateway rejection reverts the lines to cart_active", func() {
		t := s.T()

		destID := dbtest.CreateTestDestination(t, s.DB, "Mendoza", 98000)
		token, userID := s.registerCustomer("reverted@example.com")
		s.addToCart(token, destID)

		s.Gateway.FailNextPreferences(true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
			request.CreateCheckoutRequest{Items: []request.CheckoutItem{{DestinationID: destID, Quantity: 1}}}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "gateway_status")

		// The compensating update committed: no in_process leftovers, no
		// stale correlation id.
		status, preferenceID, _, _ := s.lineState(userID)
		require.Equal(t, "cart_active", status)
		require.Nil(t, preferenceID)

		var externalReference *string
		err := s.DB.QueryRow(t.Context(),
			"SELECT external_reference FROM cart_lines WHERE user_id = $1", userID).Scan(&externalReference)
		require.NoError(t, err)
		require.Nil(t, externalReference)

		// A second attempt with a working gateway succeeds.
		s.Gateway.FailNextPreferences(false)
		result := s.checkout(token, []request.CheckoutItem{{DestinationID: destID, Quantity: 1}})
		require.NotEmpty(t, result.PreferenceID)
	})

	s.Run("items without an active cart line are skipped", func() {
		t := s.T()

		inCart := dbtest.CreateTestDestination(t, s.DB, "Salta", 120000)
		notInCart := dbtest.CreateTestDestination(t, s.DB, "Ushuaia", 210000)
		token, userID := s.registerCustomer("skipper@example.com")
		s.addToCart(token, inCart)

		result := s.checkout(token, []request.CheckoutItem{
			{DestinationID: inCart, Quantity: 1},
			{DestinationID: notInCart, Quantity: 1},
			{DestinationID: uuid.New(), Quantity: 1},
		})
		require.NotEmpty(t, result.PreferenceID)

		// Only the line that was actually in the cart moved.
		var inProcess int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM cart_lines WHERE user_id = $1 AND status = 'in_process'", userID).Scan(&inProcess)
		require.NoError(t, err)
		require.Equal(t, 1, inProcess)
	})

	s.Run("checkout without any usable item fails", func() {
		t := s.T()

		token, _ := s.registerCustomer("emptycart@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL,
			request.CreateCheckoutRequest{Items: []request.CheckoutItem{{DestinationID: uuid.New(), Quantity: 1}}}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "No valid items")
	})
}

func (s *checkoutSuite) TestWebhookReconciliation() {
	s.Run("redelivered notifications converge on the same state", func() {
		t := s.T()

		destID := dbtest.CreateTestDestination(t, s.DB, "Cordoba", 75000)
		token, userID := s.registerCustomer("redelivery@example.com")
		s.addToCart(token, destID)

		result := s.checkout(token, []request.CheckoutItem{{DestinationID: destID, Quantity: 1}})
		s.Gateway.RegisterPayment(gateway.Payment{
			ID:                44550001,
			Status:            "approved",
			ExternalReference: result.ExternalReference,
		})

		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationURL,
				map[string]any{"topic": "payment", "id": 44550001}, "")
			require.Equal(t, http.StatusOK, w.Code)
		}

		status, _, paymentID, purchasedAt := s.lineState(userID)
		require.Equal(t, "approved", status)
		require.Equal(t, "44550001", *paymentID)
		require.NotNil(t, purchasedAt)
	})

	s.Run("rejected payment keeps purchased_at empty", func() {
		t := s.T()

		destID := dbtest.CreateTestDestination(t, s.DB, "Iguazu", 88000)
		token, userID := s.registerCustomer("rejected@example.com")
		s.addToCart(token, destID)

		result := s.checkout(token, []request.CheckoutItem{{DestinationID: destID, Quantity: 1}})
		s.Gateway.RegisterPayment(gateway.Payment{
			ID:                44550002,
			Status:            "rejected",
			StatusDetail:      "cc_rejected_insufficient_amount",
			ExternalReference: result.ExternalReference,
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationURL,
			map[string]any{"topic": "payment", "id": 44550002}, "")
		require.Equal(t, http.StatusOK, w.Code)

		status, _, paymentID, purchasedAt := s.lineState(userID)
		require.Equal(t, "rejected", status)
		require.Equal(t, "44550002", *paymentID)
		require.Nil(t, purchasedAt)
	})

	s.Run("unknown payment ids are acknowledged anyway", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationURL,
			map[string]any{"topic": "payment", "id": 99999999}, "")
		require.Equal(t, http.StatusOK, w.Code, "the gateway must never see a NACK")
	})

	s.Run("non-payment topics are acknowledged without side effects", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationURL,
			map[string]any{"topic": "merchant_order", "id": 123}, "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
