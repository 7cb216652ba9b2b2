//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"tripcart/internal/handler/api"
	reqdto "tripcart/internal/handler/dto/request"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/infra/gateway"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/usecase"
	"tripcart/tests/common/httptest"
	usecasemock "tripcart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *usecasemock.MockCheckoutUseCase
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = usecasemock.NewMockCheckoutUseCase(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout)
	s.userID = uuid.New()

	s.router.POST("/payments/checkout", func(c *gin.Context) {
		// Mock middleware behavior: an Authorization header means an
		// authenticated user.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.CreateCheckout(c)
	})
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCreateCheckout() {
	url := "/payments/checkout"
	destinationID := uuid.New()

	// The storefront's wire format, Spanish field names included.
	reqBody := map[string]any{
		"items": []map[string]any{
			{"id_destino": destinationID.String(), "cantidadComprada": 2},
		},
	}

	s.Run("success: returns preference coordinates", func() {
		s.mockCheckout.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Any()).
			Return(&usecase.CheckoutResult{
				InitPoint:         "https://gateway.example/init/123",
				PreferenceID:      "pref-123",
				ExternalReference: "order-" + s.userID.String() + "-abc",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://gateway.example/init/123", response.InitPoint)
		s.Equal("pref-123", response.PreferenceID)
		s.Contains(response.ExternalReference, "order-")
	})

	s.Run("success: tolerates the legacy user_id body field", func() {
		s.mockCheckout.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req reqdto.CreateCheckoutRequest) (*usecase.CheckoutResult, error) {
				s.Require().Len(req.Items, 1)
				s.Equal(destinationID, req.Items[0].DestinationID)
				s.Equal(int32(1), req.Items[0].Quantity)
				return &usecase.CheckoutResult{InitPoint: "x", PreferenceID: "y", ExternalReference: "z"}, nil
			}).Times(1)

		// Older clients still send user_id in the body; it must be accepted
		// and ignored in favor of the token user.
		bodyWithLegacyUserID := map[string]any{
			"items":   []map[string]any{{"id_destino": destinationID.String(), "cantidadComprada": 1}},
			"user_id": uuid.New().String(),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bodyWithLegacyUserID, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 400 when items field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no valid items",
				usecaseError:   usecase.ErrNoValidItems,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "No valid items to process for payment.",
			},
			{
				name:           "user not found",
				usecaseError:   usecase.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: gateway rejection carries the diagnostic payload", func() {
		gwErr := &gateway.Error{
			StatusCode: http.StatusBadRequest,
			Body:       json.RawMessage(`{"message":"invalid items","status":400}`),
		}
		s.mockCheckout.EXPECT().CreateCheckout(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(gwErr, usecase.ErrGatewayFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Error creating preference in payment gateway", body["error"])
		s.Equal(float64(http.StatusBadRequest), body["gateway_status"])
		details, ok := body["details"].(map[string]any)
		s.True(ok, "details should be the gateway's JSON payload")
		s.Equal("invalid items", details["message"])
	})
}
