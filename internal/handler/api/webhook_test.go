//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"tripcart/internal/handler/api"
	reqdto "tripcart/internal/handler/dto/request"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/pkg/errs"
	"tripcart/tests/common/httptest"
	usecasemock "tripcart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockWebhook *usecasemock.MockWebhookUseCase
	handler     *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWebhook = usecasemock.NewMockWebhookUseCase(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockWebhook)

	s.router.GET("/payments/notifications", s.handler.Probe)
	s.router.POST("/payments/notifications", s.handler.ReceiveNotification)
	s.router.GET("/payments/success", s.handler.PaymentSuccess)
	s.router.GET("/payments/failure", s.handler.PaymentFailure)
	s.router.GET("/payments/pending", s.handler.PaymentPending)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestProbe() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/notifications", nil, "")

	var response map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal("ok", response["status"])
}

func (s *WebhookHandlerTestSuite) TestReceiveNotification() {
	url := "/payments/notifications"

	s.Run("success: acknowledges a payment notification", func() {
		s.mockWebhook.EXPECT().ProcessNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n reqdto.WebhookNotification) error {
				s.Equal("payment", n.Topic)
				s.Equal("12345", n.ID.String())
				return nil
			}).Times(1)

		body := map[string]any{"topic": "payment", "id": "12345"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ok", response["message"])
	})

	s.Run("success: numeric resource ids are normalized to strings", func() {
		s.mockWebhook.EXPECT().ProcessNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n reqdto.WebhookNotification) error {
				s.Equal("123456789012345", n.ID.String())
				return nil
			}).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url,
			`{"topic":"payment","id":123456789012345}`, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on unparseable JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{not json`, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid JSON")
	})

	s.Run("success: processing failures are still acknowledged", func() {
		s.mockWebhook.EXPECT().ProcessNotification(gomock.Any(), gomock.Any()).
			Return(errs.New("gateway lookup failed")).Times(1)

		body := map[string]any{"topic": "payment", "id": "12345"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ok", response["message"])
	})
}

func (s *WebhookHandlerTestSuite) TestPaymentRedirects() {
	query := "?payment_id=pay-1&status=approved&preference_id=pref-1"

	s.Run("success redirect echoes gateway query params", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/success"+query, nil, "")

		var response resdto.PaymentRedirectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Payment successful!", response.Message)
		s.Equal("pay-1", response.PaymentID)
		s.Equal("approved", response.Status)
		s.Equal("pref-1", response.PreferenceID)
	})

	s.Run("failure redirect responds 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/failure"+query, nil, "")

		s.Equal(http.StatusBadRequest, rec.Code)

		var response resdto.PaymentRedirectResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal("Payment failed.", response.Message)
	})

	s.Run("pending redirect responds 200", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/payments/pending"+query, nil, "")

		var response resdto.PaymentRedirectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Payment pending.", response.Message)
	})
}
