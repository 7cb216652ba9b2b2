//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tripcart/internal/handler/api"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/usecase"
	"tripcart/internal/usecase/readmodel"
	"tripcart/tests/common/httptest"
	usecasemock "tripcart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockCart *usecasemock.MockCartUseCase
	handler  *api.CartHandler
	userID   uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCart = usecasemock.NewMockCartUseCase(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCart)
	s.userID = uuid.New()

	authed := func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			handler(c)
		}
	}

	s.router.GET("/cart", authed(s.handler.GetCart))
	s.router.POST("/cart/add", authed(s.handler.AddLine))
	s.router.DELETE("/cart/remove/:id", authed(s.handler.RemoveLine))
	s.router.PUT("/cart/:id/update-quantity", authed(s.handler.UpdateQuantity))
	s.router.PUT("/cart/:id/update-date", authed(s.handler.UpdateDepartureDate))
	s.router.GET("/purchases", authed(s.handler.GetPurchases))
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func (s *CartHandlerTestSuite) cartLine() *readmodel.CartLineRM {
	return &readmodel.CartLineRM{
		ID:              uuid.New(),
		UserID:          s.userID,
		DestinationID:   uuid.New(),
		DestinationName: "Bariloche",
		Quantity:        2,
		Status:          "cart_active",
		UnitPrice:       150000,
		Total:           300000,
		CreatedAt:       time.Now(),
		StatusUpdatedAt: time.Now(),
	}
}

func (s *CartHandlerTestSuite) TestGetCart() {
	s.Run("success: lists active lines with computed totals", func() {
		line := s.cartLine()
		s.mockCart.EXPECT().GetCart(gomock.Any(), s.userID).
			Return([]*readmodel.CartLineRM{line}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var response []resdto.CartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Bariloche", response[0].DestinationName)
		s.Equal(float64(300000), response[0].Total)
	})

	s.Run("success: empty cart serializes as an empty list", func() {
		s.mockCart.EXPECT().GetCart(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var response []resdto.CartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *CartHandlerTestSuite) TestAddLine() {
	url := "/cart/add"
	destinationID := uuid.New()
	reqBody := map[string]any{"destination_id": destinationID.String(), "quantity": 2}

	s.Run("success: returns 201 with the created line", func() {
		s.mockCart.EXPECT().AddLine(gomock.Any(), s.userID, gomock.Any()).
			Return(s.cartLine(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("cart_active", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown destination",
				usecaseError:   usecase.ErrDestinationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Destination not found",
			},
			{
				name:           "unknown payment method",
				usecaseError:   usecase.ErrPaymentMethodNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Payment method not found",
			},
			{
				name:           "invalid quantity",
				usecaseError:   usecase.ErrInvalidQuantity,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Quantity must be at least 1",
			},
			{
				name:           "no payment methods configured",
				usecaseError:   usecase.ErrNoPaymentMethods,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No payment methods configured",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCart.EXPECT().AddLine(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRemoveLine() {
	lineID := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCart.EXPECT().RemoveLine(gomock.Any(), s.userID, lineID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/remove/"+lineID.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed line id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/remove/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart line ID")
	})

	s.Run("error: 404 when the line belongs to another user", func() {
		s.mockCart.EXPECT().RemoveLine(gomock.Any(), s.userID, lineID).
			Return(usecase.ErrCartLineNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/remove/"+lineID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	lineID := uuid.New()
	url := "/cart/" + lineID.String() + "/update-quantity"

	s.Run("success: returns the updated line", func() {
		line := s.cartLine()
		line.Quantity = 5
		s.mockCart.EXPECT().UpdateQuantity(gomock.Any(), s.userID, lineID, int32(5)).
			Return(line, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"quantity": 5}, "bearer-token")

		var response resdto.CartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(5), response.Quantity)
	})

	s.Run("error: 400 when quantity is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *CartHandlerTestSuite) TestUpdateDepartureDate() {
	lineID := uuid.New()
	url := "/cart/" + lineID.String() + "/update-date"
	departure := time.Date(2026, 12, 24, 10, 0, 0, 0, time.UTC)

	s.Run("success: returns the updated line", func() {
		line := s.cartLine()
		line.DepartureDate = &departure
		s.mockCart.EXPECT().UpdateDepartureDate(gomock.Any(), s.userID, lineID, gomock.Any()).
			Return(line, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"departure_date": departure.Format(time.RFC3339)}, "bearer-token")

		var response resdto.CartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.DepartureDate)
	})

	s.Run("error: 400 when the date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Departure date is required")
	})
}

func (s *CartHandlerTestSuite) TestGetPurchases() {
	s.Run("success: returns lines in every payment status", func() {
		active := s.cartLine()
		approved := s.cartLine()
		approved.Status = "approved"
		now := time.Now()
		approved.PurchasedAt = &now

		s.mockCart.EXPECT().GetPurchases(gomock.Any(), s.userID).
			Return([]*readmodel.CartLineRM{approved, active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/purchases", nil, "bearer-token")

		var response []resdto.CartLineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("approved", response[0].Status)
		s.NotNil(response[0].PurchasedAt)
	})
}
