package api

import (
	"encoding/json"
	"errors"
	"net/http"

	reqdto "tripcart/internal/handler/dto/request"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/handler/middleware"
	"tripcart/internal/infra/gateway"
	"tripcart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Create a checkout preference
// @Description Turn the caller's active cart lines into a hosted checkout session
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Checkout items"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /payments/checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.checkoutUseCase.CreateCheckout(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoValidItems):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid items to process for payment."})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, usecase.ErrGatewayFailure):
			c.JSON(http.StatusBadRequest, gatewayErrorBody(err))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{
		InitPoint:         result.InitPoint,
		PreferenceID:      result.PreferenceID,
		ExternalReference: result.ExternalReference,
	})
}

// gatewayErrorBody surfaces the gateway's diagnostic payload so the caller
// sees what the gateway actually rejected.
func gatewayErrorBody(err error) gin.H {
	body := gin.H{"error": "Error creating preference in payment gateway"}

	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		body["gateway_status"] = gwErr.StatusCode
		if len(gwErr.Body) > 0 && json.Valid(gwErr.Body) {
			body["details"] = json.RawMessage(gwErr.Body)
		} else if len(gwErr.Body) > 0 {
			body["details"] = string(gwErr.Body)
		}
	}
	return body
}
