package api

import (
	"log/slog"
	"net/http"

	reqdto "tripcart/internal/handler/dto/request"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookUseCase usecase.WebhookUseCase
}

func NewWebhookHandler(webhookUseCase usecase.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
	}
}

// @Summary Webhook reachability probe
// @Tags payments
// @Produce json
// @Success 200 {object} map[string]string
// @Router /payments/notifications [get]
func (h *WebhookHandler) Probe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Receive a payment notification
// @Description Apply an asynchronous payment status notification to cart lines
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.WebhookNotification true "Notification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /payments/notifications [post]
func (h *WebhookHandler) ReceiveNotification(c *gin.Context) {
	var notification reqdto.WebhookNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	// Anything past JSON parsing is acknowledged with 200. Returning an
	// error status would only make the gateway redeliver a notification we
	// cannot process; failures are surfaced through logs instead.
	if err := h.webhookUseCase.ProcessNotification(c.Request.Context(), notification); err != nil {
		slog.Error("webhook processing failed",
			"topic", notification.Topic,
			"resource_id", notification.ID.String(),
			"error", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// @Summary Successful payment redirect
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PaymentRedirectResponse
// @Router /payments/success [get]
func (h *WebhookHandler) PaymentSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, redirectResponse(c, "Payment successful!"))
}

// @Summary Failed payment redirect
// @Tags payments
// @Produce json
// @Failure 400 {object} resdto.PaymentRedirectResponse
// @Router /payments/failure [get]
func (h *WebhookHandler) PaymentFailure(c *gin.Context) {
	c.JSON(http.StatusBadRequest, redirectResponse(c, "Payment failed."))
}

// @Summary Pending payment redirect
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PaymentRedirectResponse
// @Router /payments/pending [get]
func (h *WebhookHandler) PaymentPending(c *gin.Context) {
	c.JSON(http.StatusOK, redirectResponse(c, "Payment pending."))
}

func redirectResponse(c *gin.Context, message string) resdto.PaymentRedirectResponse {
	return resdto.PaymentRedirectResponse{
		Message:      message,
		PaymentID:    c.Query("payment_id"),
		Status:       c.Query("status"),
		PreferenceID: c.Query("preference_id"),
	}
}
