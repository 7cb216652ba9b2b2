package api

import (
	"errors"
	"net/http"

	reqdto "tripcart/internal/handler/dto/request"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/handler/middleware"
	"tripcart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartUseCase usecase.CartUseCase
}

func NewCartHandler(cartUseCase usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

// @Summary Get current cart
// @Description List the caller's cart_active lines with computed totals
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CartLineResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lines, err := h.cartUseCase.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLineList(lines))
}

// @Summary Add a destination to the cart
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartLineRequest true "Cart line"
// @Success 201 {object} resdto.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/add [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	line, err := h.cartUseCase.AddLine(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCartLine(line))
}

// @Summary Remove a cart line
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart line ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /cart/remove/{id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line ID"})
		return
	}

	if err := h.cartUseCase.RemoveLine(c.Request.Context(), userID, lineID); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update a cart line's quantity
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart line ID"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/{id}/update-quantity [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line ID"})
		return
	}

	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	line, err := h.cartUseCase.UpdateQuantity(c.Request.Context(), userID, lineID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLine(line))
}

// @Summary Update a cart line's departure date
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart line ID"
// @Param request body reqdto.UpdateDepartureDateRequest true "New departure date"
// @Success 200 {object} resdto.CartLineResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/{id}/update-date [put]
func (h *CartHandler) UpdateDepartureDate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line ID"})
		return
	}

	var req reqdto.UpdateDepartureDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Departure date is required"})
		return
	}

	line, err := h.cartUseCase.UpdateDepartureDate(c.Request.Context(), userID, lineID, req.DepartureDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLine(line))
}

// @Summary List purchase history
// @Description All of the caller's cart lines regardless of payment status
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CartLineResponse
// @Failure 401 {object} map[string]string
// @Router /purchases [get]
func (h *CartHandler) GetPurchases(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lines, err := h.cartUseCase.GetPurchases(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLineList(lines))
}

func (h *CartHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCartLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart line not found"})
	case errors.Is(err, usecase.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
	case errors.Is(err, usecase.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
	case errors.Is(err, usecase.ErrMissingDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Departure date is required"})
	case errors.Is(err, usecase.ErrNoPaymentMethods):
		c.JSON(http.StatusConflict, gin.H{"error": "No payment methods configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
