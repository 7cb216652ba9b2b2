package api

import (
	"errors"
	"net/http"

	reqdto "tripcart/internal/handler/dto/request"
	resdto "tripcart/internal/handler/dto/response"
	"tripcart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// @Summary List destinations
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.DestinationResponse
// @Router /destinations [get]
func (h *CatalogHandler) ListDestinations(c *gin.Context) {
	destinations, err := h.catalogUseCase.ListDestinations(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDestinationList(destinations))
}

// @Summary Get a destination
// @Tags catalog
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} resdto.DestinationResponse
// @Failure 404 {object} map[string]string
// @Router /destinations/{id} [get]
func (h *CatalogHandler) GetDestination(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination ID"})
		return
	}

	destination, err := h.catalogUseCase.GetDestination(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDestination(destination))
}

// @Summary Create a destination
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.DestinationRequest true "Destination"
// @Success 201 {object} resdto.DestinationResponse
// @Failure 400 {object} map[string]string
// @Router /destinations [post]
func (h *CatalogHandler) CreateDestination(c *gin.Context) {
	var req reqdto.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	destination, err := h.catalogUseCase.CreateDestination(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDestination(destination))
}

// @Summary Update a destination
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body reqdto.DestinationRequest true "Destination"
// @Success 200 {object} resdto.DestinationResponse
// @Failure 404 {object} map[string]string
// @Router /destinations/{id} [put]
func (h *CatalogHandler) UpdateDestination(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination ID"})
		return
	}

	var req reqdto.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	destination, err := h.catalogUseCase.UpdateDestination(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDestination(destination))
}

// @Summary Delete a destination
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /destinations/{id} [delete]
func (h *CatalogHandler) DeleteDestination(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination ID"})
		return
	}

	if err := h.catalogUseCase.DeleteDestination(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List payment methods
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PaymentMethodResponse
// @Router /payment-methods [get]
func (h *CatalogHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.catalogUseCase.ListPaymentMethods(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentMethodList(methods))
}

// @Summary Get a payment method
// @Tags catalog
// @Produce json
// @Param id path string true "Payment method ID"
// @Success 200 {object} resdto.PaymentMethodResponse
// @Failure 404 {object} map[string]string
// @Router /payment-methods/{id} [get]
func (h *CatalogHandler) GetPaymentMethod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method ID"})
		return
	}

	method, err := h.catalogUseCase.GetPaymentMethod(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentMethod(method))
}

// @Summary List about entries
// @Tags about
// @Produce json
// @Success 200 {array} resdto.AboutEntryResponse
// @Router /about [get]
func (h *CatalogHandler) ListAboutEntries(c *gin.Context) {
	entries, err := h.catalogUseCase.ListAboutEntries(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAboutEntryList(entries))
}

// @Summary Create an about entry
// @Tags about
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AboutEntryRequest true "About entry"
// @Success 201 {object} resdto.AboutEntryResponse
// @Router /about [post]
func (h *CatalogHandler) CreateAboutEntry(c *gin.Context) {
	var req reqdto.AboutEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.catalogUseCase.CreateAboutEntry(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAboutEntry(entry))
}

// @Summary Update an about entry
// @Tags about
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "About entry ID"
// @Param request body reqdto.AboutEntryRequest true "About entry"
// @Success 200 {object} resdto.AboutEntryResponse
// @Failure 404 {object} map[string]string
// @Router /about/{id} [put]
func (h *CatalogHandler) UpdateAboutEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about entry ID"})
		return
	}

	var req reqdto.AboutEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.catalogUseCase.UpdateAboutEntry(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAboutEntry(entry))
}

// @Summary Delete an about entry
// @Tags about
// @Security BearerAuth
// @Param id path string true "About entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /about/{id} [delete]
func (h *CatalogHandler) DeleteAboutEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about entry ID"})
		return
	}

	if err := h.catalogUseCase.DeleteAboutEntry(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
	case errors.Is(err, usecase.ErrAboutEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "About entry not found"})
	case errors.Is(err, usecase.ErrCatalogDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
	case errors.Is(err, usecase.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced category or payment method does not exist"})
	case errors.Is(err, usecase.ErrDestinationInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "Destination is referenced by cart lines"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
