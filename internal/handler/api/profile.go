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

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// @Summary Get own profile
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.profileUseCase.GetOwnProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}

// @Summary Update own profile
// @Description Partial update of telephone, document id, and address
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/me [patch]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := h.profileUseCase.UpdateOwnProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyUpdate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}

// @Summary List profiles
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.ProfileResponse
// @Failure 403 {object} map[string]string
// @Router /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUseCase.ListProfiles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileList(profiles))
}

// @Summary Get a profile by id
// @Tags profiles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} map[string]string
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	profile, err := h.profileUseCase.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}

// @Summary Update a profile
// @Description Partial update of telephone, document id, and address for any profile
// @Tags profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body reqdto.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/{id} [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := h.profileUseCase.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyUpdate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
			return
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfile(profile))
}

// @Summary Delete a profile
// @Tags profiles
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
