package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartreturn/storefront-service/internal/domain/dto"
	"github.com/smartreturn/storefront-service/internal/i18n"
)

// GetTheme handles reading the stored theme preference.
// @Summary Get the theme preference
// @Description Returns the stored theme for the owner, defaulting to light
// @Tags preferences
// @Produce json
// @Param ownerID path string true "Preference owner ID"
// @Success 200 {object} dto.SuccessResponse{data=object}
// @Router /api/preferences/{ownerID}/theme [get]
func (h *Handler) GetTheme(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	theme, err := h.preferences.GetTheme(c.Request.Context(), c.Param("ownerID"))
	if err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(gin.H{"theme": theme})
}

// SetTheme handles storing the theme preference.
// @Summary Set the theme preference
// @Description Stores the theme for the owner; only dark and light are accepted
// @Tags preferences
// @Accept json
// @Produce json
// @Param ownerID path string true "Preference owner ID"
// @Param request body dto.SetThemeRequest true "Theme to store"
// @Success 200 {object} dto.SuccessResponse{data=object}
// @Failure 400 {object} dto.ErrorResponse "Unknown theme"
// @Router /api/preferences/{ownerID}/theme [put]
func (h *Handler) SetTheme(c *gin.Context) {
	respBuilder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.SetThemeRequest](c)
	if err != nil {
		key := i18n.ErrKeyInvalidRequestBody
		if err == dto.ErrInvalidTheme {
			key = i18n.ErrKeyInvalidTheme
		}
		respBuilder.Error(http.StatusBadRequest, key, err)
		return
	}

	if err := h.preferences.SetTheme(c.Request.Context(), c.Param("ownerID"), req.Theme); err != nil {
		status, key := serviceErrorStatus(err)
		respBuilder.Error(status, key, err)
		return
	}

	respBuilder.SuccessOK(gin.H{"theme": req.Theme})
}
