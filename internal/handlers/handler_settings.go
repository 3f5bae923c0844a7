package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/SscSPs/customer_reviews_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.CaptchaSettingsSvc
}

// registerSettingsRoutes registers the CAPTCHA settings routes.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.CaptchaSettingsSvc) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("/captcha", h.getCaptchaSettings)
		settings.PUT("/captcha", h.updateCaptchaSettings)
	}
}

// getCaptchaSettings godoc
// @Summary Get the reCAPTCHA settings
// @Description Returns the effective site key and whether a secret key is configured. The secret itself is never returned.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.CaptchaSettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /admin/settings/captcha [get]
func (h *settingsHandler) getCaptchaSettings(c *gin.Context) {
	settings, err := h.settingsService.CaptchaSettings(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load captcha settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCaptchaSettingsResponse(settings))
}

// updateCaptchaSettings godoc
// @Summary Update the reCAPTCHA settings
// @Description Saves the site and/or secret key. Omitted keys keep their current value.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateCaptchaSettingsRequest true "Keys to change"
// @Success 200 {object} dto.CaptchaSettingsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save settings"
// @Security BearerAuth
// @Router /admin/settings/captcha [put]
func (h *settingsHandler) updateCaptchaSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCaptchaSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCaptchaSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	moderator, _ := middleware.GetModeratorFromContext(c)
	settings, err := h.settingsService.UpdateCaptchaSettings(c.Request.Context(), req, moderator)
	if err != nil {
		logger.Error("Failed to save captcha settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCaptchaSettingsResponse(settings))
}
