package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/SscSPs/customer_reviews_app/internal/middleware"
	"github.com/SscSPs/customer_reviews_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// adminReviewHandler handles the moderation endpoints.
type adminReviewHandler struct {
	moderationService portssvc.ModerationSvcFacade
	posthog           *utils.PosthogClientWrapper
}

// registerAdminReviewRoutes registers routes related to review moderation.
func registerAdminReviewRoutes(rg *gin.RouterGroup, moderationService portssvc.ModerationSvcFacade, posthog *utils.PosthogClientWrapper) {
	h := &adminReviewHandler{moderationService: moderationService, posthog: posthog}

	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.listReviews)
		reviews.GET("/:id", h.getReview)
		reviews.PUT("/:id", h.updateReview)
		reviews.DELETE("/:id", h.deleteReview)
		reviews.POST("/:id/publish", h.transition(domain.ActionPublish))
		reviews.POST("/:id/reject", h.transition(domain.ActionReject))
		reviews.POST("/:id/restore", h.transition(domain.ActionRestore))
		reviews.POST("/:id/unpublish", h.transition(domain.ActionUnpublish))
	}
}

// listReviews godoc
// @Summary List reviews by moderation state
// @Description Lists reviews in one moderation state, newest first, with token pagination
// @Tags moderation
// @Produce json
// @Param state query string false "DRAFT, PUBLISHED or REJECTED" default(DRAFT)
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListReviewsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list reviews"
// @Security BearerAuth
// @Router /admin/reviews [get]
func (h *adminReviewHandler) listReviews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListReviewsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListReviews", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	reviews, next, err := h.moderationService.ListReviews(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list reviews", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReviewsResponse(reviews, next))
}

// getReview godoc
// @Summary Get a review by ID
// @Description Retrieves a review in any moderation state
// @Tags moderation
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} dto.AdminReviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Review not found"
// @Failure 500 {object} map[string]string "Failed to retrieve review"
// @Security BearerAuth
// @Router /admin/reviews/{id} [get]
func (h *adminReviewHandler) getReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("review_id", c.Param("id")))

	review, err := h.moderationService.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		logger.Error("Failed to get review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve review"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminReviewResponse(review))
}

// updateReview godoc
// @Summary Edit a review
// @Description Corrects the submitted fields. The same sanitization and required-field rules as submission apply; the moderation state is unchanged.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param review body dto.UpdateReviewRequest true "Review fields"
// @Success 200 {object} dto.AdminReviewResponse
// @Failure 400 {object} map[string]interface{} "Invalid input or missing fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Review not found"
// @Failure 500 {object} map[string]string "Failed to update review"
// @Security BearerAuth
// @Router /admin/reviews/{id} [put]
func (h *adminReviewHandler) updateReview(c *gin.Context) {
	reviewID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("review_id", reviewID))

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	moderator, _ := middleware.GetModeratorFromContext(c)
	review, err := h.moderationService.UpdateReview(c.Request.Context(), reviewID, req, moderator)
	if err != nil {
		var missing *apperrors.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required", "fields": missing.Fields})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		default:
			logger.Error("Failed to update review", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminReviewResponse(review))
}

// transition returns the handler applying action to a review.
//
// @Summary Change the moderation state of a review
// @Description publish: DRAFT to PUBLISHED. reject: DRAFT or PUBLISHED to REJECTED. restore: REJECTED to DRAFT. unpublish: PUBLISHED to DRAFT.
// @Tags moderation
// @Produce json
// @Param id path string true "Review ID"
// @Param action path string true "publish, reject, restore or unpublish"
// @Success 200 {object} dto.AdminReviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Review not found"
// @Failure 409 {object} map[string]string "Transition not allowed from the current state"
// @Failure 500 {object} map[string]string "Failed to moderate review"
// @Security BearerAuth
// @Router /admin/reviews/{id}/{action} [post]
func (h *adminReviewHandler) transition(action domain.ModerationAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID := c.Param("id")
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("review_id", reviewID),
			slog.String("action", string(action)),
		)

		moderator, _ := middleware.GetModeratorFromContext(c)
		review, err := h.moderationService.Transition(c.Request.Context(), reviewID, action, moderator)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			case errors.Is(err, apperrors.ErrInvalidTransition):
				logger.Warn("Refused moderation transition", slog.String("error", err.Error()))
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to moderate review", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to moderate review"})
			}
			return
		}

		middleware.PosthogEvent(c, h.posthog, "review_moderated", map[string]any{
			"review_id": reviewID,
			"action":    string(action),
			"state":     string(review.ModerationState),
		})
		c.JSON(http.StatusOK, dto.ToAdminReviewResponse(review))
	}
}

// deleteReview godoc
// @Summary Delete a review
// @Description Permanently removes a review in any state
// @Tags moderation
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Review not found"
// @Failure 500 {object} map[string]string "Failed to delete review"
// @Security BearerAuth
// @Router /admin/reviews/{id} [delete]
func (h *adminReviewHandler) deleteReview(c *gin.Context) {
	reviewID := c.Param("id")
	moderator, _ := middleware.GetModeratorFromContext(c)

	if err := h.moderationService.DeleteReview(c.Request.Context(), reviewID, moderator); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete review",
			slog.String("review_id", reviewID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.Status(http.StatusNoContent)
}
