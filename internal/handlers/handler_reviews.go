package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/SscSPs/customer_reviews_app/internal/middleware"
	"github.com/SscSPs/customer_reviews_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// maxSubmissionBytes bounds the review form body.
const maxSubmissionBytes = 64 << 10

// reviewHandler serves the visitor-facing review endpoints.
type reviewHandler struct {
	submissionService  portssvc.SubmissionSvc
	publicationService portssvc.PublicationSvc
	settingsSource     portssvc.CaptchaSettingsSource
	nonceService       portssvc.NonceSvc
	posthog            *utils.PosthogClientWrapper
}

func newReviewHandler(services *portssvc.ServiceContainer, posthog *utils.PosthogClientWrapper) *reviewHandler {
	return &reviewHandler{
		submissionService:  services.Submission,
		publicationService: services.Publication,
		settingsSource:     services.CaptchaSettings,
		nonceService:       services.Nonce,
		posthog:            posthog,
	}
}

// registerReviewRoutes registers the public review routes on a session-bound group.
func registerReviewRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, deps RouteDeps) {
	h := newReviewHandler(services, deps.Posthog)

	rg.GET("/nonce", h.issueNonce)
	rg.GET("/captcha/site-key", h.getSiteKey)

	reviews := rg.Group("/reviews")
	{
		reviews.POST("", rateLimited(deps.SubmitLimiter), h.submitReview)
		reviews.GET("", h.listPublished)
	}
}

func clientInfo(c *gin.Context) dto.ClientInfo {
	return dto.ClientInfo{
		SessionID: middleware.GetSessionIDFromContext(c),
		RemoteIP:  c.ClientIP(),
	}
}

func failure(c *gin.Context, status int, msg string, fields []string) {
	c.JSON(status, dto.FailureResponse{Success: false, Error: msg, HTTPStatus: status, Fields: fields})
}

// issueNonce godoc
// @Summary Issue a review form nonce
// @Description Issues a token bound to the visitor session. It must accompany review submissions and lets the carousel request more than the default number of reviews.
// @Tags reviews
// @Produce json
// @Success 200 {object} dto.NonceResponse
// @Failure 500 {object} dto.FailureResponse
// @Router /nonce [get]
func (h *reviewHandler) issueNonce(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, expiresAt, err := h.nonceService.Issue(middleware.GetSessionIDFromContext(c), portssvc.ReviewNonceAction)
	if err != nil {
		logger.Error("Failed to issue nonce", slog.String("error", err.Error()))
		failure(c, http.StatusInternalServerError, "Failed to issue nonce", nil)
		return
	}

	c.JSON(http.StatusOK, dto.NonceResponse{Nonce: token, ExpiresAt: expiresAt})
}

// submitReview godoc
// @Summary Submit a review
// @Description Accepts a visitor review for moderation. The nonce is checked first, then the reCAPTCHA response, then the fields.
// @Tags reviews
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param review body dto.SubmitReviewRequest true "Review form"
// @Success 201 {object} dto.SubmitReviewResponse
// @Failure 400 {object} dto.FailureResponse "CAPTCHA missing or rejected, or required fields missing"
// @Failure 403 {object} dto.FailureResponse "Security check failed"
// @Failure 429 {object} dto.FailureResponse "Too many submissions"
// @Failure 500 {object} dto.FailureResponse "Submission failed"
// @Router /reviews [post]
func (h *reviewHandler) submitReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSubmissionBytes)

	var req dto.SubmitReviewRequest
	if err := bindSubmission(c, &req); err != nil {
		// The security check still comes first: a body we cannot bind is only
		// reported as malformed when it carries a valid nonce.
		sessionID := middleware.GetSessionIDFromContext(c)
		if !h.nonceService.Verify(salvageNonce(c), sessionID, portssvc.ReviewNonceAction) {
			logger.Info("Review submission refused", slog.String("reason", apperrors.ErrSecurityCheckFailed.Error()), slog.String("bind_error", err.Error()))
			failure(c, http.StatusForbidden, "Security check failed", nil)
			return
		}
		logger.Warn("Failed to bind review submission", slog.String("error", err.Error()))
		failure(c, http.StatusBadRequest, "Invalid request format", nil)
		return
	}

	id, err := h.submissionService.SubmitReview(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		status, msg, fields := submissionFailure(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Review submission failed", slog.String("error", err.Error()))
		} else {
			logger.Info("Review submission refused", slog.String("reason", err.Error()))
		}
		failure(c, status, msg, fields)
		return
	}

	middleware.PosthogEvent(c, h.posthog, "review_submitted", map[string]any{"review_id": id})
	c.JSON(http.StatusCreated, dto.SubmitReviewResponse{Success: true, ID: id})
}

// bindSubmission binds JSON through the body cache so the nonce can still be read when binding fails.
func bindSubmission(c *gin.Context, req *dto.SubmitReviewRequest) error {
	if c.ContentType() == binding.MIMEJSON {
		return c.ShouldBindBodyWith(req, binding.JSON)
	}
	return c.ShouldBind(req)
}

// salvageNonce returns the nonce of a submission whose body failed to bind, or "".
func salvageNonce(c *gin.Context) string {
	if c.ContentType() != binding.MIMEJSON {
		return c.Request.PostForm.Get("nonce")
	}
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return ""
	}
	body, ok := raw.([]byte)
	if !ok {
		return ""
	}
	var partial struct {
		Nonce string `json:"nonce"`
	}
	if err := json.Unmarshal(body, &partial); err != nil {
		return ""
	}
	return partial.Nonce
}

func submissionFailure(err error) (int, string, []string) {
	var missing *apperrors.MissingFieldsError
	switch {
	case errors.Is(err, apperrors.ErrSecurityCheckFailed):
		return http.StatusForbidden, "Security check failed", nil
	case errors.Is(err, apperrors.ErrCaptchaMissing):
		return http.StatusBadRequest, "Please complete the reCAPTCHA", nil
	case errors.Is(err, apperrors.ErrCaptchaFailed):
		return http.StatusBadRequest, "reCAPTCHA verification failed, please try again", nil
	case errors.As(err, &missing):
		return http.StatusBadRequest, "All fields are required", missing.Fields
	default:
		return http.StatusInternalServerError, "Failed to submit review", nil
	}
}

// listPublished godoc
// @Summary List published reviews
// @Description Returns published reviews, newest first. Without a valid nonce the default count is used.
// @Tags reviews
// @Produce json
// @Param count query int false "Number of reviews (1-100, default 5)"
// @Param review_nonce query string false "Nonce from /nonce"
// @Success 200 {object} dto.ListPublishedResponse
// @Failure 404 {object} dto.FailureResponse "No reviews found"
// @Failure 500 {object} dto.FailureResponse
// @Router /reviews [get]
func (h *reviewHandler) listPublished(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPublishedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind carousel query", slog.String("error", err.Error()))
		failure(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return
	}

	// Unparseable counts fall back to the default like any non-positive value.
	count, _ := strconv.Atoi(params.Count)
	nonce := params.ReviewNonce
	if nonce == "" {
		nonce = params.Nonce
	}

	reviews, err := h.publicationService.ListPublished(c.Request.Context(), count, nonce, clientInfo(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			failure(c, http.StatusNotFound, "No reviews found", nil)
			return
		}
		logger.Error("Failed to list published reviews", slog.String("error", err.Error()))
		failure(c, http.StatusInternalServerError, "Failed to load reviews", nil)
		return
	}

	c.JSON(http.StatusOK, dto.ToListPublishedResponse(reviews))
}

// getSiteKey godoc
// @Summary Get the reCAPTCHA site key
// @Description Returns the public key the form needs to render the CAPTCHA widget.
// @Tags reviews
// @Produce json
// @Success 200 {object} dto.SiteKeyResponse
// @Failure 500 {object} dto.FailureResponse
// @Router /captcha/site-key [get]
func (h *reviewHandler) getSiteKey(c *gin.Context) {
	settings, err := h.settingsSource.CaptchaSettings(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load captcha settings", slog.String("error", err.Error()))
		failure(c, http.StatusInternalServerError, "Failed to load CAPTCHA settings", nil)
		return
	}
	c.JSON(http.StatusOK, dto.SiteKeyResponse{SiteKey: settings.SiteKey})
}
