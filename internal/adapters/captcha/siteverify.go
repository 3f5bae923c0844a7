// Package captcha implements the reCAPTCHA verifiers used by the submission pipeline.
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/middleware"
	"github.com/SscSPs/customer_reviews_app/internal/platform/metrics"
	"github.com/sony/gobreaker/v2"
)

const (
	// DefaultVerifyURL is Google's siteverify endpoint.
	DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	// DefaultTimeout bounds a single verification call.
	DefaultTimeout = 5 * time.Second

	ProviderSiteVerify = "siteverify"

	maxResponseBytes = 64 << 10
)

var (
	errUnexpectedStatus = errors.New("unexpected status from captcha backend")
	errCallerCanceled   = errors.New("caller canceled captcha verification")
)

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// SiteVerifier checks response tokens against the siteverify endpoint.
type SiteVerifier struct {
	settings  portssvc.CaptchaSettingsSource
	client    *http.Client
	verifyURL string
	timeout   time.Duration
	breaker   *gobreaker.CircuitBreaker[bool]
}

// SiteVerifierOption configures a SiteVerifier.
type SiteVerifierOption func(*SiteVerifier)

// WithHTTPClient sets the HTTP client used for the verification call.
func WithHTTPClient(client *http.Client) SiteVerifierOption {
	return func(v *SiteVerifier) {
		if client != nil {
			v.client = client
		}
	}
}

// WithVerifyURL overrides the siteverify endpoint.
func WithVerifyURL(verifyURL string) SiteVerifierOption {
	return func(v *SiteVerifier) {
		if verifyURL != "" {
			v.verifyURL = verifyURL
		}
	}
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(timeout time.Duration) SiteVerifierOption {
	return func(v *SiteVerifier) {
		if timeout > 0 {
			v.timeout = timeout
		}
	}
}

// NewSiteVerifier creates a SiteVerifier reading its secret from settings.
func NewSiteVerifier(settings portssvc.CaptchaSettingsSource, opts ...SiteVerifierOption) *SiteVerifier {
	v := &SiteVerifier{
		settings:  settings,
		client:    &http.Client{},
		verifyURL: DefaultVerifyURL,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.breaker = newBreaker(ProviderSiteVerify)
	return v
}

// newBreaker trips after five consecutive backend failures. Rejected tokens and calls
// abandoned by the caller are not failures; timeouts and transport errors are.
func newBreaker(name string) *gobreaker.CircuitBreaker[bool] {
	metrics.SetCaptchaBreakerState(name, 0)
	return gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCallerCanceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("captcha circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.SetCaptchaBreakerState(name, breakerStateValue(to))
		},
	})
}

// attributeCancel marks err as caused by the caller when parent was canceled.
// Deadline expiry of parent or of the per-call timeout stays a backend failure.
func attributeCancel(parent context.Context, err error) error {
	if err != nil && errors.Is(parent.Err(), context.Canceled) {
		return fmt.Errorf("%w: %w", errCallerCanceled, err)
	}
	return err
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Verify reports whether token is a genuine CAPTCHA response. It never returns an error:
// missing configuration, transport failures and malformed replies all yield false.
func (v *SiteVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	logger := middleware.GetLoggerFromCtx(ctx)

	settings, err := v.settings.CaptchaSettings(ctx)
	if err != nil {
		logger.Error("Failed to load captcha settings", slog.String("error", err.Error()))
		return false
	}
	if settings.SecretKey == "" || token == "" {
		logger.Debug("Captcha secret or token empty, skipping verification call")
		return false
	}

	if err := ctx.Err(); err != nil {
		logger.Debug("Request context done before captcha verification", slog.String("error", err.Error()))
		return false
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	ok, err := v.breaker.Execute(func() (bool, error) {
		ok, err := v.call(ctx, settings.SecretKey, token, remoteIP)
		return ok, attributeCancel(parent, err)
	})
	metrics.ObserveCaptchaLatency(ProviderSiteVerify, time.Since(start).Seconds())
	if err != nil {
		logger.Warn("Captcha verification call failed", slog.String("provider", ProviderSiteVerify), slog.String("error", err.Error()))
		metrics.RecordCaptchaError(ProviderSiteVerify)
		return false
	}
	metrics.RecordCaptchaResult(ProviderSiteVerify, ok)
	return ok
}

func (v *SiteVerifier) call(ctx context.Context, secret, token, remoteIP string) (bool, error) {
	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return false, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	var body siteVerifyResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	if !body.Success && len(body.ErrorCodes) > 0 {
		middleware.GetLoggerFromCtx(ctx).Info("Captcha token rejected", slog.Any("error_codes", body.ErrorCodes))
	}
	return body.Success, nil
}
