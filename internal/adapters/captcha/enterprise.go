package captcha

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/customer_reviews_app/internal/core/ports/services"
	"github.com/SscSPs/customer_reviews_app/internal/middleware"
	"github.com/SscSPs/customer_reviews_app/internal/platform/metrics"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	recaptcha "google.golang.org/api/recaptchaenterprise/v1"
)

const (
	ProviderEnterprise = "enterprise"

	// DefaultMinScore is the lowest risk score accepted for score-based keys.
	DefaultMinScore = 0.5
)

// EnterpriseConfig holds the reCAPTCHA Enterprise project settings.
type EnterpriseConfig struct {
	ProjectID string
	APIKey    string
	Timeout   time.Duration
	MinScore  float64
	// Endpoint overrides the API base path; empty means the production endpoint.
	Endpoint string
}

// EnterpriseVerifier checks response tokens by creating reCAPTCHA Enterprise assessments.
type EnterpriseVerifier struct {
	settings portssvc.CaptchaSettingsSource
	service  *recaptcha.Service
	cfg      EnterpriseConfig
	breaker  *gobreaker.CircuitBreaker[bool]
}

// NewEnterpriseVerifier creates an EnterpriseVerifier. With an API key the key is sent per call;
// without one, and without a caller-supplied client, Application Default Credentials are used.
func NewEnterpriseVerifier(ctx context.Context, settings portssvc.CaptchaSettingsSource, cfg EnterpriseConfig, client *http.Client) (*EnterpriseVerifier, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("recaptcha enterprise requires a project id")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}
	if client == nil {
		if cfg.APIKey != "" {
			client = &http.Client{}
		} else {
			var err error
			client, err = google.DefaultClient(ctx, recaptcha.CloudPlatformScope)
			if err != nil {
				return nil, fmt.Errorf("failed to load google credentials: %w", err)
			}
		}
	}

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := recaptcha.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create recaptcha enterprise client: %w", err)
	}

	return &EnterpriseVerifier{
		settings: settings,
		service:  svc,
		cfg:      cfg,
		breaker:  newBreaker(ProviderEnterprise),
	}, nil
}

// Verify reports whether token is valid for the configured site key and scores at least MinScore.
func (v *EnterpriseVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	logger := middleware.GetLoggerFromCtx(ctx)

	settings, err := v.settings.CaptchaSettings(ctx)
	if err != nil {
		logger.Error("Failed to load captcha settings", slog.String("error", err.Error()))
		return false
	}
	if settings.SiteKey == "" || token == "" {
		return false
	}

	if err := ctx.Err(); err != nil {
		logger.Debug("Request context done before captcha assessment", slog.String("error", err.Error()))
		return false
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, v.cfg.Timeout)
	defer cancel()

	start := time.Now()
	ok, err := v.breaker.Execute(func() (bool, error) {
		ok, err := v.assess(ctx, settings.SiteKey, token, remoteIP)
		return ok, attributeCancel(parent, err)
	})
	metrics.ObserveCaptchaLatency(ProviderEnterprise, time.Since(start).Seconds())
	if err != nil {
		logger.Warn("Captcha assessment failed", slog.String("provider", ProviderEnterprise), slog.String("error", err.Error()))
		metrics.RecordCaptchaError(ProviderEnterprise)
		return false
	}
	metrics.RecordCaptchaResult(ProviderEnterprise, ok)
	return ok
}

func (v *EnterpriseVerifier) assess(ctx context.Context, siteKey, token, remoteIP string) (bool, error) {
	assessment := &recaptcha.GoogleCloudRecaptchaenterpriseV1Assessment{
		Event: &recaptcha.GoogleCloudRecaptchaenterpriseV1Event{
			Token:         token,
			SiteKey:       siteKey,
			UserIpAddress: remoteIP,
		},
	}

	var callOpts []googleapi.CallOption
	if v.cfg.APIKey != "" {
		callOpts = append(callOpts, googleapi.QueryParameter("key", v.cfg.APIKey))
	}

	resp, err := v.service.Projects.Assessments.
		Create("projects/"+v.cfg.ProjectID, assessment).
		Context(ctx).
		Do(callOpts...)
	if err != nil {
		return false, fmt.Errorf("create assessment: %w", err)
	}

	if resp.TokenProperties == nil || !resp.TokenProperties.Valid {
		reason := ""
		if resp.TokenProperties != nil {
			reason = resp.TokenProperties.InvalidReason
		}
		middleware.GetLoggerFromCtx(ctx).Info("Captcha token rejected", slog.String("reason", reason))
		return false, nil
	}
	if resp.RiskAnalysis != nil && resp.RiskAnalysis.Score < v.cfg.MinScore {
		middleware.GetLoggerFromCtx(ctx).Info("Captcha score below threshold", slog.Float64("score", resp.RiskAnalysis.Score))
		return false, nil
	}
	return true, nil
}
