package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/jarcoal/httpmock"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEnterpriseEndpoint = "https://recaptcha.test/"
	testAssessmentsURL     = "https://recaptcha.test/v1/projects/test-project/assessments"
)

func newTestEnterpriseVerifier(t *testing.T, siteKey string) (*EnterpriseVerifier, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	v, err := NewEnterpriseVerifier(context.Background(),
		staticSettings{settings: domain.CaptchaSettings{SiteKey: siteKey}},
		EnterpriseConfig{ProjectID: "test-project", APIKey: "api-key", Endpoint: testEnterpriseEndpoint},
		&http.Client{Transport: transport},
	)
	require.NoError(t, err)
	return v, transport
}

func TestNewEnterpriseVerifier_RequiresProject(t *testing.T) {
	_, err := NewEnterpriseVerifier(context.Background(), staticSettings{}, EnterpriseConfig{APIKey: "k"}, nil)
	assert.Error(t, err)
}

func TestEnterpriseVerifier_ValidToken(t *testing.T) {
	v, transport := newTestEnterpriseVerifier(t, "site-key")

	transport.RegisterResponder(http.MethodPost, testAssessmentsURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "api-key", req.URL.Query().Get("key"))

			var body struct {
				Event struct {
					Token         string `json:"token"`
					SiteKey       string `json:"siteKey"`
					UserIPAddress string `json:"userIpAddress"`
				} `json:"event"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "token-1", body.Event.Token)
			assert.Equal(t, "site-key", body.Event.SiteKey)
			assert.Equal(t, "198.51.100.4", body.Event.UserIPAddress)

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"name":            "projects/test-project/assessments/abc",
				"tokenProperties": map[string]any{"valid": true},
				"riskAnalysis":    map[string]any{"score": 0.9},
			})
		})

	assert.True(t, v.Verify(context.Background(), "token-1", "198.51.100.4"))
}

func TestEnterpriseVerifier_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"invalid token", map[string]any{"tokenProperties": map[string]any{"valid": false, "invalidReason": "MALFORMED"}}},
		{"low score", map[string]any{"tokenProperties": map[string]any{"valid": true}, "riskAnalysis": map[string]any{"score": 0.1}}},
		{"missing token properties", map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, transport := newTestEnterpriseVerifier(t, "site-key")
			transport.RegisterResponder(http.MethodPost, testAssessmentsURL, httpmock.NewJsonResponderOrPanic(http.StatusOK, tt.body))

			assert.False(t, v.Verify(context.Background(), "token", ""))
		})
	}
}

func TestEnterpriseVerifier_BackendError(t *testing.T) {
	v, transport := newTestEnterpriseVerifier(t, "site-key")
	transport.RegisterResponder(http.MethodPost, testAssessmentsURL,
		httpmock.NewStringResponder(http.StatusForbidden, `{"error":{"code":403,"message":"API key not valid"}}`))

	assert.False(t, v.Verify(context.Background(), "token", ""))
}

func TestEnterpriseVerifier_NoCallWithoutSiteKey(t *testing.T) {
	v, transport := newTestEnterpriseVerifier(t, "")

	assert.False(t, v.Verify(context.Background(), "token", ""))
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestEnterpriseVerifier_WithoutAPIKeyOmitsKeyParam(t *testing.T) {
	transport := httpmock.NewMockTransport()
	v, err := NewEnterpriseVerifier(context.Background(),
		staticSettings{settings: domain.CaptchaSettings{SiteKey: "site-key"}},
		EnterpriseConfig{ProjectID: "test-project", Endpoint: testEnterpriseEndpoint},
		&http.Client{Transport: transport},
	)
	require.NoError(t, err)

	transport.RegisterResponder(http.MethodPost, testAssessmentsURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Empty(t, req.URL.Query().Get("key"))
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"tokenProperties": map[string]any{"valid": true},
				"riskAnalysis":    map[string]any{"score": 0.7},
			})
		})

	assert.True(t, v.Verify(context.Background(), "token", ""))
}

func TestEnterpriseVerifier_CanceledCallerSkipsAssessment(t *testing.T) {
	v, transport := newTestEnterpriseVerifier(t, "site-key")
	transport.RegisterResponder(http.MethodPost, testAssessmentsURL,
		httpmock.NewStringResponder(http.StatusInternalServerError, `{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 6; i++ {
		assert.False(t, v.Verify(ctx, "token", ""))
	}

	assert.Equal(t, 0, transport.GetTotalCallCount())
	assert.Equal(t, gobreaker.StateClosed, v.breaker.State())
}

func TestAttributeCancel(t *testing.T) {
	backendErr := errors.New("send request: connection reset")

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancelExpired := context.WithTimeout(context.Background(), 0)
	defer cancelExpired()
	<-expired.Done()

	tests := []struct {
		name        string
		parent      context.Context
		err         error
		countsAsHit bool
	}{
		{"success", context.Background(), nil, true},
		{"backend error", context.Background(), backendErr, false},
		{"caller canceled", canceled, backendErr, true},
		{"caller deadline", expired, backendErr, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := attributeCancel(tt.parent, tt.err)
			assert.Equal(t, tt.countsAsHit, err == nil || errors.Is(err, errCallerCanceled))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}
