package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/apperrors"
	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	"github.com/SscSPs/customer_reviews_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func sampleReview(state domain.ModerationState) *domain.Review {
	r := domain.NewDraftReview("rev-1", "Great", "Loved it", "Jo",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	_ = r.ApplyTransition(state, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	return &r
}

func (suite *HandlerTestSuite) TestAdmin_RequiresToken() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reviews", nil))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockModeration.AssertNotCalled(suite.T(), "ListReviews", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAdmin_ListReviews() {
	next := "next-page"
	suite.mockModeration.On("ListReviews", mock.Anything, mock.MatchedBy(func(p dto.ListReviewsParams) bool {
		return p.State == "DRAFT" && p.Limit == 20 && p.NextToken == nil
	})).Return([]domain.Review{*sampleReview(domain.StateRejected)}, &next, nil).Once()

	w := suite.serve(suite.adminRequest(http.MethodGet, "/api/v1/admin/reviews", ""))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListReviewsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Reviews, 1)
	suite.Equal("Loved it", resp.Reviews[0].Excerpt)
	suite.Equal(&next, resp.NextToken)
}

func (suite *HandlerTestSuite) TestAdmin_ListReviews_LimitOutOfRange() {
	w := suite.serve(suite.adminRequest(http.MethodGet, "/api/v1/admin/reviews?limit=500", ""))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockModeration.AssertNotCalled(suite.T(), "ListReviews", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAdmin_ListReviews_BadState() {
	suite.mockModeration.On("ListReviews", mock.Anything, mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: unknown moderation state", apperrors.ErrValidation)).Once()

	w := suite.serve(suite.adminRequest(http.MethodGet, "/api/v1/admin/reviews?state=archived", ""))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAdmin_Transitions() {
	tests := []struct {
		path   string
		action domain.ModerationAction
	}{
		{"publish", domain.ActionPublish},
		{"reject", domain.ActionReject},
		{"restore", domain.ActionRestore},
		{"unpublish", domain.ActionUnpublish},
	}
	for _, tt := range tests {
		suite.Run(tt.path, func() {
			suite.SetupTest()
			suite.mockModeration.On("Transition", mock.Anything, "rev-1", tt.action, "moderator").
				Return(sampleReview(tt.action.Target()), nil).Once()

			w := suite.serve(suite.adminRequest(http.MethodPost, "/api/v1/admin/reviews/rev-1/"+tt.path, ""))

			suite.Equal(http.StatusOK, w.Code)
			suite.mockModeration.AssertExpectations(suite.T())
		})
	}
}

func (suite *HandlerTestSuite) TestAdmin_TransitionErrors() {
	suite.mockModeration.On("Transition", mock.Anything, "rev-1", domain.ActionPublish, "moderator").
		Return(nil, fmt.Errorf("%w: cannot publish a REJECTED review", apperrors.ErrInvalidTransition)).Once()
	suite.mockModeration.On("Transition", mock.Anything, "rev-1", domain.ActionRestore, "moderator").
		Return(nil, fmt.Errorf("%w: cannot restore a PUBLISHED review", apperrors.ErrInvalidTransition)).Once()
	suite.mockModeration.On("Transition", mock.Anything, "missing", domain.ActionPublish, "moderator").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(suite.adminRequest(http.MethodPost, "/api/v1/admin/reviews/rev-1/publish", ""))
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.serve(suite.adminRequest(http.MethodPost, "/api/v1/admin/reviews/rev-1/restore", ""))
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "cannot restore a PUBLISHED review")

	w = suite.serve(suite.adminRequest(http.MethodPost, "/api/v1/admin/reviews/missing/publish", ""))
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAdmin_UpdateReview() {
	req := dto.UpdateReviewRequest{Title: "Better", Description: "Loved it", Name: "Jo", Date: "2024-01-01"}
	suite.mockModeration.On("UpdateReview", mock.Anything, "rev-1", req, "moderator").
		Return(sampleReview(domain.StateDraft), nil).Once()

	w := suite.serve(suite.adminRequest(http.MethodPut, "/api/v1/admin/reviews/rev-1",
		`{"title":"Better","description":"Loved it","name":"Jo","date":"2024-01-01"}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockModeration.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAdmin_UpdateReview_BadDate() {
	w := suite.serve(suite.adminRequest(http.MethodPut, "/api/v1/admin/reviews/rev-1",
		`{"title":"Better","description":"Loved it","name":"Jo","date":"01/01/2024"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockModeration.AssertNotCalled(suite.T(), "UpdateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAdmin_UpdateReview_MissingFields() {
	suite.mockModeration.On("UpdateReview", mock.Anything, "rev-1", mock.Anything, "moderator").
		Return(nil, &apperrors.MissingFieldsError{Fields: []string{"name", "date"}}).Once()

	w := suite.serve(suite.adminRequest(http.MethodPut, "/api/v1/admin/reviews/rev-1", `{"title":"Better","description":"x"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"All fields are required","fields":["name","date"]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestAdmin_DeleteReview() {
	suite.mockModeration.On("DeleteReview", mock.Anything, "rev-1", "moderator").Return(nil).Once()
	suite.mockModeration.On("DeleteReview", mock.Anything, "gone", "moderator").Return(apperrors.ErrNotFound).Once()

	w := suite.serve(suite.adminRequest(http.MethodDelete, "/api/v1/admin/reviews/rev-1", ""))
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.serve(suite.adminRequest(http.MethodDelete, "/api/v1/admin/reviews/gone", ""))
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestAdmin_CaptchaSettings() {
	suite.mockSettings.On("CaptchaSettings", mock.Anything).
		Return(domain.CaptchaSettings{SiteKey: "site", SecretKey: "secret"}, nil).Once()

	w := suite.serve(suite.adminRequest(http.MethodGet, "/api/v1/admin/settings/captcha", ""))

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "secret\"")
	var resp dto.CaptchaSettingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.SecretConfigured)
	suite.Equal("site", resp.SiteKey)
}

func (suite *HandlerTestSuite) TestAdmin_UpdateCaptchaSettings() {
	secret := "new-secret"
	suite.mockSettings.On("UpdateCaptchaSettings", mock.Anything, dto.UpdateCaptchaSettingsRequest{SecretKey: &secret}, "moderator").
		Return(domain.CaptchaSettings{SiteKey: "site", SecretKey: secret, UpdatedBy: "moderator"}, nil).Once()

	w := suite.serve(suite.adminRequest(http.MethodPut, "/api/v1/admin/settings/captcha", `{"secretKey":"new-secret"}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.NotContains(w.Body.String(), "new-secret")
}

func (suite *HandlerTestSuite) TestLogin() {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockAuth.On("Login", mock.Anything, "moderator", "hunter22").Return("jwt-token", expires, nil).Once()
	suite.mockAuth.On("Login", mock.Anything, "moderator", "wrong").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"moderator","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("jwt-token", resp.Token)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"moderator","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w = suite.serve(req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"username":"moderator"}`))
	req.Header.Set("Content-Type", "application/json")
	w = suite.serve(req)
	suite.Equal(http.StatusBadRequest, w.Code)
}
