package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorDetail) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, err)

	var body struct {
		Error *dto.ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if body.Error == nil {
		t.Fatal("response has no error detail")
	}
	return w, body.Error
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"missing field", apperrors.ErrMissingField, http.StatusBadRequest, dto.ErrorCodeMissingField},
		{"invalid range", apperrors.ErrInvalidRange, http.StatusBadRequest, dto.ErrorCodeInvalidRange},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"lesson not found", apperrors.ErrLessonNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"slug taken", apperrors.ErrSlugAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"institute in use", apperrors.ErrInstituteHasRelations, http.StatusConflict, dto.ErrorCodeConflict},
		{"unknown error", errors.New("database on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, detail := handleError(t, tc.err)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if detail.Code != tc.wantCode {
				t.Errorf("code = %s, want %s", detail.Code, tc.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorWrappedSentinelStillMatches(t *testing.T) {
	wrapped := errors.Join(errors.New("get course 42"), apperrors.ErrCourseNotFound)
	w, detail := handleError(t, wrapped)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if detail.Code != dto.ErrorCodeResourceNotFound {
		t.Errorf("code = %s, want %s", detail.Code, dto.ErrorCodeResourceNotFound)
	}
}

func TestHandleAPIErrorCustomErrorOverlaysMessageAndField(t *testing.T) {
	err := apperrors.NewValidationError("price must be between 0 and 1000").WithField("price")
	_, detail := handleError(t, err)
	if detail.Field != "price" {
		t.Errorf("field = %q, want %q", detail.Field, "price")
	}
	if detail.Message == "" || detail.Message == "Validation failed" {
		t.Errorf("custom message was not applied, got %q", detail.Message)
	}
}

func TestHandleAPIErrorInternalHidesDetail(t *testing.T) {
	_, detail := handleError(t, errors.New("pq: relation courses does not exist"))
	if detail.Message != "Internal server error" {
		t.Errorf("internal errors must not leak detail, got %q", detail.Message)
	}
}
