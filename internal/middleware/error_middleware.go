package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimhouy1997/lms-portal-sub000/internal/app/models/dto"
	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. All
// controllers route service errors through here so status codes and
// body shapes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	detail := buildErrorDetail(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if custom.Field != "" {
			detail = detail.WithField(custom.Field)
		}
		if custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
	}

	c.JSON(statusForDetail(detail.Code), dto.NewErrorResponse(detail))
}

func buildErrorDetail(err error) *dto.ErrorDetail {
	switch {
	// validation
	case errors.Is(err, apperrors.ErrMissingField):
		return dto.NewErrorDetail(dto.ErrorCodeMissingField, "Required field missing")
	case errors.Is(err, apperrors.ErrInvalidRange):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidRange, "Value out of range")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

	// auth
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrTokenRevoked):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrInvalidPasswordResetToken), errors.Is(err, apperrors.ErrPasswordResetTokenUsed):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid or expired password reset token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")

	// not found
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrChapterNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Chapter not found")
	case errors.Is(err, apperrors.ErrLessonNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Lesson not found")
	case errors.Is(err, apperrors.ErrLessonResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Lesson resource not found")
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Assignment not found")
	case errors.Is(err, apperrors.ErrTechnologyNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Technology not found")
	case errors.Is(err, apperrors.ErrInstituteNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Institute not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")

	// conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrSlugAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "A course with this title already exists")
	case errors.Is(err, apperrors.ErrTechnologyAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Technology already exists")
	case errors.Is(err, apperrors.ErrInstituteAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Institute already exists")
	case errors.Is(err, apperrors.ErrInstituteHasRelations):
		return dto.NewErrorDetail(dto.ErrorCodeConflict, "Institute still has users or courses")
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")
	case errors.Is(err, apperrors.ErrConflict):
		return dto.NewErrorDetail(dto.ErrorCodeConflict, "Conflict")

	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func statusForDetail(code dto.ErrorCode) int {
	switch code {
	case dto.ErrorCodeValidationFailed, dto.ErrorCodeMissingField, dto.ErrorCodeInvalidRange, dto.ErrorCodeResourceInvalid:
		return http.StatusBadRequest
	case dto.ErrorCodeInvalidCredentials, dto.ErrorCodeInvalidToken, dto.ErrorCodeExpiredToken, dto.ErrorCodeTokenNotFound, dto.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case dto.ErrorCodeForbidden:
		return http.StatusForbidden
	case dto.ErrorCodeResourceNotFound:
		return http.StatusNotFound
	case dto.ErrorCodeResourceAlreadyExists, dto.ErrorCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
