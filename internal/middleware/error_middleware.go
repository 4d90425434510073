package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// HandleAPIError maps a service error onto the HTTP response. The mapping is
// by error kind, never by message text:
//
//	validation, duplicate, bad input  -> 400
//	bad credentials, unauthorized     -> 401
//	not found                         -> 404
//	anything else                     -> 500
//
// Login handlers pre-translate their not-found errors so both failure kinds
// come out as 401 with distinct codes; see AuthController.
func HandleAPIError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed", fieldErrors(verrs))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentCodeExists),
		errors.Is(err, apperrors.ErrDuplicate):
		respond(c, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, err.Error(), nil)

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidBirthDate),
		errors.Is(err, apperrors.ErrPasswordTooShort):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error(), nil)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, err.Error(), nil)

	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrSessionExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, err.Error(), nil)

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrAnnouncementNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound),
		errors.Is(err, apperrors.ErrNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error(), nil)

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, err.Error(), nil)
	}
}

// HandleLoginError is HandleAPIError with the login-specific twist: an unknown
// account must come back 401, not 404, so the status never separates "no such
// user" from "wrong password". The error codes still differ for the frontend.
func HandleLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeAccountNotFound, "account not found", nil)
	default:
		HandleAPIError(c, err)
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string, details interface{}) {
	detail := dto.NewErrorDetail(code, message)
	if details != nil {
		detail = detail.WithDetails(details)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
