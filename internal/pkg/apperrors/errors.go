package apperrors

import "errors"

// Error kinds. Handlers never inspect driver or SQL errors directly; repositories
// and services wrap failures into one of these so the HTTP layer can map them.
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Resource errors
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")

	// Authentication / authorization errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionExpired     = errors.New("session expired")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentCodeExists  = errors.New("student code already exists")
	ErrInvalidBirthDate   = errors.New("invalid date of birth")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrStudentPhotoUpload = errors.New("student photo upload failed")
)

// Department errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// Announcement errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
