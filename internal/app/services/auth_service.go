package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/passwords"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

// Post-login landing pages, matched by the frontend.
const (
	StudentDashboardPath = "/student_dashboard.html"
	AdminDashboardPath   = "/admin_dashboard.html"
	LogoutRedirectPath   = "/index.html"
)

type authService struct {
	students repositories.IStudentRepository
	admins   repositories.IAdminRepository
	sessions session.Store
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(
	students repositories.IStudentRepository,
	admins repositories.IAdminRepository,
	sessions session.Store,
	ttl time.Duration,
	lgr zerolog.Logger,
) AuthService {
	return &authService{
		students: students,
		admins:   admins,
		sessions: sessions,
		ttl:      ttl,
		logger:   lgr,
	}
}

// RegisterStudent creates a student account. The initial password is derived
// from the birth date, so the student can log in right away with
// DD/MM/<Buddhist year>. Duplicate student codes surface as
// apperrors.ErrStudentCodeExists from the repository.
func (s *authService) RegisterStudent(ctx context.Context, req dto.RegisterRequest, imageRef *string) (*models.Student, error) {
	secret, err := passwords.DefaultSecret(req.DOB)
	if err != nil {
		return nil, err
	}
	digest, err := passwords.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("hashing initial password: %w", err)
	}

	departmentID := req.DepartmentID
	student := &models.Student{
		Prefix:       nilIfEmpty(req.Prefix),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DOB:          req.DOB,
		Phone:        nilIfEmpty(req.Phone),
		DepartmentID: &departmentID,
		StudentCode:  req.StudentCode,
		Password:     digest,
		Level:        req.Level,
		BloodGroup:   nilIfEmpty(req.BloodGroup),
		Image:        imageRef,
		FatherName:   nilIfEmpty(req.FatherName),
		MotherName:   nilIfEmpty(req.MotherName),
		ParentPhone:  nilIfEmpty(req.ParentPhone),
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("student_code", student.StudentCode).
		Int64("student_id", student.ID).
		Msg("student registered")
	return student, nil
}

// LoginStudent checks the supplied secret against the stored digest and opens
// a session. The raw secret is normalized first, so 01012548, 1/1/2548 and
// 01/01/2548 all match the same stored credential.
func (s *authService) LoginStudent(ctx context.Context, studentCode, rawSecret string) (*LoginResult, error) {
	student, err := s.students.GetByCode(ctx, studentCode)
	if err != nil {
		return nil, err
	}

	if !passwords.Verify(passwords.NormalizeSecret(rawSecret), student.Password) {
		s.logger.Warn().Str("student_code", studentCode).Msg("student login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	payload := session.Payload{
		Role:        session.RoleStudent,
		UserID:      student.ID,
		DisplayName: student.FullName(),
		StudentCode: student.StudentCode,
	}
	return s.openSession(ctx, payload, StudentDashboardPath)
}

// LoginAdmin checks the admin credential and opens a session. Admin passwords
// are operator-chosen, so no normalization is applied.
func (s *authService) LoginAdmin(ctx context.Context, username, rawSecret string) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if !passwords.Verify(rawSecret, admin.Password) {
		s.logger.Warn().Str("username", username).Msg("admin login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	payload := session.Payload{
		Role:        session.RoleAdmin,
		UserID:      admin.ID,
		DisplayName: admin.Username,
	}
	return s.openSession(ctx, payload, AdminDashboardPath)
}

// Logout destroys the session record. Destroying an unknown or already
// destroyed id is not an error.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, sessionID)
}

func (s *authService) openSession(ctx context.Context, payload session.Payload, redirect string) (*LoginResult, error) {
	id := session.NewID()
	if err := s.sessions.Put(ctx, id, payload, s.ttl); err != nil {
		return nil, fmt.Errorf("storing session: %w", err)
	}
	return &LoginResult{SessionID: id, Payload: payload, Redirect: redirect}, nil
}

func nilIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
