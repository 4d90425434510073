package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/filestorage"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/passwords"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
)

const minPasswordLength = 4

type studentService struct {
	students repositories.IStudentRepository
	storage  filestorage.Storage
	logger   zerolog.Logger
}

// NewStudentService creates the student service. The storage backend is used
// to clean up replaced photos.
func NewStudentService(
	students repositories.IStudentRepository,
	storage filestorage.Storage,
	lgr zerolog.Logger,
) StudentService {
	return &studentService{students: students, storage: storage, logger: lgr}
}

// GetAll returns every student, newest first, with department names joined in.
func (s *studentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// GetByID returns one student or apperrors.ErrStudentNotFound.
func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Update rewrites the editable fields of a student record. The student code,
// password and photo are managed through their own operations and stay
// untouched.
func (s *studentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) error {
	current, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	departmentID := req.DepartmentID
	current.Prefix = nilIfEmpty(req.Prefix)
	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.DOB = req.DOB
	current.Phone = nilIfEmpty(req.Phone)
	current.DepartmentID = &departmentID
	current.Level = req.Level
	current.BloodGroup = nilIfEmpty(req.BloodGroup)
	current.FatherName = nilIfEmpty(req.FatherName)
	current.MotherName = nilIfEmpty(req.MotherName)
	current.ParentPhone = nilIfEmpty(req.ParentPhone)

	return s.students.Update(ctx, current)
}

// Delete removes the student row. The stored photo is left behind; references
// from old sessions simply stop resolving.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("student_id", id).Msg("student deleted")
	return nil
}

// ResetPassword restores the password derived from the student's birth date,
// the same one assigned at registration.
func (s *studentService) ResetPassword(ctx context.Context, id int64) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	secret, err := passwords.DefaultSecret(student.DOB)
	if err != nil {
		return err
	}
	digest, err := passwords.Hash(secret)
	if err != nil {
		return err
	}

	if err := s.students.UpdatePassword(ctx, id, digest); err != nil {
		return err
	}
	s.logger.Info().Int64("student_id", id).Msg("student password reset to default")
	return nil
}

// ChangePassword sets an operator-chosen password. The value is stored as
// given, without the login-time normalization, so whatever the operator typed
// is exactly what the student must type.
func (s *studentService) ChangePassword(ctx context.Context, id int64, newPassword string) error {
	if len(strings.TrimSpace(newPassword)) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}

	digest, err := passwords.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.students.UpdatePassword(ctx, id, digest)
}

// ReplacePhoto points the record at the already-saved new photo, then removes
// the old one. The old file is deleted only after the record update succeeds;
// a failed cleanup is logged and otherwise ignored.
func (s *studentService) ReplacePhoto(ctx context.Context, id int64, ref string) error {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.students.UpdateImage(ctx, id, &ref); err != nil {
		return err
	}

	if student.Image != nil && *student.Image != ref {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.storage.Delete(cleanupCtx, *student.Image); err != nil {
			s.logger.Warn().Err(err).Str("ref", *student.Image).Msg("failed to remove replaced photo")
		}
	}
	return nil
}
