package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

type announcementService struct {
	announcements repositories.IAnnouncementRepository
	students      repositories.IStudentRepository
	logger        zerolog.Logger
}

// NewAnnouncementService creates the announcement service.
func NewAnnouncementService(
	announcements repositories.IAnnouncementRepository,
	students repositories.IStudentRepository,
	lgr zerolog.Logger,
) AnnouncementService {
	return &announcementService{announcements: announcements, students: students, logger: lgr}
}

// Create stores an announcement. The form sends department_id as a string;
// "" and "null" both mean a global announcement, anything else must parse as
// a department id.
func (s *announcementService) Create(ctx context.Context, req dto.CreateAnnouncementRequest, imageRef *string) (*models.Announcement, error) {
	departmentID, err := parseDepartmentField(req.DepartmentID)
	if err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		Title:        req.Title,
		Content:      req.Content,
		Image:        imageRef,
		DepartmentID: departmentID,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", announcement.ID).Msg("announcement created")
	return announcement, nil
}

func (s *announcementService) GetAll(ctx context.Context, departmentID *int64) ([]*models.Announcement, error) {
	return s.announcements.GetAll(ctx, departmentID)
}

// GetForStudent returns the feed a student sees: global announcements plus
// the ones targeted at their department.
func (s *announcementService) GetForStudent(ctx context.Context, studentID int64) ([]*models.Announcement, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.announcements.GetForDepartment(ctx, student.DepartmentID)
}

func (s *announcementService) Delete(ctx context.Context, id int64) error {
	return s.announcements.Delete(ctx, id)
}

func parseDepartmentField(raw string) (*int64, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.ErrValidationFailed
	}
	return &id, nil
}
