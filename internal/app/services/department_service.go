package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
)

type departmentService struct {
	departments repositories.IDepartmentRepository
	logger      zerolog.Logger
}

// NewDepartmentService creates the department service.
func NewDepartmentService(departments repositories.IDepartmentRepository, lgr zerolog.Logger) DepartmentService {
	return &departmentService{departments: departments, logger: lgr}
}

func (s *departmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	department := &models.Department{Name: req.Name, Code: req.Code}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, err
	}
	s.logger.Info().Str("code", department.Code).Msg("department created")
	return department, nil
}

// Delete removes the department only. Students and announcements that point
// at it keep their department_id and show no department name from then on.
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}
