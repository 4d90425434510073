package services

import (
	"context"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
)

type statsService struct {
	stats repositories.IStatsRepository
}

// NewStatsService creates the stats service.
func NewStatsService(stats repositories.IStatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) Dashboard(ctx context.Context) (*dto.DashboardStats, error) {
	students, err := s.stats.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.stats.CountDepartments(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.stats.PerDepartmentCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStats{
		Students:    students,
		Departments: departments,
		Breakdown:   breakdown,
	}, nil
}

func (s *statsService) Public(ctx context.Context) (*dto.PublicStats, error) {
	students, err := s.stats.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.stats.PerDepartmentCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.PublicStats{Students: students, Breakdown: breakdown}, nil
}
