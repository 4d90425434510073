package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
)

// StatsRepository computes the aggregate counts shown on the dashboards.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountStudents returns the total number of students.
func (r *StatsRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM students`); err != nil {
		return 0, fmt.Errorf("counting students: %w", err)
	}
	return count, nil
}

// CountDepartments returns the total number of departments.
func (r *StatsRepository) CountDepartments(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM departments`); err != nil {
		return 0, fmt.Errorf("counting departments: %w", err)
	}
	return count, nil
}

// PerDepartmentCounts returns student counts grouped by department. The LEFT
// JOIN keeps departments with no students in the result, at count zero.
func (r *StatsRepository) PerDepartmentCounts(ctx context.Context) ([]dto.DepartmentCount, error) {
	var breakdown []dto.DepartmentCount
	query := `
		SELECT d.department_name, count(s.student_id) AS count
		FROM departments d
		LEFT JOIN students s ON d.department_id = s.department_id
		GROUP BY d.department_id, d.department_name
		ORDER BY d.department_id`
	if err := r.db.SelectContext(ctx, &breakdown, query); err != nil {
		return nil, fmt.Errorf("computing department breakdown: %w", err)
	}
	return breakdown, nil
}
