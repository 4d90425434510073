package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

// DepartmentRepository handles database operations for departments.
type DepartmentRepository struct {
	db *sqlx.DB
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAll retrieves all departments.
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	var departments []*models.Department
	query := `SELECT department_id, department_name, code FROM departments ORDER BY department_id`
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("retrieving departments: %w", err)
	}
	return departments, nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	query := r.db.Rebind(`SELECT department_id, department_name, code FROM departments WHERE department_id = ?`)
	if err := r.db.GetContext(ctx, &department, query, id); err != nil {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return &department, nil
}

// Create inserts a new department.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := r.db.Rebind(`
		INSERT INTO departments (department_name, code)
		VALUES (?, ?)
		RETURNING department_id`)
	if err := r.db.QueryRowContext(ctx, query, department.Name, department.Code).Scan(&department.ID); err != nil {
		return fmt.Errorf("inserting department: %w", err)
	}
	return nil
}

// Delete removes a department row. Students and announcements referencing it
// are left in place; the schema declares no foreign keys, so their
// department_id simply dangles.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM departments WHERE department_id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}
	return requireRowAffected(res, apperrors.ErrDepartmentNotFound)
}

// Count returns the number of departments.
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM departments`); err != nil {
		return 0, fmt.Errorf("counting departments: %w", err)
	}
	return count, nil
}
