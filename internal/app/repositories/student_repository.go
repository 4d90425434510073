package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// studentJoin selects a student row together with its department columns.
// LEFT JOIN keeps students whose department_id dangles or is null.
const studentJoin = `
	SELECT s.student_id, s.prefix, s.first_name, s.last_name, s.dob, s.phone,
	       s.department_id, s.student_code, s.password, s.level, s.blood_group,
	       s.student_image, s.father_name, s.mother_name, s.parent_phone,
	       d.department_name, d.code AS dept_code
	FROM students s
	LEFT JOIN departments d ON s.department_id = d.department_id`

// Create inserts a new student. A student_code collision is reported as
// apperrors.ErrStudentCodeExists; the existing row is untouched.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := r.db.Rebind(`
		INSERT INTO students (prefix, first_name, last_name, dob, phone, department_id,
		                      student_code, password, level, blood_group, student_image,
		                      father_name, mother_name, parent_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING student_id`)

	err := r.db.QueryRowContext(ctx, query,
		student.Prefix, student.FirstName, student.LastName, student.DOB, student.Phone,
		student.DepartmentID, student.StudentCode, student.Password, student.Level,
		student.BloodGroup, student.Image, student.FatherName, student.MotherName,
		student.ParentPhone,
	).Scan(&student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", apperrors.ErrStudentCodeExists, student.StudentCode)
		}
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

// GetByID retrieves a student with its department by primary key.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	query := r.db.Rebind(studentJoin + ` WHERE s.student_id = ?`)
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("retrieving student: %w", err)
	}
	return &student, nil
}

// GetByCode retrieves a student by its external student code.
func (r *StudentRepository) GetByCode(ctx context.Context, code string) (*models.Student, error) {
	var student models.Student
	query := r.db.Rebind(studentJoin + ` WHERE s.student_code = ?`)
	if err := r.db.GetContext(ctx, &student, query, code); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("retrieving student by code: %w", err)
	}
	return &student, nil
}

// GetAll retrieves every student, newest first.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	query := studentJoin + ` ORDER BY s.student_id DESC`
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("retrieving students: %w", err)
	}
	return students, nil
}

// Update rewrites the editable columns of a student row. Password and image
// have dedicated updaters.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := r.db.Rebind(`
		UPDATE students
		SET prefix = ?, first_name = ?, last_name = ?, level = ?, department_id = ?,
		    dob = ?, blood_group = ?, phone = ?, father_name = ?, mother_name = ?,
		    parent_phone = ?
		WHERE student_id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		student.Prefix, student.FirstName, student.LastName, student.Level,
		student.DepartmentID, student.DOB, student.BloodGroup, student.Phone,
		student.FatherName, student.MotherName, student.ParentPhone, student.ID)
	if err != nil {
		return fmt.Errorf("updating student: %w", err)
	}
	return requireRowAffected(res, apperrors.ErrStudentNotFound)
}

// UpdatePassword overwrites the stored digest.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int64, digest string) error {
	query := r.db.Rebind(`UPDATE students SET password = ? WHERE student_id = ?`)
	res, err := r.db.ExecContext(ctx, query, digest, id)
	if err != nil {
		return fmt.Errorf("updating student password: %w", err)
	}
	return requireRowAffected(res, apperrors.ErrStudentNotFound)
}

// UpdateImage overwrites the photo reference.
func (r *StudentRepository) UpdateImage(ctx context.Context, id int64, image *string) error {
	query := r.db.Rebind(`UPDATE students SET student_image = ? WHERE student_id = ?`)
	res, err := r.db.ExecContext(ctx, query, image, id)
	if err != nil {
		return fmt.Errorf("updating student image: %w", err)
	}
	return requireRowAffected(res, apperrors.ErrStudentNotFound)
}

// Delete removes a student row.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM students WHERE student_id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	return requireRowAffected(res, apperrors.ErrStudentNotFound)
}
