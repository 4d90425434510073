package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

// AnnouncementRepository handles database operations for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates a new announcement repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementJoin = `
	SELECT a.id, a.title, a.content, a.image, a.department_id, a.created_at,
	       d.department_name
	FROM announcements a
	LEFT JOIN departments d ON a.department_id = d.department_id`

// Create inserts a new announcement. CreatedAt is set here so both backends
// store the same format.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	announcement.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	query := r.db.Rebind(`
		INSERT INTO announcements (title, content, image, department_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`)
	err := r.db.QueryRowContext(ctx, query,
		announcement.Title, announcement.Content, announcement.Image,
		announcement.DepartmentID, announcement.CreatedAt,
	).Scan(&announcement.ID)
	if err != nil {
		return fmt.Errorf("inserting announcement: %w", err)
	}
	return nil
}

// GetAll retrieves announcements, newest first. When departmentID is non-nil
// only that department's announcements are returned.
func (r *AnnouncementRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Announcement, error) {
	var announcements []*models.Announcement

	if departmentID != nil {
		query := r.db.Rebind(announcementJoin + ` WHERE a.department_id = ? ORDER BY a.created_at DESC`)
		if err := r.db.SelectContext(ctx, &announcements, query, *departmentID); err != nil {
			return nil, fmt.Errorf("retrieving announcements: %w", err)
		}
		return announcements, nil
	}

	query := announcementJoin + ` ORDER BY a.created_at DESC`
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("retrieving announcements: %w", err)
	}
	return announcements, nil
}

// GetForDepartment retrieves the announcements a student should see: the ones
// for their department plus the global ones (department_id IS NULL).
func (r *AnnouncementRepository) GetForDepartment(ctx context.Context, departmentID *int64) ([]*models.Announcement, error) {
	var announcements []*models.Announcement

	if departmentID == nil {
		query := announcementJoin + ` WHERE a.department_id IS NULL ORDER BY a.created_at DESC`
		if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
			return nil, fmt.Errorf("retrieving announcements: %w", err)
		}
		return announcements, nil
	}

	query := r.db.Rebind(announcementJoin + `
		WHERE a.department_id = ? OR a.department_id IS NULL
		ORDER BY a.created_at DESC`)
	if err := r.db.SelectContext(ctx, &announcements, query, *departmentID); err != nil {
		return nil, fmt.Errorf("retrieving announcements: %w", err)
	}
	return announcements, nil
}

// Delete removes an announcement row. Any stored image is left in the backing
// store.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM announcements WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting announcement: %w", err)
	}
	return requireRowAffected(res, apperrors.ErrAnnouncementNotFound)
}
