package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/dberrors"
)

// AdminRepository handles database operations for admin accounts.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername retrieves an admin account by its unique username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	query := r.db.Rebind(`
		SELECT admin_id, username, password, email, role
		FROM admin_users
		WHERE username = ?`)
	if err := r.db.GetContext(ctx, &admin, query, username); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("retrieving admin: %w", err)
	}
	return &admin, nil
}

// Create inserts a new admin account.
func (r *AdminRepository) Create(ctx context.Context, admin *models.AdminUser) error {
	if admin.Role == "" {
		admin.Role = "admin"
	}
	query := r.db.Rebind(`
		INSERT INTO admin_users (username, password, email, role)
		VALUES (?, ?, ?, ?)
		RETURNING admin_id`)
	err := r.db.QueryRowContext(ctx, query,
		admin.Username, admin.Password, admin.Email, admin.Role,
	).Scan(&admin.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return fmt.Errorf("%w: username %s", apperrors.ErrDuplicate, admin.Username)
		}
		return fmt.Errorf("inserting admin: %w", err)
	}
	return nil
}

// Count returns the number of admin accounts.
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT count(*) FROM admin_users`); err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return count, nil
}
