// Package seed installs the default data a fresh database needs: the nine
// departments and the initial admin account.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/repositories"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/passwords"
)

var defaultDepartments = []models.Department{
	{Name: "เทคโนโลยีคอมพิวเตอร์", Code: "COM"},
	{Name: "อิเล็กทรอนิกส์", Code: "ELEC"},
	{Name: "ช่างไฟฟ้ากำลัง", Code: "POWER"},
	{Name: "เทคโนโลยีสารสนเทศ", Code: "IT"},
	{Name: "ช่างโยธา", Code: "CIVIL"},
	{Name: "ช่างก่อสร้าง", Code: "CONST"},
	{Name: "ช่างเชื่อม", Code: "WELD"},
	{Name: "ช่างเมคคาทรอนิกส์", Code: "MECHA"},
	{Name: "ช่างยนต์", Code: "AUTO"},
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
	defaultAdminEmail    = "admin@example.com"
)

// CreateDefaultData populates departments and the default admin when their
// tables are empty. Partial failures are collected; seeding is best-effort
// and never aborts startup.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	var finalErr error

	departmentCount, err := repos.Departments.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking departments: %w", err)
	}
	if departmentCount == 0 {
		lgr.Info().Msg("seeding departments")
		for i := range defaultDepartments {
			dept := defaultDepartments[i]
			if err := repos.Departments.Create(ctx, &dept); err != nil {
				lgr.Error().Err(err).Str("code", dept.Code).Msg("failed to seed department")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	adminCount, err := repos.Admins.Count(ctx)
	if err != nil {
		return errors.Join(finalErr, fmt.Errorf("checking admins: %w", err))
	}
	if adminCount == 0 {
		lgr.Info().Msg("seeding default admin account")
		digest, err := passwords.Hash(defaultAdminPassword)
		if err != nil {
			return errors.Join(finalErr, fmt.Errorf("hashing default admin password: %w", err))
		}
		email := defaultAdminEmail
		admin := &models.AdminUser{
			Username: defaultAdminUsername,
			Password: digest,
			Email:    &email,
			Role:     "admin",
		}
		if err := repos.Admins.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Msg("failed to seed default admin")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
