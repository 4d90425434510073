package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
)

// IStudentRepository abstracts student persistence so services can be tested
// against fakes.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByCode(ctx context.Context, code string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	UpdatePassword(ctx context.Context, id int64, digest string) error
	UpdateImage(ctx context.Context, id int64, image *string) error
	Delete(ctx context.Context, id int64) error
}

// IAdminRepository abstracts admin account persistence.
type IAdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
	Create(ctx context.Context, admin *models.AdminUser) error
	Count(ctx context.Context) (int64, error)
}

// IDepartmentRepository abstracts department persistence.
type IDepartmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// IAnnouncementRepository abstracts announcement persistence.
type IAnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Announcement, error)
	GetForDepartment(ctx context.Context, departmentID *int64) ([]*models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// IStatsRepository provides the aggregate counts for the dashboards.
type IStatsRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	PerDepartmentCounts(ctx context.Context) ([]dto.DepartmentCount, error)
}

// Repositories bundles every repository over one database handle.
type Repositories struct {
	Students      IStudentRepository
	Admins        IAdminRepository
	Departments   IDepartmentRepository
	Announcements IAnnouncementRepository
	Stats         IStatsRepository
}

// NewRepositories creates the repository container.
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Students:      NewStudentRepository(db),
		Admins:        NewAdminRepository(db),
		Departments:   NewDepartmentRepository(db),
		Announcements: NewAnnouncementRepository(db),
		Stats:         NewStatsRepository(db),
	}
}
