// Package services holds the business logic between the HTTP controllers and
// the repositories. Controllers depend on the interfaces below so handler
// tests can substitute fakes.
package services

import (
	"context"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

// LoginResult is what a successful login produces: the opaque session id for
// the cookie, the stored payload, and the page the client should load next.
type LoginResult struct {
	SessionID string
	Payload   session.Payload
	Redirect  string
}

// AuthService covers registration, both login flows, and logout.
type AuthService interface {
	RegisterStudent(ctx context.Context, req dto.RegisterRequest, imageRef *string) (*models.Student, error)
	LoginStudent(ctx context.Context, studentCode, rawSecret string) (*LoginResult, error)
	LoginAdmin(ctx context.Context, username, rawSecret string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

// StudentService covers the admin-side student operations and the student's
// own info view.
type StudentService interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) error
	Delete(ctx context.Context, id int64) error
	ResetPassword(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, newPassword string) error
	ReplacePhoto(ctx context.Context, id int64, ref string) error
}

// DepartmentService covers department management and the public list.
type DepartmentService interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

// AnnouncementService covers announcement management and the student feed.
type AnnouncementService interface {
	Create(ctx context.Context, req dto.CreateAnnouncementRequest, imageRef *string) (*models.Announcement, error)
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Announcement, error)
	GetForStudent(ctx context.Context, studentID int64) ([]*models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// StatsService computes the dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*dto.DashboardStats, error)
	Public(ctx context.Context) (*dto.PublicStats, error)
}
