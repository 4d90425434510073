// Package routes wires the HTTP surface: the public auth group, the
// student-gated portal group, and the admin-gated management group.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/controllers"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/session"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	Auth          *controllers.AuthController
	StudentPortal *controllers.StudentPortalController
	Students      *controllers.StudentController
	Departments   *controllers.DepartmentController
	Announcements *controllers.AnnouncementController
	Stats         *controllers.StatsController
}

// Register attaches every route group to the engine.
func Register(router *gin.Engine, ctrl Controllers, sessions *middleware.SessionMiddleware) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login/student", ctrl.Auth.LoginStudent)
		auth.POST("/login/admin", ctrl.Auth.LoginAdmin)
		auth.POST("/logout", ctrl.Auth.Logout)
		auth.GET("/departments", ctrl.Auth.GetDepartments)
		auth.GET("/public-stats", ctrl.Auth.GetPublicStats)
	}

	student := api.Group("/student")
	student.Use(sessions.RequireRole(session.RoleStudent))
	{
		student.GET("/info", ctrl.StudentPortal.Info)
		student.GET("/announcements", ctrl.StudentPortal.Announcements)
	}

	admin := api.Group("/admin")
	admin.Use(sessions.RequireRole(session.RoleAdmin))
	{
		admin.GET("/students", ctrl.Students.GetAll)
		admin.POST("/students", ctrl.Students.Create)
		admin.GET("/students/:id", ctrl.Students.GetByID)
		admin.PUT("/students/:id", ctrl.Students.Update)
		admin.DELETE("/students/:id", ctrl.Students.Delete)
		admin.POST("/students/:id/reset-password", ctrl.Students.ResetPassword)
		admin.POST("/students/:id/change-password", ctrl.Students.ChangePassword)
		admin.POST("/students/:id/upload-image", ctrl.Students.UploadImage)

		admin.GET("/departments", ctrl.Departments.GetAll)
		admin.POST("/departments", ctrl.Departments.Create)
		admin.DELETE("/departments/:id", ctrl.Departments.Delete)

		admin.GET("/announcements", ctrl.Announcements.GetAll)
		admin.POST("/announcements", ctrl.Announcements.Create)
		admin.DELETE("/announcements/:id", ctrl.Announcements.Delete)

		admin.GET("/stats", ctrl.Stats.Dashboard)
	}
}
