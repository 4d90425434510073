package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/services"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
)

// StudentPortalController serves the student-facing endpoints behind the
// student session gate: their own record and their announcement feed.
type StudentPortalController struct {
	students      services.StudentService
	announcements services.AnnouncementService
}

// NewStudentPortalController creates the student portal controller.
func NewStudentPortalController(
	students services.StudentService,
	announcements services.AnnouncementService,
) *StudentPortalController {
	return &StudentPortalController{students: students, announcements: announcements}
}

// Info handles GET /api/student/info. The student id comes from the session,
// never from the request, so a student can only read their own record.
func (pc *StudentPortalController) Info(c *gin.Context) {
	payload, ok := middleware.PayloadFrom(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	student, err := pc.students.GetByID(c.Request.Context(), payload.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// Announcements handles GET /api/student/announcements: global announcements
// plus the ones for the student's department, newest first.
func (pc *StudentPortalController) Announcements(c *gin.Context) {
	payload, ok := middleware.PayloadFrom(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	feed, err := pc.announcements.GetForStudent(c.Request.Context(), payload.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}
