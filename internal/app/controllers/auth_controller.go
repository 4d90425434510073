// Package controllers implements the HTTP handlers. Controllers bind and
// validate input, delegate to services, and translate errors through the
// middleware helpers. No business rules live here.
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/services"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/filestorage"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// Multipart field names used by the registration and upload forms.
const (
	studentImageField      = "student_image"
	announcementImageField = "image"
)

// AuthController serves the public endpoints: registration, both logins,
// logout, and the unauthenticated department list and stats the landing page
// needs.
type AuthController struct {
	auth        services.AuthService
	departments services.DepartmentService
	stats       services.StatsService
	storage     filestorage.Storage
	cookieName  string
	sessionTTL  time.Duration
}

// NewAuthController creates the auth controller.
func NewAuthController(
	auth services.AuthService,
	departments services.DepartmentService,
	stats services.StatsService,
	storage filestorage.Storage,
	cookieName string,
	sessionTTL time.Duration,
) *AuthController {
	return &AuthController{
		auth:        auth,
		departments: departments,
		stats:       stats,
		storage:     storage,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
	}
}

// Register handles POST /api/auth/register. The body is a multipart form with
// an optional student photo.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	imageRef, ok := ac.saveOptionalUpload(c, studentImageField)
	if !ok {
		return
	}

	student, err := ac.auth.RegisterStudent(c.Request.Context(), req, imageRef)
	if err != nil {
		// The photo was already stored; registration failed after, so drop it.
		if imageRef != nil {
			if derr := ac.storage.Delete(c.Request.Context(), *imageRef); derr != nil {
				logger.Warn().Err(derr).Str("ref", *imageRef).Msg("failed to remove orphaned upload")
			}
		}
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Success:     true,
		Message:     "registration complete",
		StudentCode: student.StudentCode,
	})
}

// LoginStudent handles POST /api/auth/login/student.
func (ac *AuthController) LoginStudent(c *gin.Context) {
	var req dto.StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	result, err := ac.auth.LoginStudent(c.Request.Context(), req.StudentCode, req.Password)
	if err != nil {
		middleware.HandleLoginError(c, err)
		return
	}
	ac.finishLogin(c, result)
}

// LoginAdmin handles POST /api/auth/login/admin.
func (ac *AuthController) LoginAdmin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	result, err := ac.auth.LoginAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		middleware.HandleLoginError(c, err)
		return
	}
	ac.finishLogin(c, result)
}

// Logout handles POST /api/auth/logout. It succeeds whether or not a session
// cookie was sent, and always clears the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	sid, _ := c.Cookie(ac.cookieName)
	if err := ac.auth.Logout(c.Request.Context(), sid); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.SetCookie(ac.cookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Redirect: services.LogoutRedirectPath})
}

// GetDepartments handles GET /api/auth/departments, the public list the
// registration form populates its dropdown from.
func (ac *AuthController) GetDepartments(c *gin.Context) {
	departments, err := ac.departments.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// GetPublicStats handles GET /api/auth/public-stats.
func (ac *AuthController) GetPublicStats(c *gin.Context) {
	stats, err := ac.stats.Public(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ac *AuthController) finishLogin(c *gin.Context, result *services.LoginResult) {
	c.SetCookie(ac.cookieName, result.SessionID, int(ac.sessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Redirect: result.Redirect})
}

// saveOptionalUpload stores the named multipart file if present. The bool is
// false when saving failed and the error response was already written.
func (ac *AuthController) saveOptionalUpload(c *gin.Context, field string) (*string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Absent file is fine; the field is optional.
		return nil, true
	}

	ref, err := ac.storage.Save(c.Request.Context(), fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return nil, false
	}
	return &ref, true
}
