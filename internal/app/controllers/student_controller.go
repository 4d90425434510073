package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/services"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/apperrors"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/filestorage"
)

// StudentController serves the admin-side student management endpoints.
type StudentController struct {
	students services.StudentService
	auth     services.AuthService
	storage  filestorage.Storage
}

// NewStudentController creates the student controller. Creation goes through
// the auth service so admin-created accounts get the same derived initial
// password as self-registered ones.
func NewStudentController(
	students services.StudentService,
	auth services.AuthService,
	storage filestorage.Storage,
) *StudentController {
	return &StudentController{students: students, auth: auth, storage: storage}
}

// GetAll handles GET /api/admin/students.
func (sc *StudentController) GetAll(c *gin.Context) {
	students, err := sc.students.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetByID handles GET /api/admin/students/:id.
func (sc *StudentController) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	student, err := sc.students.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// Create handles POST /api/admin/students. Accepts the same multipart form as
// public registration.
func (sc *StudentController) Create(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var imageRef *string
	if fileHeader, err := c.FormFile(studentImageField); err == nil {
		ref, err := sc.storage.Save(c.Request.Context(), fileHeader)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		imageRef = &ref
	}

	student, err := sc.auth.RegisterStudent(c.Request.Context(), req, imageRef)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "student created", ID: student.ID})
}

// Update handles PUT /api/admin/students/:id.
func (sc *StudentController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := sc.students.Update(c.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "student updated"})
}

// Delete handles DELETE /api/admin/students/:id.
func (sc *StudentController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := sc.students.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "student deleted"})
}

// ResetPassword handles POST /api/admin/students/:id/reset-password. The
// password goes back to the one derived from the birth date.
func (sc *StudentController) ResetPassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := sc.students.ResetPassword(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "password reset to default"})
}

// ChangePassword handles POST /api/admin/students/:id/change-password.
func (sc *StudentController) ChangePassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := sc.students.ChangePassword(c.Request.Context(), id, req.NewPassword); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "password changed"})
}

// UploadImage handles POST /api/admin/students/:id/upload-image. The new file
// is stored first; the record flips to it and the old file is cleaned up.
func (sc *StudentController) UploadImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile(studentImageField)
	if err != nil {
		middleware.HandleAPIError(c, apperrors.ErrStudentPhotoUpload)
		return
	}

	ref, err := sc.storage.Save(c.Request.Context(), fileHeader)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := sc.students.ReplacePhoto(c.Request.Context(), id, ref); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UploadImageResponse{Success: true, Message: "image updated", ImagePath: ref})
}

// pathID parses the :id path parameter, writing the 400 itself on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(c, apperrors.ErrBadRequest)
		return 0, false
	}
	return id, true
}
