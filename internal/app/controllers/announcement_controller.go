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

// AnnouncementController serves the admin-side announcement endpoints.
type AnnouncementController struct {
	announcements services.AnnouncementService
	storage       filestorage.Storage
}

// NewAnnouncementController creates the announcement controller.
func NewAnnouncementController(
	announcements services.AnnouncementService,
	storage filestorage.Storage,
) *AnnouncementController {
	return &AnnouncementController{announcements: announcements, storage: storage}
}

// GetAll handles GET /api/admin/announcements, optionally filtered with
// ?department_id=N.
func (ac *AnnouncementController) GetAll(c *gin.Context) {
	var departmentID *int64
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.ErrBadRequest)
			return
		}
		departmentID = &id
	}

	announcements, err := ac.announcements.GetAll(c.Request.Context(), departmentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// Create handles POST /api/admin/announcements. The body is a multipart form
// with an optional image.
func (ac *AnnouncementController) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var imageRef *string
	if fileHeader, err := c.FormFile(announcementImageField); err == nil {
		ref, err := ac.storage.Save(c.Request.Context(), fileHeader)
		if err != nil {
			middleware.HandleAPIError(c, err)
			return
		}
		imageRef = &ref
	}

	announcement, err := ac.announcements.Create(c.Request.Context(), req, imageRef)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "announcement created", ID: announcement.ID})
}

// Delete handles DELETE /api/admin/announcements/:id.
func (ac *AnnouncementController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ac.announcements.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "announcement deleted"})
}
