package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/models/dto"
	"github.com/tharatepjaiya-creator/Student-info1/internal/app/services"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
)

// DepartmentController serves the admin-side department endpoints.
type DepartmentController struct {
	departments services.DepartmentService
}

// NewDepartmentController creates the department controller.
func NewDepartmentController(departments services.DepartmentService) *DepartmentController {
	return &DepartmentController{departments: departments}
}

// GetAll handles GET /api/admin/departments.
func (dc *DepartmentController) GetAll(c *gin.Context) {
	departments, err := dc.departments.GetAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// Create handles POST /api/admin/departments.
func (dc *DepartmentController) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	department, err := dc.departments.Create(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "department created", ID: department.ID})
}

// Delete handles DELETE /api/admin/departments/:id. Students and
// announcements pointing at the department are left as they are.
func (dc *DepartmentController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := dc.departments.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "department deleted"})
}
