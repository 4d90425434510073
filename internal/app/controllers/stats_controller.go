package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tharatepjaiya-creator/Student-info1/internal/app/services"
	"github.com/tharatepjaiya-creator/Student-info1/internal/middleware"
)

// StatsController serves the admin dashboard aggregates.
type StatsController struct {
	stats services.StatsService
}

// NewStatsController creates the stats controller.
func NewStatsController(stats services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Dashboard handles GET /api/admin/stats.
func (sc *StatsController) Dashboard(c *gin.Context) {
	stats, err := sc.stats.Dashboard(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
