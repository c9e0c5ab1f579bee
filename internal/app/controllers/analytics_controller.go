package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juko/registry/internal/app/services"
	"github.com/juko/registry/internal/middleware"
)

// AnalyticsController serves the aggregated analytics view
type AnalyticsController struct {
	analyticsService services.AnalyticsSource
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsSource) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetSummary computes the analytics summary over the full collection
// @Summary Analytics summary
// @Description Aggregate counts, average GWA, histograms and standing split, recomputed on every request
// @Tags analytics
// @Produce json
// @Success 200 {object} analytics.Summary "Analytics summary"
// @Failure 500 {object} dto.MessageResponse "Store unavailable"
// @Router /analytics [get]
func (c *AnalyticsController) GetSummary(ctx *gin.Context) {
	summary, err := c.analyticsService.Summary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
