package handler

import (
	"github.com/civiclens/protest-backend-go/internal/models"
	"github.com/civiclens/protest-backend-go/internal/service"
	"github.com/civiclens/protest-backend-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the dashboard views
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// bindFilter parses the filter specification from query parameters. Every
// field is optional; missing fields apply no constraint.
func bindFilter(c *gin.Context) (models.EventFilter, bool) {
	var filter models.EventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return filter, false
	}
	return filter, true
}

// GetEvents handles GET /api/v1/dashboard/events
func (h *DashboardHandler) GetEvents(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	events, err := h.dashboardService.Events(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"total":  len(events),
		"events": events,
	})
}

// GetMap handles GET /api/v1/dashboard/map
func (h *DashboardHandler) GetMap(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	result, err := h.dashboardService.Map(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetTimeSeries handles GET /api/v1/dashboard/timeseries
func (h *DashboardHandler) GetTimeSeries(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	result, err := h.dashboardService.TimeSeries(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetKPIs handles GET /api/v1/dashboard/kpis
func (h *DashboardHandler) GetKPIs(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	kpis, err := h.dashboardService.KPIs(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, kpis)
}

// GetLocationEvents handles GET /api/v1/dashboard/locations/:label
func (h *DashboardHandler) GetLocationEvents(c *gin.Context) {
	label := c.Param("label")
	if label == "" {
		response.BadRequest(c, "Missing location label")
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	events, err := h.dashboardService.LocationEvents(filter, label)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if len(events) == 0 {
		response.NotFound(c, "No events found for this location")
		return
	}

	response.Success(c, events)
}

// GetMeta handles GET /api/v1/dashboard/meta
func (h *DashboardHandler) GetMeta(c *gin.Context) {
	response.Success(c, h.dashboardService.Meta())
}
