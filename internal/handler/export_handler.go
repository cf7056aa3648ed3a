package handler

import (
	"bytes"
	"net/http"

	"github.com/civiclens/protest-backend-go/internal/service"
	"github.com/civiclens/protest-backend-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles CSV download requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// Download handles GET /api/v1/dashboard/export?scope=filtered|full
func (h *ExportHandler) Download(c *gin.Context) {
	scope := c.DefaultQuery("scope", "filtered")
	if scope != "filtered" && scope != "full" {
		response.BadRequest(c, "Invalid scope parameter, expected filtered or full")
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(&buf, filter, scope == "full"); err != nil {
		response.InternalError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="protest_data.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
