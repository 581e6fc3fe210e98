package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/service"
	"github.com/pdatalab/tripmatch-backend-go/pkg/response"
)

// ExportHandler handles result downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(service *service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /api/v1/datasets/:id/export. Query parameters:
// kind (reconciled|audit|fusion, default reconciled), format (csv|xlsx,
// default csv), priority (comma-separated labels) and p0_priority.
func (h *ExportHandler) Export(c *gin.Context) {
	id := c.Param("id")
	kind := c.DefaultQuery("kind", service.KindReconciled)
	format := c.DefaultQuery("format", service.FormatCSV)

	contentType, err := service.ContentType(format)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	req := models.ReconcileRequest{
		P0Priority: c.Query("p0_priority") == "true",
	}
	if p := c.Query("priority"); p != "" {
		req.Priority = strings.Split(p, ",")
	}

	// Buffer the file so errors can still produce a JSON response.
	var buf bytes.Buffer
	if err := h.service.Export(id, kind, format, req, &buf); err != nil {
		code, msg := statusFor(err)
		response.Error(c, code, msg)
		return
	}

	filename := fmt.Sprintf("%s-%s.%s", id, kind, format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
