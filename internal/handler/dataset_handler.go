package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdatalab/tripmatch-backend-go/internal/service"
	"github.com/pdatalab/tripmatch-backend-go/internal/store"
	"github.com/pdatalab/tripmatch-backend-go/pkg/response"
)

// DatasetHandler handles dataset upload and registry requests.
type DatasetHandler struct {
	service *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(service *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// Upload handles POST /api/v1/datasets. The body is a multipart form
// with the zip archive under the "file" field.
func (h *DatasetHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file upload")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, "failed to open upload")
		return
	}
	defer f.Close()

	d, err := h.service.Ingest(f, fh.Size, fh.Filename)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Created(c, service.Meta(d))
}

// List handles GET /api/v1/datasets.
func (h *DatasetHandler) List(c *gin.Context) {
	response.Success(c, h.service.List())
}

// Get handles GET /api/v1/datasets/:id.
func (h *DatasetHandler) Get(c *gin.Context) {
	d, err := h.service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "dataset not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, service.Meta(d))
}

// Delete handles DELETE /api/v1/datasets/:id.
func (h *DatasetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.NotFound(c, "dataset not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": c.Param("id")})
}

// statusFor maps service errors to HTTP responses shared by the result
// handlers.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "dataset not found"
	case errors.Is(err, service.ErrInvalidPriority), errors.Is(err, service.ErrInvalidExport):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}
