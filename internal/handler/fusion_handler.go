package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pdatalab/tripmatch-backend-go/internal/service"
	"github.com/pdatalab/tripmatch-backend-go/pkg/response"
)

// FusionHandler handles overlap-join requests.
type FusionHandler struct {
	service *service.FusionService
}

// NewFusionHandler creates a new fusion handler.
func NewFusionHandler(service *service.FusionService) *FusionHandler {
	return &FusionHandler{service: service}
}

// Fusion handles POST /api/v1/datasets/:id/fusion.
func (h *FusionHandler) Fusion(c *gin.Context) {
	result, err := h.service.Fusion(c.Param("id"))
	if err != nil {
		code, msg := statusFor(err)
		response.Error(c, code, msg)
		return
	}
	response.Success(c, result)
}
