package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pdatalab/tripmatch-backend-go/internal/service"
	"github.com/pdatalab/tripmatch-backend-go/pkg/response"
)

// AuditHandler handles endpoint-audit requests.
type AuditHandler struct {
	service *service.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(service *service.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

// Audit handles POST /api/v1/datasets/:id/audit.
func (h *AuditHandler) Audit(c *gin.Context) {
	result, err := h.service.Audit(c.Param("id"))
	if err != nil {
		code, msg := statusFor(err)
		response.Error(c, code, msg)
		return
	}
	response.Success(c, result)
}
