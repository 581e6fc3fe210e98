package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pdatalab/tripmatch-backend-go/internal/models"
	"github.com/pdatalab/tripmatch-backend-go/internal/service"
	"github.com/pdatalab/tripmatch-backend-go/pkg/response"
)

// ReconcileHandler handles reconciliation requests.
type ReconcileHandler struct {
	service *service.ReconcileService
}

// NewReconcileHandler creates a new reconcile handler.
func NewReconcileHandler(service *service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{service: service}
}

// Reconcile handles POST /api/v1/datasets/:id/reconcile. An empty body
// runs the default priority order.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	var req models.ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "invalid request body")
			return
		}
	}

	result, err := h.service.Reconcile(c.Param("id"), req)
	if err != nil {
		code, msg := statusFor(err)
		response.Error(c, code, msg)
		return
	}
	response.Success(c, result)
}
