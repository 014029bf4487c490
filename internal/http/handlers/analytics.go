package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portside/vesselwatch-backend/internal/http/response"
	"github.com/portside/vesselwatch-backend/internal/platform/logger"
	"github.com/portside/vesselwatch-backend/internal/services"
)

// AnalyticsHandler serves the two reconciliation read endpoints. The
// service hands back pre-serialized JSON so cached and freshly computed
// responses are byte-identical.
type AnalyticsHandler struct {
	log              *logger.Logger
	reconcileService services.ReconcileService
}

func NewAnalyticsHandler(log *logger.Logger, reconcileService services.ReconcileService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log.With("handler", "AnalyticsHandler"),
		reconcileService: reconcileService,
	}
}

func (h *AnalyticsHandler) GetConflicts(c *gin.Context) {
	raw, err := h.reconcileService.ConflictReport(c.Request.Context())
	if err != nil {
		h.log.Error("GetConflicts failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "conflict_report_failed", err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

func (h *AnalyticsHandler) GetAggregatedVessels(c *gin.Context) {
	raw, err := h.reconcileService.AggregationReport(c.Request.Context())
	if err != nil {
		h.log.Error("GetAggregatedVessels failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "aggregation_report_failed", err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
