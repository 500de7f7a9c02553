package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/mw"
)

type createReportRequest struct {
	MachineID   string `json:"machineId"`
	Description string `json:"description"`
}

// CreateReport handles POST /api/reports.
func (h *Handler) CreateReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	r, err := h.reports.Create(c.Request.Context(), mw.Identity(c), req.MachineID, req.Description)
	if err != nil {
		abortEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reportId": r.ID})
}

// ResolveReport handles POST /api/reports/:id/resolve. Restricted to admin
// identities at the engine level.
func (h *Handler) ResolveReport(c *gin.Context) {
	if err := h.reports.Resolve(c.Request.Context(), mw.Identity(c), c.Param("id")); err != nil {
		abortEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetOpenReports handles GET /api/reports: unresolved reports grouped by
// machine in creation order.
func (h *Handler) GetOpenReports(c *gin.Context) {
	reports, err := h.reports.OpenByMachine(c.Request.Context())
	if err != nil {
		abortEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
