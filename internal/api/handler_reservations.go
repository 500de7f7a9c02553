package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/mw"
)

type createReservationRequest struct {
	Date      string `json:"date"`
	TimeRange string `json:"timeRange"`
	MachineID string `json:"machineId"`
}

// CreateReservation handles POST /api/reservations.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	r, err := h.reservations.Create(c.Request.Context(), mw.Identity(c), req.Date, req.TimeRange, req.MachineID)
	if err != nil {
		abortEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"reservation": r,
		"slotId":      r.SlotID,
	})
}

// CancelReservation handles DELETE /api/reservations/:slotId.
func (h *Handler) CancelReservation(c *gin.Context) {
	slotID := c.Param("slotId")
	if err := h.reservations.Cancel(c.Request.Context(), mw.Identity(c), slotID); err != nil {
		abortEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CompleteReservation handles POST /api/reservations/:slotId/complete.
func (h *Handler) CompleteReservation(c *gin.Context) {
	slotID := c.Param("slotId")
	r, err := h.reservations.Complete(c.Request.Context(), mw.Identity(c), slotID)
	if err != nil {
		abortEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": r})
}

// GetReservations handles GET /api/reservations?date=YYYY-MM-DD. The
// response maps slot identifiers to reservations for grid rendering.
func (h *Handler) GetReservations(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	reservations, err := h.reservations.ListForDate(c.Request.Context(), date)
	if err != nil {
		abortEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}
