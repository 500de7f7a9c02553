package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"laundry-booking-backend/internal/slotcal"
)

// Machine occupancy for "now", derived from the slot containing the current
// hour. A machine with an open fault report is surfaced as faulty before its
// occupancy is considered at all.
const (
	machineAvailable = "available"
	machineInUse     = "in-use"
	machineFaulty    = "faulty"
)

type machineStatusResponse struct {
	slotcal.Machine
	Status      string `json:"status"`
	CurrentSlot string `json:"currentSlot"`
	BookableNow bool   `json:"bookableNow"`
}

// GetMachines handles GET /api/machines: the roster with each machine's
// derived occupancy status for the current slot.
func (h *Handler) GetMachines(c *gin.Context) {
	now := time.Now()
	today := h.cal.Today(now)
	currentSlot := h.cal.CurrentSlot(now)

	reservations, err := h.reservations.ListForDate(c.Request.Context(), today)
	if err != nil {
		abortEngineError(c, err)
		return
	}
	openReports, err := h.reports.OpenByMachine(c.Request.Context())
	if err != nil {
		abortEngineError(c, err)
		return
	}

	machines := h.cal.Machines()
	response := make([]machineStatusResponse, 0, len(machines))
	for _, m := range machines {
		slotID := slotcal.SlotID(today, currentSlot, m.ID)
		_, occupied := reservations[slotID]

		status := machineAvailable
		switch {
		case len(openReports[m.ID]) > 0:
			status = machineFaulty
		case occupied:
			status = machineInUse
		}

		response = append(response, machineStatusResponse{
			Machine:     m,
			Status:      status,
			CurrentSlot: currentSlot,
			BookableNow: status == machineAvailable && !occupied && h.cal.CanBookLate(now, today, currentSlot),
		})
	}
	c.JSON(http.StatusOK, response)
}
