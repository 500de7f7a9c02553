package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"laundry-booking-backend/config"
	"laundry-booking-backend/internal/engine"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	cfg          *config.Config
	store        store.Store
	cal          *slotcal.Calendar
	reservations *engine.ReservationEngine
	reports      *engine.ReportEngine
	webpush      *webpush.Options
}

// NewHandler creates a new API handler with its engines wired to the store.
func NewHandler(cfg *config.Config, s store.Store, cal *slotcal.Calendar, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		cfg:          cfg,
		store:        s,
		cal:          cal,
		reservations: engine.NewReservationEngine(s, cal),
		reports:      engine.NewReportEngine(s, cal),
		webpush:      webpushOptions,
	}
}
