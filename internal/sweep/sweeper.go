// Package sweep watches today's grid for confirmed reservations whose time
// range has ended and nudges their owners to release the machine.
package sweep

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"laundry-booking-backend/config"
	"laundry-booking-backend/internal/engine"
	"laundry-booking-backend/internal/notification"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
)

// Service runs the periodic expired-slot sweep and owns the notification
// worker pool it feeds.
type Service struct {
	cfg          *config.Config
	cal          *slotcal.Calendar
	reservations *engine.ReservationEngine
	pool         *notification.WorkerPool

	// notified tracks slot IDs already dispatched so an owner is only
	// reminded once per slot. Keys from previous days are pruned each sweep.
	notified map[string]bool
}

// NewService creates and initializes the sweeper.
func NewService(cfg *config.Config, s store.Store, cal *slotcal.Calendar) *Service {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	return &Service{
		cfg:          cfg,
		cal:          cal,
		reservations: engine.NewReservationEngine(s, cal),
		pool:         notification.NewWorkerPool(cfg.WorkerPool.Size, s.DB(), cal, &webpushOptions),
		notified:     make(map[string]bool),
	}
}

// Pool exposes the worker pool for testing.
func (s *Service) Pool() *notification.WorkerPool {
	return s.pool
}

// Run starts the sweeping process in a loop.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Sweeper.Enabled || !s.cfg.Push.Enabled {
		log.Println("Sweeper is disabled. Not starting.")
		return
	}
	log.Println("Starting sweeper service...")

	s.pool.Start(ctx)
	s.SweepOnce(ctx)

	timer := time.NewTimer(s.cfg.Sweeper.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Sweeper service shutting down.")
			return
		case <-timer.C:
			s.SweepOnce(ctx)
			timer.Reset(s.cfg.Sweeper.Interval)
		}
	}
}

// SweepOnce performs a single sweep and dispatches reminders for newly
// expired reservations.
func (s *Service) SweepOnce(ctx context.Context) {
	s.sweepAt(ctx, time.Now())
}

func (s *Service) sweepAt(ctx context.Context, now time.Time) {
	s.pruneNotified(now)

	expired, err := s.reservations.ExpiredToday(ctx, now)
	if err != nil {
		log.Printf("Error sweeping expired reservations: %v", err)
		return
	}

	for _, r := range expired {
		if s.notified[r.SlotID] {
			continue
		}
		s.notified[r.SlotID] = true
		s.pool.Dispatch(r.SlotID)
	}
}

// pruneNotified drops bookkeeping for slots from previous days.
func (s *Service) pruneNotified(now time.Time) {
	prefix := s.cal.Today(now) + "_"
	for slotID := range s.notified {
		if !strings.HasPrefix(slotID, prefix) {
			delete(s.notified, slotID)
		}
	}
}
