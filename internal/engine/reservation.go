package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry-booking-backend/internal/model"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
)

// ReservationEngine validates and executes the reservation lifecycle against
// the store. It holds no state of its own: every operation is an independent
// request-response unit of work.
type ReservationEngine struct {
	store store.Store
	cal   *slotcal.Calendar
}

// NewReservationEngine wires the engine to its store and calendar.
func NewReservationEngine(s store.Store, cal *slotcal.Calendar) *ReservationEngine {
	return &ReservationEngine{store: s, cal: cal}
}

// Create books a slot for the requester. The slot identifier's atomic
// create-if-absent write is the sole concurrency control: of two concurrent
// calls for the same slot exactly one succeeds and the other gets
// ErrSlotTaken with no partial state change.
func (e *ReservationEngine) Create(ctx context.Context, id Identity, date, timeRange, machineID string) (*model.Reservation, error) {
	if !id.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if date == "" {
		return nil, &ValidationError{Reason: "date is required"}
	}
	if timeRange == "" {
		return nil, &ValidationError{Reason: "timeRange is required"}
	}
	if machineID == "" {
		return nil, &ValidationError{Reason: "machineId is required"}
	}
	slotID, err := e.cal.ValidateSlot(date, timeRange, machineID)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	profile, err := e.store.GetProfile(ctx, id.UID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProfileIncomplete
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	r := &model.Reservation{
		SlotID:    slotID,
		Date:      date,
		TimeRange: timeRange,
		MachineID: machineID,
		OwnerID:   id.UID,
		// Name snapshot at booking time, never refreshed afterwards.
		OwnerDisplayName: profile.DisplayName,
		Status:           model.StatusConfirmed,
		CreatedAt:        time.Now().UTC(),
	}
	if err := e.store.CreateReservation(ctx, r); err != nil {
		if errors.Is(err, store.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return r, nil
}

// Cancel deletes the requester's reservation. Finalized reservations are
// kept as a usage record and cannot be cancelled.
func (e *ReservationEngine) Cancel(ctx context.Context, id Identity, slotID string) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	if slotID == "" {
		return &ValidationError{Reason: "slotId is required"}
	}
	err := e.store.RemoveReservation(ctx, slotID, func(r *model.Reservation) error {
		if r.OwnerID != id.UID {
			return ErrForbidden
		}
		if r.Status == model.StatusFinalized {
			return ErrAlreadyFinalized
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Complete marks the requester's reservation finalized, meaning the machine
// has been released after use. The record is retained, not deleted.
// Completing an already finalized reservation is a no-op.
func (e *ReservationEngine) Complete(ctx context.Context, id Identity, slotID string) (*model.Reservation, error) {
	if !id.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if slotID == "" {
		return nil, &ValidationError{Reason: "slotId is required"}
	}
	r, err := e.store.MutateReservation(ctx, slotID, func(r *model.Reservation) error {
		if r.OwnerID != id.UID {
			return ErrForbidden
		}
		r.Status = model.StatusFinalized
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListForDate returns every reservation of a calendar day keyed by slot
// identifier. No authentication is required to read the grid.
func (e *ReservationEngine) ListForDate(ctx context.Context, date string) (map[string]model.Reservation, error) {
	if _, err := slotcal.ParseDate(date, e.cal.Location()); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	list, err := e.store.ReservationsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Reservation, len(list))
	for _, r := range list {
		out[r.SlotID] = r
	}
	return out, nil
}

// ExpiredToday returns today's confirmed reservations whose slot end hour
// has already passed, the candidates for an owner self-release reminder.
func (e *ReservationEngine) ExpiredToday(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	today := e.cal.Today(now)
	list, err := e.store.ReservationsByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	hour := now.In(e.cal.Location()).Hour()
	var out []model.Reservation
	for _, r := range list {
		if r.Status != model.StatusConfirmed {
			continue
		}
		_, endHour, err := slotcal.SlotBounds(r.TimeRange)
		if err != nil {
			continue
		}
		if hour >= endHour {
			out = append(out, r)
		}
	}
	return out, nil
}
