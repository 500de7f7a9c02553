package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"laundry-booking-backend/internal/model"
	"laundry-booking-backend/internal/slotcal"
	"laundry-booking-backend/internal/store"
)

// ReportEngine validates and executes the machine fault report workflow.
type ReportEngine struct {
	store store.Store
	cal   *slotcal.Calendar
}

// NewReportEngine wires the engine to its store and calendar.
func NewReportEngine(s store.Store, cal *slotcal.Calendar) *ReportEngine {
	return &ReportEngine{store: s, cal: cal}
}

// Create files a fault report for a machine. Requires a complete tenant
// profile; the reporter name is snapshotted like a reservation owner's.
func (e *ReportEngine) Create(ctx context.Context, id Identity, machineID, description string) (*model.Report, error) {
	if !id.Authenticated() {
		return nil, ErrUnauthenticated
	}
	if _, ok := e.cal.Machine(machineID); !ok {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown machine %q", machineID)}
	}
	if strings.TrimSpace(description) == "" {
		return nil, &ValidationError{Reason: "description is required"}
	}

	profile, err := e.store.GetProfile(ctx, id.UID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProfileIncomplete
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	r := &model.Report{
		ID:                  uuid.NewString(),
		MachineID:           machineID,
		Description:         description,
		Resolved:            false,
		ReporterID:          id.UID,
		ReporterDisplayName: profile.DisplayName,
		CreatedAt:           time.Now().UTC(),
	}
	if err := e.store.CreateReport(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve marks a report resolved. Restricted to admin identities: the
// building manager closes reports, not arbitrary tenants.
func (e *ReportEngine) Resolve(ctx context.Context, id Identity, reportID string) error {
	if !id.Authenticated() {
		return ErrUnauthenticated
	}
	if !id.Admin {
		return ErrForbidden
	}
	if reportID == "" {
		return &ValidationError{Reason: "reportId is required"}
	}
	err := e.store.ResolveReport(ctx, reportID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// OpenByMachine groups unresolved reports by machine in creation order.
func (e *ReportEngine) OpenByMachine(ctx context.Context) (map[string][]model.Report, error) {
	list, err := e.store.OpenReports(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]model.Report)
	for _, r := range list {
		out[r.MachineID] = append(out[r.MachineID], r)
	}
	return out, nil
}
