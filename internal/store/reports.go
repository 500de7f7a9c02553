package store

import (
	"context"
	"fmt"

	"laundry-booking-backend/internal/model"
)

// CreateReport appends a new fault report. Reports carry no uniqueness
// constraint: several open reports may exist for the same machine.
func (s *gormStore) CreateReport(ctx context.Context, r *model.Report) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create report for machine %s: %w", r.MachineID, err)
	}
	return nil
}

// ResolveReport marks a report resolved. Resolving an already resolved
// report is a no-op with success; a missing report is ErrNotFound.
func (s *gormStore) ResolveReport(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("id = ?", id).
		Update("resolved", true)
	if res.Error != nil {
		return fmt.Errorf("failed to resolve report %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// OpenReports returns all unresolved reports in creation order.
func (s *gormStore) OpenReports(ctx context.Context) ([]model.Report, error) {
	var out []model.Report
	err := s.db.WithContext(ctx).
		Where("resolved = ?", false).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list open reports: %w", err)
	}
	return out, nil
}
