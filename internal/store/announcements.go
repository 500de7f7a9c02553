package store

import (
	"context"
	"fmt"

	"laundry-booking-backend/internal/model"
)

// Announcements returns the newest announcements first, capped at limit.
func (s *gormStore) Announcements(ctx context.Context, limit int) ([]model.Announcement, error) {
	var out []model.Announcement
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return out, nil
}

// CreateAnnouncement stores a new building notice.
func (s *gormStore) CreateAnnouncement(ctx context.Context, a *model.Announcement) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}
