package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"laundry-booking-backend/internal/model"
)

// GetProfile fetches the tenant profile for a verified identity.
func (s *gormStore) GetProfile(ctx context.Context, uid string) (*model.UserProfile, error) {
	var p model.UserProfile
	err := s.db.WithContext(ctx).First(&p, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", uid, err)
	}
	return &p, nil
}

// PutProfile creates or replaces the tenant profile.
func (s *gormStore) PutProfile(ctx context.Context, p *model.UserProfile) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "apartment", "updated_at"}),
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.UID, err)
	}
	return nil
}
