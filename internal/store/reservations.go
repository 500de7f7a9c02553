package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"laundry-booking-backend/internal/model"
)

// CreateReservation inserts a reservation if and only if its slot has no
// record yet. The insert and the existence check are one atomic statement
// (INSERT ... ON CONFLICT DO NOTHING on the slot primary key), so two
// concurrent callers can never both succeed: the loser sees zero affected
// rows and gets ErrSlotTaken.
func (s *gormStore) CreateReservation(ctx context.Context, r *model.Reservation) error {
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(r)
	if res.Error != nil {
		return fmt.Errorf("failed to create reservation %s: %w", r.SlotID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSlotTaken
	}
	return nil
}

// GetReservation fetches a single reservation by its slot identifier.
func (s *gormStore) GetReservation(ctx context.Context, slotID string) (*model.Reservation, error) {
	var r model.Reservation
	err := s.db.WithContext(ctx).First(&r, "slot_id = ?", slotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation %s: %w", slotID, err)
	}
	return &r, nil
}

// ReservationsByDate returns all reservations for one calendar day.
func (s *gormStore) ReservationsByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := s.db.WithContext(ctx).Where("date = ?", date).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations for %s: %w", date, err)
	}
	return out, nil
}

// RemoveReservation deletes a reservation after the check callback accepts
// the current record. The read and the delete run in one transaction so a
// concurrent complete cannot slip between them.
func (s *gormStore) RemoveReservation(ctx context.Context, slotID string, check func(*model.Reservation) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r model.Reservation
		err := tx.First(&r, "slot_id = ?", slotID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read reservation %s: %w", slotID, err)
		}
		if err := check(&r); err != nil {
			return err
		}
		if err := tx.Delete(&model.Reservation{}, "slot_id = ?", slotID).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %s: %w", slotID, err)
		}
		return nil
	})
}

// MutateReservation applies the mutate callback to the stored record and
// saves the result, all inside one transaction. The callback may reject the
// mutation by returning an error, which rolls everything back.
func (s *gormStore) MutateReservation(ctx context.Context, slotID string, mutate func(*model.Reservation) error) (*model.Reservation, error) {
	var r model.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&r, "slot_id = ?", slotID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read reservation %s: %w", slotID, err)
		}
		if err := mutate(&r); err != nil {
			return err
		}
		if err := tx.Save(&r).Error; err != nil {
			return fmt.Errorf("failed to update reservation %s: %w", slotID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}
