package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"laundry-booking-backend/internal/model"
)

// Store-level failures the engines translate into their own taxonomy.
var (
	// ErrSlotTaken is returned when a reservation insert loses the
	// create-if-absent race for its slot.
	ErrSlotTaken = errors.New("slot already reserved")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Reservations.
	CreateReservation(ctx context.Context, r *model.Reservation) error
	GetReservation(ctx context.Context, slotID string) (*model.Reservation, error)
	ReservationsByDate(ctx context.Context, date string) ([]model.Reservation, error)
	RemoveReservation(ctx context.Context, slotID string, check func(*model.Reservation) error) error
	MutateReservation(ctx context.Context, slotID string, mutate func(*model.Reservation) error) (*model.Reservation, error)

	// User profiles.
	GetProfile(ctx context.Context, uid string) (*model.UserProfile, error)
	PutProfile(ctx context.Context, p *model.UserProfile) error

	// Fault reports.
	CreateReport(ctx context.Context, r *model.Report) error
	ResolveReport(ctx context.Context, id string) error
	OpenReports(ctx context.Context) ([]model.Report, error)

	// Announcements.
	Announcements(ctx context.Context, limit int) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *model.Announcement) error

	// Push subscriptions.
	UpsertSubscription(ctx context.Context, s *model.PushSubscription) error
	GetSubscription(ctx context.Context, endpoint string) (*model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
	SubscriptionsForUser(ctx context.Context, uid string) ([]model.PushSubscription, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for callers that need raw access,
// such as the notification worker pool.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}
