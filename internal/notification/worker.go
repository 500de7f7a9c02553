package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"laundry-booking-backend/internal/model"
	"laundry-booking-backend/internal/slotcal"
)

// Sender defines the interface for sending a web push notification.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of Sender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers delivering slot-expiry reminders.
// Jobs are slot identifiers of confirmed reservations whose range has ended;
// the owner is asked to retrieve their laundry and release the machine.
type WorkerPool struct {
	size    int
	jobs    chan string
	db      *gorm.DB
	cal     *slotcal.Calendar
	webpush *webpush.Options
	sender  Sender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, cal *slotcal.Calendar, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size),
		db:      db,
		cal:     cal,
		webpush: webpushOptions,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Notification worker %d started", id)
	for {
		select {
		case slotID := <-wp.jobs:
			wp.notifyOwner(ctx, slotID)
		case <-ctx.Done():
			log.Printf("Notification worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (wp *WorkerPool) Dispatch(slotID string) {
	wp.jobs <- slotID
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// notifyOwner looks up the reservation and pushes a reminder to every
// browser its owner registered.
func (wp *WorkerPool) notifyOwner(ctx context.Context, slotID string) {
	var r model.Reservation
	if err := wp.db.WithContext(ctx).First(&r, "slot_id = ?", slotID).Error; err != nil {
		// The owner may have completed or cancelled since the sweep.
		log.Printf("Skipping notification for %s: %v", slotID, err)
		return
	}
	if r.Status != model.StatusConfirmed {
		return
	}

	var subscriptions []model.PushSubscription
	err := wp.db.WithContext(ctx).
		Where("user_id = ?", r.OwnerID).
		Find(&subscriptions).Error
	if err != nil {
		log.Printf("Error fetching subscriptions for %s: %v", r.OwnerID, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	machineLabel := r.MachineID
	if m, ok := wp.cal.Machine(r.MachineID); ok {
		machineLabel = m.DisplayName
	}

	log.Printf("Sending %d reminders for slot %s", len(subscriptions), slotID)
	message := fmt.Sprintf("Tu turno en %s terminó. Por favor retirá tu ropa.", machineLabel)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions.
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
