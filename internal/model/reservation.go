package model

import "time"

// Reservation statuses. A reservation is created as confirmed and either
// deleted by a cancel or moved to finalized when the owner releases the
// machine. Finalized records are retained so the slot renders as released
// instead of becoming bookable again within the same day.
const (
	StatusConfirmed = "confirmed"
	StatusFinalized = "finalized"
)

// Reservation is a booked (date, time range, machine) slot. The slot
// identifier doubles as the primary key and the concurrency-control token:
// at most one row can ever exist per slot.
type Reservation struct {
	SlotID    string `gorm:"primaryKey;size:128" json:"slotId"`
	Date      string `gorm:"index;size:10;not null" json:"date"`
	TimeRange string `gorm:"size:16;not null" json:"timeRange"`
	MachineID string `gorm:"size:64;not null" json:"machineId"`
	OwnerID   string `gorm:"index;size:128;not null" json:"ownerId"`
	// OwnerDisplayName is a snapshot of the profile name at booking time.
	// It is intentionally never refreshed.
	OwnerDisplayName string    `gorm:"size:256;not null" json:"ownerDisplayName"`
	Status           string    `gorm:"size:16;not null" json:"status"`
	CreatedAt        time.Time `gorm:"not null" json:"createdAt"`
}
