package model

import "time"

// UserProfile holds the tenant data required before booking or reporting.
// The UID comes from the gateway's verified identity.
type UserProfile struct {
	UID         string    `gorm:"primaryKey;size:128" json:"-"`
	DisplayName string    `gorm:"size:256;not null" json:"displayName"`
	Apartment   string    `gorm:"size:32;not null" json:"apartment"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
