package model

import "time"

// Announcement is a building notice shown on the landing page.
type Announcement struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:256;not null" json:"title"`
	Body      string    `gorm:"size:4096;not null" json:"body"`
	CreatedAt time.Time `gorm:"index;not null" json:"createdAt"`
}
