package model

import "time"

// Report is a machine fault report filed by a tenant. Reports are append-only:
// resolving one flips the flag, nothing is ever deleted.
type Report struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	MachineID           string    `gorm:"index;size:64;not null" json:"machineId"`
	Description         string    `gorm:"size:1024;not null" json:"description"`
	Resolved            bool      `gorm:"index;not null" json:"resolved"`
	ReporterID          string    `gorm:"size:128;not null" json:"reporterId"`
	ReporterDisplayName string    `gorm:"size:256;not null" json:"reporterDisplayName"`
	CreatedAt           time.Time `gorm:"not null" json:"createdAt"`
}
