package models

import "time"

// Record is one stored inventory object of any kind.
// Kind, ScopeID and Key form the natural key; ScopeID is the site id for
// kinds unique per site and 0 otherwise.
type Record struct {
	ID        uint      `gorm:"primaryKey"`
	Kind      string    `gorm:"size:32;not null;uniqueIndex:idx_sandbox_records_natural_key"`
	ScopeID   uint      `gorm:"not null;default:0;uniqueIndex:idx_sandbox_records_natural_key"`
	Key       string    `gorm:"size:191;not null;uniqueIndex:idx_sandbox_records_natural_key"`
	Data      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name used by Record to `sandbox_records`.
func (Record) TableName() string {
	return "sandbox_records"
}
