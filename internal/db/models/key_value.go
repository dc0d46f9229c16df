// Package models contains database model definitions.
package models

import "time"

// KeyValue is one entry of the flat key-value store when it is kept in a
// SQL database.
type KeyValue struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191;not null"`
	Value     []byte
	UpdatedAt time.Time
}
