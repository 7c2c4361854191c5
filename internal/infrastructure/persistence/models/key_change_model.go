package models

import (
	"time"

	"github.com/sealkit/sqlseal/internal/domain/encryption"
)

// KeyChangeModel is the GORM database model for key-change audit events
// (infrastructure concern)
type KeyChangeModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DatabaseID      string    `gorm:"not null;index;type:uuid"`
	DatabaseLabel   string    `gorm:"type:varchar(255)"`
	Operation       string    `gorm:"not null;type:varchar(16)"`
	Status          int       `gorm:"type:integer"`
	DateTimeApplied time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyChangeModel) TableName() string {
	return "key_changes"
}

// ToDomain converts GORM model to domain entity
func (m *KeyChangeModel) ToDomain() *encryption.KeyChangeEvent {
	return &encryption.KeyChangeEvent{
		ID:              m.ID,
		DatabaseID:      m.DatabaseID,
		DatabaseLabel:   m.DatabaseLabel,
		Operation:       m.Operation,
		Status:          m.Status,
		DateTimeApplied: m.DateTimeApplied,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyChangeModel) FromDomain(e *encryption.KeyChangeEvent) {
	m.ID = e.ID
	m.DatabaseID = e.DatabaseID
	m.DatabaseLabel = e.DatabaseLabel
	m.Operation = e.Operation
	m.Status = e.Status
	m.DateTimeApplied = e.DateTimeApplied
}
