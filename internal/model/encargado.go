package model

import (
	"time"

	"github.com/google/uuid"
)

// Local is a store location. Managed by the surrounding back office; the core
// only needs its id for slot identity and roster filtering.
type Local struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName overrides GORM's default pluralization (locals → locales).
func (Local) TableName() string { return "locales" }

// Encargado is a manager eligible to own planillas for one local.
type Encargado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	LocalID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}
