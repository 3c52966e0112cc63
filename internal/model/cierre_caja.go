package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CierreCaja is the cash-register closing recorded independently of the stock
// count for the same (local, fecha, turno) slot. The comparator reads it; this
// subsystem never mutates an existing cierre.
type CierreCaja struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LocalID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cierres_slot"`
	Fecha         time.Time       `gorm:"type:date;not null;uniqueIndex:idx_cierres_slot"`
	Turno         string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_cierres_slot"`
	VentasTotales decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RegistradoPor string          `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default pluralization.
func (CierreCaja) TableName() string { return "cierres_caja" }
