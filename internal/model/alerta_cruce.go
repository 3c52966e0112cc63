package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una alerta de cruce stock/caja.
const (
	AlertaActiva     = "activa"
	AlertaResuelta   = "resuelta"
	AlertaDescartada = "descartada"
)

// AlertaCruceCaja flags a significant gap between the sales expected from the
// stock planilla and the cash register's recorded total for the same slot.
// At most one row exists per (planilla, cierre) pair — the comparator upserts.
type AlertaCruceCaja struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanillaStockID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_alertas_par"`
	CierreCajaID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_alertas_par"`
	MontoEsperado   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MontoReal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Diferencia      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado          string          `gorm:"type:varchar(20);not null;default:'activa'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default pluralization.
func (AlertaCruceCaja) TableName() string { return "alertas_cruce_caja" }
