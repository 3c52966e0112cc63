package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is the catalog entry consumed by the reconciliation core. The
// catalog itself is administered elsewhere; planillas copy these fields into
// their lines at creation instead of referencing them.
type Producto struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre              string          `gorm:"index;not null"`
	Categoria           string          `gorm:"not null"`
	ValorUnitario       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TieneConsumoInterno bool            `gorm:"not null;default:false"`
	Activo              bool            `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
