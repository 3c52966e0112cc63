package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados del ciclo de vida de una planilla.
// borrador: existe solo en memoria, sin id persistido.
// parcial:  guardada al menos una vez, campos aún editables.
// completada: terminal — ninguna escritura posterior es aceptada.
const (
	EstadoBorrador   = "borrador"
	EstadoParcial    = "parcial"
	EstadoCompletada = "completada"
)

// Turnos válidos de un slot (local, fecha, turno).
const (
	TurnoManana = "manana"
	TurnoTarde  = "tarde"
)

// TurnoValido reports whether t names one of the two shifts.
func TurnoValido(t string) bool {
	return t == TurnoManana || t == TurnoTarde
}

// PlanillaStock is the aggregate root of the stock reconciliation workflow:
// one header per (local, fecha, turno) slot plus one LineaStock per active
// product snapshotted at creation. The estado transition is monotonic:
// borrador → parcial → completada.
type PlanillaStock struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha       time.Time `gorm:"type:date;not null;index:idx_planillas_slot"`
	LocalID     uuid.UUID `gorm:"type:uuid;not null;index:idx_planillas_slot"`
	Turno       string    `gorm:"type:varchar(10);not null;index:idx_planillas_slot"`
	EncargadoID uuid.UUID `gorm:"type:uuid;not null"`
	Estado      string    `gorm:"type:varchar(20);not null;default:'parcial'"`
	CreatedBy   string    `gorm:"type:varchar(100);not null"`
	UpdatedBy   string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Lineas []LineaStock `gorm:"foreignKey:PlanillaStockID"`
}

// TableName overrides GORM's default pluralization.
func (PlanillaStock) TableName() string { return "planillas_stock" }

// Completada reports whether the planilla reached its terminal state.
func (p *PlanillaStock) Completada() bool { return p.Estado == EstadoCompletada }

// Linea returns the line for productoID, or nil if the product is not on the
// planilla.
func (p *PlanillaStock) Linea(productoID uuid.UUID) *LineaStock {
	for i := range p.Lineas {
		if p.Lineas[i].ProductoID == productoID {
			return &p.Lineas[i]
		}
	}
	return nil
}
