package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
)

// CampoPlanilla identifies one of the three manager-side field groups, each
// captured at a distinct physical moment of the shift and locked afterwards.
type CampoPlanilla string

const (
	CampoApertura CampoPlanilla = "apertura"
	CampoIngreso  CampoPlanilla = "ingreso"
	CampoCierre   CampoPlanilla = "cierre"
)

// CampoValido reports whether c names a lockable field group.
func CampoValido(c CampoPlanilla) bool {
	return c == CampoApertura || c == CampoIngreso || c == CampoCierre
}

// LineaStock is one product row of a planilla. Producto data is snapshotted
// at creation (copied, not referenced) so historical planillas stay stable
// when the catalog changes later.
//
// Each manager quantity carries its own one-way lock flag: once set, only
// Finalizar may write through it. The administrator quantities (vendidas,
// descartada, consumo interno) have no lock — they are entered in a later
// phase, before finalize.
type LineaStock struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanillaStockID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lineas_planilla_producto"`
	ProductoID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_lineas_planilla_producto"`

	// Snapshot del catálogo al momento de crear la planilla.
	ProductoNombre      string          `gorm:"not null"`
	Categoria           string          `gorm:"not null"`
	ValorUnitario       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TieneConsumoInterno bool            `gorm:"not null;default:false"`

	// Cantidades del encargado, cada una con su flag de bloqueo.
	CantidadApertura  *int `gorm:"type:int"`
	AperturaBloqueada bool `gorm:"not null;default:false"`
	CantidadIngreso   *int `gorm:"type:int"`
	IngresoBloqueado  bool `gorm:"not null;default:false"`
	CantidadCierre    *int `gorm:"type:int"`
	CierreBloqueado   bool `gorm:"not null;default:false"`

	// Cantidades administrativas (sin bloqueo).
	UnidadesVendidas   *int `gorm:"type:int"`
	CantidadDescartada *int `gorm:"type:int"`
	ConsumoInterno     *int `gorm:"type:int"`

	// Diferencia queda en NULL hasta que se calcula.
	Diferencia *int `gorm:"type:int"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization.
func (LineaStock) TableName() string { return "lineas_stock" }

// SetCantidad writes a manager quantity, rejecting negative values and writes
// against a locked field. It never touches the lock flag itself.
func (l *LineaStock) SetCantidad(campo CampoPlanilla, cantidad int) error {
	if cantidad < 0 {
		return apperr.NewValidationProducto(l.ProductoID, string(campo), "la cantidad no puede ser negativa")
	}
	if l.Bloqueado(campo) {
		return &apperr.FieldLockedError{ProductoID: l.ProductoID, Campo: string(campo)}
	}
	c := cantidad
	switch campo {
	case CampoApertura:
		l.CantidadApertura = &c
	case CampoIngreso:
		l.CantidadIngreso = &c
	case CampoCierre:
		l.CantidadCierre = &c
	default:
		return apperr.NewValidationProducto(l.ProductoID, string(campo), "campo desconocido")
	}
	return nil
}

// AgregarIngreso accumulates a merchandise receipt into the running ingreso
// total. Multiple deliveries over a shift sum up; NULL counts as zero.
func (l *LineaStock) AgregarIngreso(cantidad int) error {
	if cantidad <= 0 {
		return apperr.NewValidationProducto(l.ProductoID, string(CampoIngreso), "el ingreso debe ser mayor a cero")
	}
	if l.IngresoBloqueado {
		return &apperr.FieldLockedError{ProductoID: l.ProductoID, Campo: string(CampoIngreso)}
	}
	total := cantidad
	if l.CantidadIngreso != nil {
		total += *l.CantidadIngreso
	}
	l.CantidadIngreso = &total
	return nil
}

// Bloquear sets the lock flag for campo. The transition is one-way for the
// lifetime of the planilla; the underlying quantity is not changed.
func (l *LineaStock) Bloquear(campo CampoPlanilla) error {
	switch campo {
	case CampoApertura:
		l.AperturaBloqueada = true
	case CampoIngreso:
		l.IngresoBloqueado = true
	case CampoCierre:
		l.CierreBloqueado = true
	default:
		return apperr.NewValidationProducto(l.ProductoID, string(campo), "campo desconocido")
	}
	return nil
}

// Bloqueado reports whether the lock flag for campo is set.
func (l *LineaStock) Bloqueado(campo CampoPlanilla) bool {
	switch campo {
	case CampoApertura:
		return l.AperturaBloqueada
	case CampoIngreso:
		return l.IngresoBloqueado
	case CampoCierre:
		return l.CierreBloqueado
	}
	return false
}

// ForzarBloqueos asserts all three manager locks. Only Finalizar calls this —
// it is the authoritative closing operation and writes through current state.
func (l *LineaStock) ForzarBloqueos() {
	l.AperturaBloqueada = true
	l.IngresoBloqueado = true
	l.CierreBloqueado = true
}
