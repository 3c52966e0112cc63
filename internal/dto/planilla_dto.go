package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LineaPlanillaRequest carries the quantities the caller wants to write for
// one product. Nil fields are left untouched; writes against locked fields
// are rejected line by line with FieldLocked.
type LineaPlanillaRequest struct {
	ProductoID         string `json:"producto_id"         validate:"required,uuid"`
	CantidadApertura   *int   `json:"cantidad_apertura"   validate:"omitempty,min=0"`
	CantidadIngreso    *int   `json:"cantidad_ingreso"    validate:"omitempty,min=0"`
	CantidadCierre     *int   `json:"cantidad_cierre"     validate:"omitempty,min=0"`
	UnidadesVendidas   *int   `json:"unidades_vendidas"   validate:"omitempty,min=0"`
	CantidadDescartada *int   `json:"cantidad_descartada" validate:"omitempty,min=0"`
	ConsumoInterno     *int   `json:"consumo_interno"     validate:"omitempty,min=0"`
}

// GuardarPlanillaRequest creates the planilla on first save (empty
// planilla_id) or updates it in place afterwards.
type GuardarPlanillaRequest struct {
	PlanillaID  string                 `json:"planilla_id"  validate:"omitempty,uuid"`
	LocalID     string                 `json:"local_id"     validate:"required,uuid"`
	Fecha       string                 `json:"fecha"        validate:"required,datetime=2006-01-02"`
	Turno       string                 `json:"turno"        validate:"required,oneof=manana tarde"`
	EncargadoID string                 `json:"encargado_id" validate:"required,uuid"`
	Actor       string                 `json:"actor"        validate:"required,min=2"`
	Lineas      []LineaPlanillaRequest `json:"lineas"       validate:"omitempty,dive"`
}

type BloquearCampoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Campo      string `json:"campo"       validate:"required,oneof=apertura ingreso cierre"`
	Actor      string `json:"actor"       validate:"required,min=2"`
}

type AgregarIngresoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
	Actor      string `json:"actor"       validate:"required,min=2"`
}

type FinalizarPlanillaRequest struct {
	Actor string `json:"actor" validate:"required,min=2"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LineaPlanillaResponse struct {
	ProductoID          string          `json:"producto_id"`
	ProductoNombre      string          `json:"producto_nombre"`
	Categoria           string          `json:"categoria"`
	ValorUnitario       decimal.Decimal `json:"valor_unitario"`
	TieneConsumoInterno bool            `json:"tiene_consumo_interno"`
	CantidadApertura    *int            `json:"cantidad_apertura"`
	AperturaBloqueada   bool            `json:"apertura_bloqueada"`
	CantidadIngreso     *int            `json:"cantidad_ingreso"`
	IngresoBloqueado    bool            `json:"ingreso_bloqueado"`
	CantidadCierre      *int            `json:"cantidad_cierre"`
	CierreBloqueado     bool            `json:"cierre_bloqueado"`
	UnidadesVendidas    *int            `json:"unidades_vendidas"`
	CantidadDescartada  *int            `json:"cantidad_descartada"`
	ConsumoInterno      *int            `json:"consumo_interno"`
	Diferencia          *int            `json:"diferencia"`
}

type PlanillaResponse struct {
	PlanillaID  string                  `json:"planilla_id"`
	LocalID     string                  `json:"local_id"`
	Fecha       string                  `json:"fecha"`
	Turno       string                  `json:"turno"`
	EncargadoID string                  `json:"encargado_id"`
	Estado      string                  `json:"estado"`
	SoloLectura bool                    `json:"solo_lectura"`
	CreatedBy   string                  `json:"created_by"`
	UpdatedBy   string                  `json:"updated_by"`
	Lineas      []LineaPlanillaResponse `json:"lineas"`
}

// PlanillaResumenResponse is the header-only shape used by listings.
type PlanillaResumenResponse struct {
	PlanillaID  string `json:"planilla_id"`
	LocalID     string `json:"local_id"`
	Fecha       string `json:"fecha"`
	Turno       string `json:"turno"`
	EncargadoID string `json:"encargado_id"`
	Estado      string `json:"estado"`
	UpdatedBy   string `json:"updated_by"`
}
