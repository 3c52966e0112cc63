package dto

import "github.com/shopspring/decimal"

// CruceResponse is the result of comparing a planilla against the cash
// closing of its slot. Comparable=false is a valid terminal outcome (no
// cierre recorded yet), not an error — the UI prompts to record one.
type CruceResponse struct {
	PlanillaID     string           `json:"planilla_id"`
	CierreCajaID   *string          `json:"cierre_caja_id"`
	Comparable     bool             `json:"comparable"`
	MontoEsperado  decimal.Decimal  `json:"monto_esperado"`
	MontoReal      *decimal.Decimal `json:"monto_real"`
	Diferencia     *decimal.Decimal `json:"diferencia"`
	AlertaGenerada bool             `json:"alerta_generada"`
	AlertaID       *string          `json:"alerta_id"`
	Detalle        string           `json:"detalle,omitempty"`
}

type AlertaResponse struct {
	ID              string          `json:"id"`
	PlanillaStockID string          `json:"planilla_stock_id"`
	CierreCajaID    string          `json:"cierre_caja_id"`
	MontoEsperado   decimal.Decimal `json:"monto_esperado"`
	MontoReal       decimal.Decimal `json:"monto_real"`
	Diferencia      decimal.Decimal `json:"diferencia"`
	Estado          string          `json:"estado"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}
