package dto

import "github.com/shopspring/decimal"

type RegistrarCierreRequest struct {
	LocalID       string          `json:"local_id"       validate:"required,uuid"`
	Fecha         string          `json:"fecha"          validate:"required,datetime=2006-01-02"`
	Turno         string          `json:"turno"          validate:"required,oneof=manana tarde"`
	VentasTotales decimal.Decimal `json:"ventas_totales" validate:"min=0"`
	Actor         string          `json:"actor"          validate:"required,min=2"`
}

type CierreCajaResponse struct {
	ID            string          `json:"id"`
	LocalID       string          `json:"local_id"`
	Fecha         string          `json:"fecha"`
	Turno         string          `json:"turno"`
	VentasTotales decimal.Decimal `json:"ventas_totales"`
	RegistradoPor string          `json:"registrado_por"`
}
