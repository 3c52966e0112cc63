package dto

import "github.com/shopspring/decimal"

type ProductoResponse struct {
	ID                  string          `json:"id"`
	Nombre              string          `json:"nombre"`
	Categoria           string          `json:"categoria"`
	ValorUnitario       decimal.Decimal `json:"valor_unitario"`
	TieneConsumoInterno bool            `json:"tiene_consumo_interno"`
}

type EncargadoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
