package service

import (
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

// CalcularDiferencia applies the accounting identity to one line:
//
//	diferencia = apertura + ingreso + descartado - vendido - cierre
//
// Quantities not yet entered (NULL) count as zero. Units that should remain
// on hand (apertura + ingreso - vendido) must match the physical cierre;
// descartado is added back because decommissioned stock leaves saleable
// inventory independent of sales. A positive result is unexplained surplus,
// a negative one is shortage.
//
// ConsumoInterno is deliberately NOT part of the identity: it is tracked on
// the line for reporting only. Keep the formula exactly as is — the sign
// convention and the exclusion are load-bearing for the reports built on it.
func CalcularDiferencia(l *model.LineaStock) int {
	return valorOCero(l.CantidadApertura) +
		valorOCero(l.CantidadIngreso) +
		valorOCero(l.CantidadDescartada) -
		valorOCero(l.UnidadesVendidas) -
		valorOCero(l.CantidadCierre)
}

func valorOCero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
