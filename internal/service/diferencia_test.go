package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

func ptr(v int) *int { return &v }

func TestCalcularDiferencia(t *testing.T) {
	casos := []struct {
		nombre string
		linea  model.LineaStock
		want   int
	}{
		{
			// apertura + ingreso + descartado - vendido - cierre
			nombre: "dia completo sin diferencia",
			linea: model.LineaStock{
				CantidadApertura:   ptr(100),
				CantidadIngreso:    ptr(20),
				CantidadDescartada: ptr(5),
				UnidadesVendidas:   ptr(110),
				CantidadCierre:     ptr(15),
			},
			want: 0,
		},
		{
			nombre: "faltante de cierre deja sobrante positivo",
			linea: model.LineaStock{
				CantidadApertura: ptr(50),
				CantidadIngreso:  ptr(30),
				UnidadesVendidas: ptr(60),
				CantidadCierre:   ptr(10),
			},
			want: 10,
		},
		{
			nombre: "cierre de mas deja faltante negativo",
			linea: model.LineaStock{
				CantidadApertura: ptr(10),
				UnidadesVendidas: ptr(2),
				CantidadCierre:   ptr(12),
			},
			want: -4,
		},
		{
			nombre: "nulos cuentan como cero",
			linea:  model.LineaStock{},
			want:   0,
		},
		{
			nombre: "solo apertura",
			linea:  model.LineaStock{CantidadApertura: ptr(7)},
			want:   7,
		},
		{
			// consumo interno se registra pero NO entra en la identidad
			nombre: "consumo interno excluido",
			linea: model.LineaStock{
				CantidadApertura: ptr(20),
				UnidadesVendidas: ptr(5),
				CantidadCierre:   ptr(15),
				ConsumoInterno:   ptr(3),
			},
			want: 0,
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.want, CalcularDiferencia(&c.linea))
		})
	}
}
