package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

func TestListarProductosSinRedis(t *testing.T) {
	productoID := uuid.New()
	productos := &stubProductoRepo{productos: []model.Producto{
		{ID: productoID, Nombre: "Empanada de carne", Categoria: "empanadas",
			ValorUnitario: decimal.NewFromInt(100), TieneConsumoInterno: true, Activo: true},
	}}
	svc := NewCatalogoService(productos, &stubEncargadoRepo{}, nil)

	resp, err := svc.ListarProductos(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, productoID.String(), resp[0].ID)
	assert.True(t, resp[0].TieneConsumoInterno)
}

func TestListarEncargadosDelLocal(t *testing.T) {
	localID := uuid.New()
	encargadoID := uuid.New()
	encargados := &stubEncargadoRepo{encargados: map[uuid.UUID]uuid.UUID{
		encargadoID: localID,
		uuid.New():  uuid.New(), // otro local, no aparece
	}}
	svc := NewCatalogoService(&stubProductoRepo{}, encargados, nil)

	resp, err := svc.ListarEncargados(context.Background(), localID)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, encargadoID.String(), resp[0].ID)
}
