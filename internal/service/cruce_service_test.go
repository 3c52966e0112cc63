package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

type cruceFixture struct {
	planillas  *fullPlanillaRepo
	cierres    *stubCierreRepo
	alertas    *stubAlertaRepo
	svc        CruceService
	localID    uuid.UUID
	fecha      time.Time
	planillaID uuid.UUID
}

// nuevaCruceFixture seeds a finalized planilla with two lines:
// 60 gaseosas a $100 y 10 pizzas a $850 → ventas esperadas $14500.
func nuevaCruceFixture(t *testing.T, umbral decimal.Decimal) *cruceFixture {
	t.Helper()
	f := &cruceFixture{
		planillas: newFullPlanillaRepo(),
		cierres:   &stubCierreRepo{},
		alertas:   newStubAlertaRepo(),
		localID:   uuid.New(),
		fecha:     time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	}
	planilla := &model.PlanillaStock{
		Fecha:       f.fecha,
		LocalID:     f.localID,
		Turno:       model.TurnoManana,
		EncargadoID: uuid.New(),
		Estado:      model.EstadoCompletada,
		Lineas: []model.LineaStock{
			{
				ProductoID:       uuid.New(),
				ProductoNombre:   "Gaseosa 500ml",
				ValorUnitario:    decimal.NewFromInt(100),
				UnidadesVendidas: ptr(60),
			},
			{
				ProductoID:       uuid.New(),
				ProductoNombre:   "Pizza muzzarella",
				ValorUnitario:    decimal.NewFromInt(850),
				UnidadesVendidas: ptr(10),
			},
			{
				// Sin vendidas: cuenta como cero en el esperado.
				ProductoID:     uuid.New(),
				ProductoNombre: "Agua mineral",
				ValorUnitario:  decimal.NewFromInt(250),
			},
		},
	}
	require.NoError(t, f.planillas.CreatePlanilla(context.Background(), planilla))
	f.planillaID = planilla.ID

	f.svc = NewCruceService(f.planillas, f.cierres, f.alertas, umbral, nil)
	return f
}

func (f *cruceFixture) registrarCierre(t *testing.T, ventas decimal.Decimal) {
	t.Helper()
	require.NoError(t, f.cierres.Create(context.Background(), &model.CierreCaja{
		LocalID:       f.localID,
		Fecha:         f.fecha,
		Turno:         model.TurnoManana,
		VentasTotales: ventas,
		RegistradoPor: "cajero@local",
	}))
}

func TestCompararSinDiscrepancia(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))
	f.registrarCierre(t, decimal.NewFromInt(14500))

	resp, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)

	assert.True(t, resp.Comparable)
	assert.True(t, resp.MontoEsperado.Equal(decimal.NewFromInt(14500)))
	require.NotNil(t, resp.Diferencia)
	assert.True(t, resp.Diferencia.IsZero())
	assert.False(t, resp.AlertaGenerada)
	assert.Empty(t, f.alertas.alertas)
}

func TestCompararDentroDelUmbralNoAlerta(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))
	f.registrarCierre(t, decimal.NewFromInt(14100)) // faltan $400, bajo el umbral

	resp, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)

	assert.True(t, resp.Comparable)
	require.NotNil(t, resp.Diferencia)
	assert.True(t, resp.Diferencia.Equal(decimal.NewFromInt(-400)))
	assert.False(t, resp.AlertaGenerada)
	assert.Empty(t, f.alertas.alertas)
}

func TestCompararGeneraAlertaPorFaltante(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))
	f.registrarCierre(t, decimal.NewFromInt(13000)) // faltan $1500

	resp, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)

	assert.True(t, resp.AlertaGenerada)
	require.NotNil(t, resp.AlertaID)
	require.Len(t, f.alertas.alertas, 1)
	for _, a := range f.alertas.alertas {
		assert.Equal(t, model.AlertaActiva, a.Estado)
		assert.True(t, a.MontoEsperado.Equal(decimal.NewFromInt(14500)))
		assert.True(t, a.MontoReal.Equal(decimal.NewFromInt(13000)))
		assert.True(t, a.Diferencia.Equal(decimal.NewFromInt(-1500)), "el signo del faltante se conserva")
	}
}

func TestCompararEsIdempotente(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))
	f.registrarCierre(t, decimal.NewFromInt(13000))

	_, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)
	_, err = f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)

	assert.Len(t, f.alertas.alertas, 1, "re-ejecutar el cruce actualiza la alerta, no la duplica")
}

func TestCompararSinCierreNoEsError(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))

	resp, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)

	assert.False(t, resp.Comparable)
	assert.Nil(t, resp.MontoReal)
	assert.Nil(t, resp.Diferencia)
	assert.NotEmpty(t, resp.Detalle)
	assert.True(t, resp.MontoEsperado.Equal(decimal.NewFromInt(14500)))
}

func TestCompararDevuelveMontosAunqueLaAlertaFalle(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))
	f.registrarCierre(t, decimal.NewFromInt(13000))
	f.alertas.failErr = apperr.NewPersistence("guardar alerta de cruce", assert.AnError)

	resp, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.Error(t, err)
	assert.True(t, apperr.IsPersistence(err))

	require.NotNil(t, resp, "los montos calculados se devuelven junto con el error")
	assert.True(t, resp.Comparable)
	require.NotNil(t, resp.Diferencia)
	assert.True(t, resp.Diferencia.Equal(decimal.NewFromInt(-1500)))
	assert.False(t, resp.AlertaGenerada)
}

func TestCompararPlanillaInexistente(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))

	_, err := f.svc.Comparar(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestResolverYDescartarAlerta(t *testing.T) {
	f := nuevaCruceFixture(t, decimal.NewFromInt(500))
	f.registrarCierre(t, decimal.NewFromInt(13000))

	resp, err := f.svc.Comparar(context.Background(), f.planillaID)
	require.NoError(t, err)
	require.NotNil(t, resp.AlertaID)
	alertaID := uuid.MustParse(*resp.AlertaID)

	require.NoError(t, f.svc.ResolverAlerta(context.Background(), alertaID))
	assert.Equal(t, model.AlertaResuelta, f.alertas.alertas[alertaID].Estado)

	require.NoError(t, f.svc.DescartarAlerta(context.Background(), alertaID))
	assert.Equal(t, model.AlertaDescartada, f.alertas.alertas[alertaID].Estado)

	err = f.svc.ResolverAlerta(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
