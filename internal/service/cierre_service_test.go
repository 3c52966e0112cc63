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
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/dto"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

func registrarCierreBase(localID uuid.UUID) dto.RegistrarCierreRequest {
	return dto.RegistrarCierreRequest{
		LocalID:       localID.String(),
		Fecha:         "2026-08-28",
		Turno:         model.TurnoTarde,
		VentasTotales: decimal.NewFromInt(25000),
		Actor:         "cajero@local",
	}
}

func TestRegistrarCierre(t *testing.T) {
	localID := uuid.New()
	svc := NewCierreCajaService(&stubCierreRepo{})

	resp, err := svc.Registrar(context.Background(), registrarCierreBase(localID))
	require.NoError(t, err)

	assert.Equal(t, localID.String(), resp.LocalID)
	assert.Equal(t, "2026-08-28", resp.Fecha)
	assert.True(t, resp.VentasTotales.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, "cajero@local", resp.RegistradoPor)
}

func TestRegistrarCierreRechazaSlotDuplicado(t *testing.T) {
	localID := uuid.New()
	svc := NewCierreCajaService(&stubCierreRepo{})

	_, err := svc.Registrar(context.Background(), registrarCierreBase(localID))
	require.NoError(t, err)

	_, err = svc.Registrar(context.Background(), registrarCierreBase(localID))
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestRegistrarCierreRechazaVentasNegativas(t *testing.T) {
	svc := NewCierreCajaService(&stubCierreRepo{})

	req := registrarCierreBase(uuid.New())
	req.VentasTotales = decimal.NewFromInt(-1)
	_, err := svc.Registrar(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestObtenerCierrePorSlot(t *testing.T) {
	localID := uuid.New()
	svc := NewCierreCajaService(&stubCierreRepo{})

	_, err := svc.Registrar(context.Background(), registrarCierreBase(localID))
	require.NoError(t, err)

	fecha := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ObtenerPorSlot(context.Background(), localID, fecha, model.TurnoTarde)
	require.NoError(t, err)
	assert.True(t, resp.VentasTotales.Equal(decimal.NewFromInt(25000)))

	_, err = svc.ObtenerPorSlot(context.Background(), localID, fecha, model.TurnoManana)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
