package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/dto"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
)

// CierreCajaService records and reads the cash-register closings the
// comparator cross-checks against. Closings are immutable once recorded.
type CierreCajaService interface {
	Registrar(ctx context.Context, req dto.RegistrarCierreRequest) (*dto.CierreCajaResponse, error)
	ObtenerPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*dto.CierreCajaResponse, error)
}

type cierreCajaService struct {
	repo repository.CierreCajaRepository
}

func NewCierreCajaService(repo repository.CierreCajaRepository) CierreCajaService {
	return &cierreCajaService{repo: repo}
}

func (s *cierreCajaService) Registrar(ctx context.Context, req dto.RegistrarCierreRequest) (*dto.CierreCajaResponse, error) {
	localID, err := uuid.Parse(req.LocalID)
	if err != nil {
		return nil, apperr.NewValidation("local_id", "identificador inválido")
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	if !model.TurnoValido(req.Turno) {
		return nil, apperr.NewValidation("turno", "turno desconocido")
	}
	if req.VentasTotales.IsNegative() {
		return nil, apperr.NewValidation("ventas_totales", "las ventas no pueden ser negativas")
	}

	// Guard: one cierre per slot (the unique index on the slot backs this).
	if _, err := s.repo.FindPorSlot(ctx, localID, fecha, req.Turno); err == nil {
		return nil, apperr.NewValidation("turno", "ya existe un cierre de caja para este local, fecha y turno")
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	cierre := &model.CierreCaja{
		LocalID:       localID,
		Fecha:         fecha,
		Turno:         req.Turno,
		VentasTotales: req.VentasTotales,
		RegistradoPor: req.Actor,
	}
	if err := s.repo.Create(ctx, cierre); err != nil {
		return nil, err
	}
	log.Info().
		Str("cierre_id", cierre.ID.String()).
		Str("local_id", req.LocalID).
		Str("turno", req.Turno).
		Msg("cierre de caja registrado")
	return toCierreResponse(cierre), nil
}

func (s *cierreCajaService) ObtenerPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*dto.CierreCajaResponse, error) {
	if !model.TurnoValido(turno) {
		return nil, apperr.NewValidation("turno", "turno desconocido")
	}
	cierre, err := s.repo.FindPorSlot(ctx, localID, fecha, turno)
	if err != nil {
		return nil, err
	}
	return toCierreResponse(cierre), nil
}

func toCierreResponse(c *model.CierreCaja) *dto.CierreCajaResponse {
	return &dto.CierreCajaResponse{
		ID:            c.ID.String(),
		LocalID:       c.LocalID.String(),
		Fecha:         c.Fecha.Format(formatoFecha),
		Turno:         c.Turno,
		VentasTotales: c.VentasTotales,
		RegistradoPor: c.RegistradoPor,
	}
}
