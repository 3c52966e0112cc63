package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/dto"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
)

// AlertaNotifier enqueues the async supervisor notification. Implemented by
// worker.Dispatcher; nil disables notifications (tests, batch tooling).
type AlertaNotifier interface {
	EnqueueAlerta(ctx context.Context, alertaID, planillaID, localID, fecha, turno string, esperado, real, diferencia decimal.Decimal) error
}

// CruceService cross-checks a planilla against the cash closing recorded for
// the same (local, fecha, turno) slot and manages the resulting alerts.
type CruceService interface {
	// Comparar computes expected-vs-recorded sales. A missing cierre yields
	// Comparable=false with a nil error. When only the alert write fails the
	// computed response is returned together with the PersistenceError so the
	// caller can still display the numbers.
	Comparar(ctx context.Context, planillaID uuid.UUID) (*dto.CruceResponse, error)
	ResolverAlerta(ctx context.Context, alertaID uuid.UUID) error
	DescartarAlerta(ctx context.Context, alertaID uuid.UUID) error
	ListarAlertas(ctx context.Context, filter repository.AlertaFilter) ([]dto.AlertaResponse, int64, error)
}

type cruceService struct {
	planillas   repository.PlanillaStockRepository
	cierres     repository.CierreCajaRepository
	alertas     repository.AlertaCruceRepository
	umbral      decimal.Decimal
	notificador AlertaNotifier
}

// NewCruceService builds the comparator. umbral is the significance threshold:
// discrepancies with |diferencia| <= umbral do not raise alerts.
func NewCruceService(planillas repository.PlanillaStockRepository, cierres repository.CierreCajaRepository, alertas repository.AlertaCruceRepository, umbral decimal.Decimal, notificador AlertaNotifier) CruceService {
	return &cruceService{
		planillas:   planillas,
		cierres:     cierres,
		alertas:     alertas,
		umbral:      umbral,
		notificador: notificador,
	}
}

func (s *cruceService) Comparar(ctx context.Context, planillaID uuid.UUID) (*dto.CruceResponse, error) {
	planilla, err := s.planillas.FindHeader(ctx, planillaID)
	if err != nil {
		return nil, err
	}

	// Líneas y cierre son lecturas independientes: se buscan en paralelo.
	var (
		lineas []model.LineaStock
		cierre *model.CierreCaja
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lineas, err = s.planillas.ListLineas(gctx, planillaID)
		return err
	})
	g.Go(func() error {
		c, err := s.cierres.FindPorSlot(gctx, planilla.LocalID, planilla.Fecha, planilla.Turno)
		if apperr.IsNotFound(err) {
			return nil // sin cierre: resultado "no comparable", no es un error
		}
		if err != nil {
			return err
		}
		cierre = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	esperado := ventasEsperadas(lineas)

	resp := &dto.CruceResponse{
		PlanillaID:    planillaID.String(),
		MontoEsperado: esperado,
	}
	if cierre == nil {
		resp.Comparable = false
		resp.Detalle = "no hay cierre de caja registrado para este local, fecha y turno"
		return resp, nil
	}

	real := cierre.VentasTotales
	diferencia := real.Sub(esperado)
	cierreID := cierre.ID.String()
	resp.Comparable = true
	resp.CierreCajaID = &cierreID
	resp.MontoReal = &real
	resp.Diferencia = &diferencia

	if diferencia.Abs().LessThanOrEqual(s.umbral) {
		return resp, nil
	}

	// Diferencia significativa: upsert idempotente por (planilla, cierre).
	alerta := &model.AlertaCruceCaja{
		PlanillaStockID: planillaID,
		CierreCajaID:    cierre.ID,
		MontoEsperado:   esperado,
		MontoReal:       real,
		Diferencia:      diferencia,
		Estado:          model.AlertaActiva,
	}
	if err := s.alertas.Upsert(ctx, alerta); err != nil {
		// El cálculo ya está hecho: se devuelve junto con el error para que
		// la UI pueda mostrar los montos aunque la alerta no se haya grabado.
		return resp, err
	}
	resp.AlertaGenerada = true

	persistida, err := s.alertas.FindPorPar(ctx, planillaID, cierre.ID)
	if err != nil {
		log.Warn().
			Str("planilla_id", planillaID.String()).
			Err(err).
			Msg("alerta grabada pero no se pudo releer")
		return resp, nil
	}
	alertaID := persistida.ID.String()
	resp.AlertaID = &alertaID

	if s.notificador != nil {
		if err := s.notificador.EnqueueAlerta(ctx, alertaID, planillaID.String(),
			planilla.LocalID.String(), planilla.Fecha.Format(formatoFecha), planilla.Turno,
			esperado, real, diferencia); err != nil {
			log.Warn().Str("alerta_id", alertaID).Err(err).Msg("no se pudo encolar la notificación")
		}
	}

	log.Info().
		Str("planilla_id", planillaID.String()).
		Str("diferencia", diferencia.String()).
		Msg("alerta de cruce generada")
	return resp, nil
}

// ventasEsperadas sums unidades_vendidas × valor_unitario across the lines.
// Lines without vendidas count as zero.
func ventasEsperadas(lineas []model.LineaStock) decimal.Decimal {
	total := decimal.Zero
	for i := range lineas {
		l := &lineas[i]
		if l.UnidadesVendidas == nil {
			continue
		}
		total = total.Add(l.ValorUnitario.Mul(decimal.NewFromInt(int64(*l.UnidadesVendidas))))
	}
	return total
}

func (s *cruceService) ResolverAlerta(ctx context.Context, alertaID uuid.UUID) error {
	return s.alertas.ActualizarEstado(ctx, alertaID, model.AlertaResuelta)
}

func (s *cruceService) DescartarAlerta(ctx context.Context, alertaID uuid.UUID) error {
	return s.alertas.ActualizarEstado(ctx, alertaID, model.AlertaDescartada)
}

func (s *cruceService) ListarAlertas(ctx context.Context, filter repository.AlertaFilter) ([]dto.AlertaResponse, int64, error) {
	alertas, total, err := s.alertas.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resp := make([]dto.AlertaResponse, 0, len(alertas))
	for i := range alertas {
		a := &alertas[i]
		resp = append(resp, dto.AlertaResponse{
			ID:              a.ID.String(),
			PlanillaStockID: a.PlanillaStockID.String(),
			CierreCajaID:    a.CierreCajaID.String(),
			MontoEsperado:   a.MontoEsperado,
			MontoReal:       a.MontoReal,
			Diferencia:      a.Diferencia,
			Estado:          a.Estado,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
		})
	}
	return resp, total, nil
}
