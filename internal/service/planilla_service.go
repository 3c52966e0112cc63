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

const formatoFecha = "2006-01-02"

// PlanillaService owns the reconciliation workflow: save, per-field locking,
// incremental merchandise receipts, and the terminal finalize.
type PlanillaService interface {
	// Guardar creates the planilla on first save (snapshotting every active
	// product into a line) or updates it in place. It never forces locks.
	Guardar(ctx context.Context, req dto.GuardarPlanillaRequest) (*dto.PlanillaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PlanillaResponse, error)
	ObtenerPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*dto.PlanillaResponse, error)
	BloquearCampo(ctx context.Context, planillaID uuid.UUID, req dto.BloquearCampoRequest) (*dto.PlanillaResponse, error)
	AgregarIngreso(ctx context.Context, planillaID uuid.UUID, req dto.AgregarIngresoRequest) (*dto.PlanillaResponse, error)
	// Finalizar recomputes every diferencia, forces the three manager locks
	// on every line, and moves the planilla to its terminal state.
	Finalizar(ctx context.Context, planillaID uuid.UUID, actor string) (*dto.PlanillaResponse, error)
	Listar(ctx context.Context, filter repository.PlanillaFilter) ([]dto.PlanillaResumenResponse, int64, error)
}

type planillaService struct {
	repo       repository.PlanillaStockRepository
	productos  repository.ProductoRepository
	encargados repository.EncargadoRepository
}

func NewPlanillaService(repo repository.PlanillaStockRepository, productos repository.ProductoRepository, encargados repository.EncargadoRepository) PlanillaService {
	return &planillaService{repo: repo, productos: productos, encargados: encargados}
}

// ── Guardar ───────────────────────────────────────────────────────────────────

func (s *planillaService) Guardar(ctx context.Context, req dto.GuardarPlanillaRequest) (*dto.PlanillaResponse, error) {
	localID, err := uuid.Parse(req.LocalID)
	if err != nil {
		return nil, apperr.NewValidation("local_id", "identificador inválido")
	}
	encargadoID, err := uuid.Parse(req.EncargadoID)
	if err != nil {
		return nil, apperr.NewValidation("encargado_id", "identificador inválido")
	}
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	if !model.TurnoValido(req.Turno) {
		return nil, apperr.NewValidation("turno", "turno desconocido")
	}

	ok, err := s.encargados.ExisteEnLocal(ctx, encargadoID, localID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NewValidation("encargado_id", "el encargado no pertenece al local")
	}

	if req.PlanillaID == "" {
		return s.crear(ctx, localID, encargadoID, fecha, req)
	}

	planillaID, err := uuid.Parse(req.PlanillaID)
	if err != nil {
		return nil, apperr.NewValidation("planilla_id", "identificador inválido")
	}
	return s.actualizar(ctx, planillaID, localID, encargadoID, fecha, req)
}

// crear is the first save: the duplicate-slot guard runs here (backed by the
// partial unique index uni_planillas_slot_abierta) and every active product
// is snapshotted into a line before the requested quantities are applied.
func (s *planillaService) crear(ctx context.Context, localID, encargadoID uuid.UUID, fecha time.Time, req dto.GuardarPlanillaRequest) (*dto.PlanillaResponse, error) {
	if existente, err := s.repo.FindAbiertaPorSlot(ctx, localID, fecha, req.Turno); err == nil && existente != nil {
		return nil, apperr.NewValidation("turno", "ya existe una planilla abierta para este local, fecha y turno")
	} else if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}

	catalogo, err := s.productos.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	if len(catalogo) == 0 {
		return nil, apperr.NewValidation("catalogo", "no hay productos activos para planillar")
	}

	planilla := &model.PlanillaStock{
		Fecha:       fecha,
		LocalID:     localID,
		Turno:       req.Turno,
		EncargadoID: encargadoID,
		Estado:      model.EstadoParcial,
		CreatedBy:   req.Actor,
		UpdatedBy:   req.Actor,
		Lineas:      make([]model.LineaStock, 0, len(catalogo)),
	}
	for _, p := range catalogo {
		planilla.Lineas = append(planilla.Lineas, model.LineaStock{
			ProductoID:          p.ID,
			ProductoNombre:      p.Nombre,
			Categoria:           p.Categoria,
			ValorUnitario:       p.ValorUnitario,
			TieneConsumoInterno: p.TieneConsumoInterno,
		})
	}

	if err := s.aplicarLineas(planilla, req.Lineas); err != nil {
		return nil, err
	}

	if err := s.repo.CreatePlanilla(ctx, planilla); err != nil {
		return nil, err
	}
	log.Info().
		Str("planilla_id", planilla.ID.String()).
		Str("local_id", localID.String()).
		Str("turno", req.Turno).
		Int("lineas", len(planilla.Lineas)).
		Msg("planilla creada")

	return toPlanillaResponse(planilla), nil
}

func (s *planillaService) actualizar(ctx context.Context, planillaID, localID, encargadoID uuid.UUID, fecha time.Time, req dto.GuardarPlanillaRequest) (*dto.PlanillaResponse, error) {
	planilla, err := s.repo.FindByID(ctx, planillaID)
	if err != nil {
		return nil, err
	}
	if planilla.Completada() {
		return nil, apperr.NewValidation("estado", "la planilla está completada y no admite cambios")
	}
	// El slot es la identidad natural de la planilla: no se reasigna.
	if planilla.LocalID != localID || !planilla.Fecha.Equal(fecha) || planilla.Turno != req.Turno {
		return nil, apperr.NewValidation("turno", "el slot (local, fecha, turno) de una planilla no puede modificarse")
	}

	planilla.EncargadoID = encargadoID
	planilla.UpdatedBy = req.Actor

	if err := s.aplicarLineas(planilla, req.Lineas); err != nil {
		return nil, err
	}

	for i := range planilla.Lineas {
		if err := s.repo.UpsertLinea(ctx, &planilla.Lineas[i]); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdatePlanilla(ctx, planilla); err != nil {
		return nil, err
	}
	return toPlanillaResponse(planilla), nil
}

// aplicarLineas writes the requested quantities onto the in-memory lines.
// Manager fields go through the per-field lock checks; administrator fields
// only need the non-negative guard.
func (s *planillaService) aplicarLineas(planilla *model.PlanillaStock, lineas []dto.LineaPlanillaRequest) error {
	for _, lr := range lineas {
		productoID, err := uuid.Parse(lr.ProductoID)
		if err != nil {
			return apperr.NewValidation("producto_id", "identificador inválido")
		}
		linea := planilla.Linea(productoID)
		if linea == nil {
			return apperr.NewValidationProducto(productoID, "producto_id", "el producto no pertenece a la planilla")
		}

		if lr.CantidadApertura != nil {
			if err := linea.SetCantidad(model.CampoApertura, *lr.CantidadApertura); err != nil {
				return err
			}
		}
		if lr.CantidadIngreso != nil {
			if err := linea.SetCantidad(model.CampoIngreso, *lr.CantidadIngreso); err != nil {
				return err
			}
		}
		if lr.CantidadCierre != nil {
			if err := linea.SetCantidad(model.CampoCierre, *lr.CantidadCierre); err != nil {
				return err
			}
		}

		if err := setAdministrativo(linea, &linea.UnidadesVendidas, lr.UnidadesVendidas, "unidades_vendidas"); err != nil {
			return err
		}
		if err := setAdministrativo(linea, &linea.CantidadDescartada, lr.CantidadDescartada, "cantidad_descartada"); err != nil {
			return err
		}
		if err := setAdministrativo(linea, &linea.ConsumoInterno, lr.ConsumoInterno, "consumo_interno"); err != nil {
			return err
		}
	}
	return nil
}

func setAdministrativo(linea *model.LineaStock, destino **int, valor *int, campo string) error {
	if valor == nil {
		return nil
	}
	if *valor < 0 {
		return apperr.NewValidationProducto(linea.ProductoID, campo, "la cantidad no puede ser negativa")
	}
	v := *valor
	*destino = &v
	return nil
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

func (s *planillaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PlanillaResponse, error) {
	planilla, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPlanillaResponse(planilla), nil
}

func (s *planillaService) ObtenerPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*dto.PlanillaResponse, error) {
	if !model.TurnoValido(turno) {
		return nil, apperr.NewValidation("turno", "turno desconocido")
	}
	planilla, err := s.repo.FindAbiertaPorSlot(ctx, localID, fecha, turno)
	if err != nil {
		return nil, err
	}
	return toPlanillaResponse(planilla), nil
}

func (s *planillaService) Listar(ctx context.Context, filter repository.PlanillaFilter) ([]dto.PlanillaResumenResponse, int64, error) {
	planillas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	resumen := make([]dto.PlanillaResumenResponse, 0, len(planillas))
	for i := range planillas {
		p := &planillas[i]
		resumen = append(resumen, dto.PlanillaResumenResponse{
			PlanillaID:  p.ID.String(),
			LocalID:     p.LocalID.String(),
			Fecha:       p.Fecha.Format(formatoFecha),
			Turno:       p.Turno,
			EncargadoID: p.EncargadoID.String(),
			Estado:      p.Estado,
			UpdatedBy:   p.UpdatedBy,
		})
	}
	return resumen, total, nil
}

// ── BloquearCampo ─────────────────────────────────────────────────────────────

func (s *planillaService) BloquearCampo(ctx context.Context, planillaID uuid.UUID, req dto.BloquearCampoRequest) (*dto.PlanillaResponse, error) {
	planilla, err := s.repo.FindByID(ctx, planillaID)
	if err != nil {
		return nil, err
	}
	if planilla.Completada() {
		return nil, apperr.NewValidation("estado", "la planilla está completada y no admite cambios")
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apperr.NewValidation("producto_id", "identificador inválido")
	}
	linea := planilla.Linea(productoID)
	if linea == nil {
		return nil, apperr.NewValidationProducto(productoID, "producto_id", "el producto no pertenece a la planilla")
	}

	if err := linea.Bloquear(model.CampoPlanilla(req.Campo)); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertLinea(ctx, linea); err != nil {
		return nil, err
	}
	planilla.UpdatedBy = req.Actor
	if err := s.repo.UpdatePlanilla(ctx, planilla); err != nil {
		return nil, err
	}

	log.Info().
		Str("planilla_id", planillaID.String()).
		Str("producto_id", productoID.String()).
		Str("campo", req.Campo).
		Msg("campo bloqueado")
	return toPlanillaResponse(planilla), nil
}

// ── AgregarIngreso ────────────────────────────────────────────────────────────

func (s *planillaService) AgregarIngreso(ctx context.Context, planillaID uuid.UUID, req dto.AgregarIngresoRequest) (*dto.PlanillaResponse, error) {
	planilla, err := s.repo.FindByID(ctx, planillaID)
	if err != nil {
		return nil, err
	}
	if planilla.Completada() {
		return nil, apperr.NewValidation("estado", "la planilla está completada y no admite cambios")
	}
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, apperr.NewValidation("producto_id", "identificador inválido")
	}
	linea := planilla.Linea(productoID)
	if linea == nil {
		return nil, apperr.NewValidationProducto(productoID, "producto_id", "el producto no pertenece a la planilla")
	}

	if err := linea.AgregarIngreso(req.Cantidad); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertLinea(ctx, linea); err != nil {
		return nil, err
	}
	planilla.UpdatedBy = req.Actor
	if err := s.repo.UpdatePlanilla(ctx, planilla); err != nil {
		return nil, err
	}
	return toPlanillaResponse(planilla), nil
}

// ── Finalizar ─────────────────────────────────────────────────────────────────

func (s *planillaService) Finalizar(ctx context.Context, planillaID uuid.UUID, actor string) (*dto.PlanillaResponse, error) {
	planilla, err := s.repo.FindByID(ctx, planillaID)
	if err != nil {
		return nil, err
	}
	if planilla.Completada() {
		return nil, apperr.NewValidation("estado", "la planilla ya fue finalizada")
	}
	if planilla.LocalID == uuid.Nil || planilla.EncargadoID == uuid.Nil {
		return nil, apperr.NewValidation("encargado_id", "la planilla no tiene local o encargado asignado")
	}

	// Se recalcula la diferencia de TODAS las líneas, incluso las que ya
	// tenían un valor de guardados parciales: evita diferencias viejas.
	for i := range planilla.Lineas {
		linea := &planilla.Lineas[i]
		d := CalcularDiferencia(linea)
		linea.Diferencia = &d
		linea.ForzarBloqueos()
		if err := s.repo.UpsertLinea(ctx, linea); err != nil {
			return nil, err
		}
	}

	planilla.Estado = model.EstadoCompletada
	planilla.UpdatedBy = actor
	if err := s.repo.UpdatePlanilla(ctx, planilla); err != nil {
		return nil, err
	}

	log.Info().
		Str("planilla_id", planillaID.String()).
		Str("actor", actor).
		Int("lineas", len(planilla.Lineas)).
		Msg("planilla finalizada")
	return toPlanillaResponse(planilla), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func parseFecha(valor string) (time.Time, error) {
	fecha, err := time.ParseInLocation(formatoFecha, valor, time.UTC)
	if err != nil {
		return time.Time{}, apperr.NewValidation("fecha", "formato de fecha inválido, se espera AAAA-MM-DD")
	}
	return fecha, nil
}

func toPlanillaResponse(p *model.PlanillaStock) *dto.PlanillaResponse {
	resp := &dto.PlanillaResponse{
		PlanillaID:  p.ID.String(),
		LocalID:     p.LocalID.String(),
		Fecha:       p.Fecha.Format(formatoFecha),
		Turno:       p.Turno,
		EncargadoID: p.EncargadoID.String(),
		Estado:      p.Estado,
		SoloLectura: p.Completada(),
		CreatedBy:   p.CreatedBy,
		UpdatedBy:   p.UpdatedBy,
		Lineas:      make([]dto.LineaPlanillaResponse, 0, len(p.Lineas)),
	}
	for i := range p.Lineas {
		l := &p.Lineas[i]
		resp.Lineas = append(resp.Lineas, dto.LineaPlanillaResponse{
			ProductoID:          l.ProductoID.String(),
			ProductoNombre:      l.ProductoNombre,
			Categoria:           l.Categoria,
			ValorUnitario:       l.ValorUnitario,
			TieneConsumoInterno: l.TieneConsumoInterno,
			CantidadApertura:    l.CantidadApertura,
			AperturaBloqueada:   l.AperturaBloqueada,
			CantidadIngreso:     l.CantidadIngreso,
			IngresoBloqueado:    l.IngresoBloqueado,
			CantidadCierre:      l.CantidadCierre,
			CierreBloqueado:     l.CierreBloqueado,
			UnidadesVendidas:    l.UnidadesVendidas,
			CantidadDescartada:  l.CantidadDescartada,
			ConsumoInterno:      l.ConsumoInterno,
			Diferencia:          l.Diferencia,
		})
	}
	return resp
}
