package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
)

// ── In-memory PlanillaStockRepository ────────────────────────────────────────

type fullPlanillaRepo struct {
	planillas map[uuid.UUID]*model.PlanillaStock
}

func newFullPlanillaRepo() *fullPlanillaRepo {
	return &fullPlanillaRepo{planillas: make(map[uuid.UUID]*model.PlanillaStock)}
}

func clonePlanilla(p *model.PlanillaStock) *model.PlanillaStock {
	c := *p
	c.Lineas = make([]model.LineaStock, len(p.Lineas))
	copy(c.Lineas, p.Lineas)
	return &c
}

func (r *fullPlanillaRepo) CreatePlanilla(_ context.Context, p *model.PlanillaStock) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	for i := range p.Lineas {
		if p.Lineas[i].ID == uuid.Nil {
			p.Lineas[i].ID = uuid.New()
		}
		p.Lineas[i].PlanillaStockID = p.ID
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.planillas[p.ID] = clonePlanilla(p)
	return nil
}

func (r *fullPlanillaRepo) UpdatePlanilla(_ context.Context, p *model.PlanillaStock) error {
	stored, ok := r.planillas[p.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	// Header only — lines are persisted through UpsertLinea.
	lineas := stored.Lineas
	*stored = *clonePlanilla(p)
	stored.Lineas = lineas
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *fullPlanillaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PlanillaStock, error) {
	p, ok := r.planillas[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return clonePlanilla(p), nil
}

func (r *fullPlanillaRepo) FindHeader(_ context.Context, id uuid.UUID) (*model.PlanillaStock, error) {
	p, ok := r.planillas[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	c := *p
	c.Lineas = nil
	return &c, nil
}

func (r *fullPlanillaRepo) FindAbiertaPorSlot(_ context.Context, localID uuid.UUID, fecha time.Time, turno string) (*model.PlanillaStock, error) {
	for _, p := range r.planillas {
		if p.LocalID == localID && p.Fecha.Equal(fecha) && p.Turno == turno && p.Estado != model.EstadoCompletada {
			return clonePlanilla(p), nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fullPlanillaRepo) UpsertLinea(_ context.Context, l *model.LineaStock) error {
	p, ok := r.planillas[l.PlanillaStockID]
	if !ok {
		return apperr.ErrNotFound
	}
	for i := range p.Lineas {
		if p.Lineas[i].ProductoID == l.ProductoID {
			p.Lineas[i] = *l
			return nil
		}
	}
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	p.Lineas = append(p.Lineas, *l)
	return nil
}

func (r *fullPlanillaRepo) ListLineas(_ context.Context, planillaID uuid.UUID) ([]model.LineaStock, error) {
	p, ok := r.planillas[planillaID]
	if !ok {
		return nil, nil
	}
	lineas := make([]model.LineaStock, len(p.Lineas))
	copy(lineas, p.Lineas)
	return lineas, nil
}

func (r *fullPlanillaRepo) List(_ context.Context, filter repository.PlanillaFilter) ([]model.PlanillaStock, int64, error) {
	var all []model.PlanillaStock
	for _, p := range r.planillas {
		if filter.LocalID != nil && p.LocalID != *filter.LocalID {
			continue
		}
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		all = append(all, *clonePlanilla(p))
	}
	return all, int64(len(all)), nil
}

var _ repository.PlanillaStockRepository = (*fullPlanillaRepo)(nil)

// ── In-memory ProductoRepository ─────────────────────────────────────────────

type stubProductoRepo struct {
	productos []model.Producto
}

func (r *stubProductoRepo) ListActivos(_ context.Context) ([]model.Producto, error) {
	return r.productos, nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── In-memory EncargadoRepository ────────────────────────────────────────────

type stubEncargadoRepo struct {
	encargados map[uuid.UUID]uuid.UUID // encargado → local
}

func (r *stubEncargadoRepo) ListarPorLocal(_ context.Context, localID uuid.UUID) ([]model.Encargado, error) {
	var result []model.Encargado
	for id, lid := range r.encargados {
		if lid == localID {
			result = append(result, model.Encargado{ID: id, LocalID: lid, Activo: true})
		}
	}
	return result, nil
}

func (r *stubEncargadoRepo) ExisteEnLocal(_ context.Context, encargadoID, localID uuid.UUID) (bool, error) {
	lid, ok := r.encargados[encargadoID]
	return ok && lid == localID, nil
}

var _ repository.EncargadoRepository = (*stubEncargadoRepo)(nil)

// ── In-memory CierreCajaRepository ───────────────────────────────────────────

type stubCierreRepo struct {
	cierres []model.CierreCaja
}

func (r *stubCierreRepo) Create(_ context.Context, c *model.CierreCaja) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.cierres = append(r.cierres, *c)
	return nil
}

func (r *stubCierreRepo) FindPorSlot(_ context.Context, localID uuid.UUID, fecha time.Time, turno string) (*model.CierreCaja, error) {
	for i := range r.cierres {
		c := r.cierres[i]
		if c.LocalID == localID && c.Fecha.Equal(fecha) && c.Turno == turno {
			return &c, nil
		}
	}
	return nil, apperr.ErrNotFound
}

var _ repository.CierreCajaRepository = (*stubCierreRepo)(nil)

// ── In-memory AlertaCruceRepository ──────────────────────────────────────────

type stubAlertaRepo struct {
	alertas map[uuid.UUID]*model.AlertaCruceCaja
	failErr error // inject persistence failures
}

func newStubAlertaRepo() *stubAlertaRepo {
	return &stubAlertaRepo{alertas: make(map[uuid.UUID]*model.AlertaCruceCaja)}
}

func (r *stubAlertaRepo) Upsert(_ context.Context, a *model.AlertaCruceCaja) error {
	if r.failErr != nil {
		return r.failErr
	}
	for _, existente := range r.alertas {
		if existente.PlanillaStockID == a.PlanillaStockID && existente.CierreCajaID == a.CierreCajaID {
			existente.MontoEsperado = a.MontoEsperado
			existente.MontoReal = a.MontoReal
			existente.Diferencia = a.Diferencia
			existente.Estado = a.Estado
			existente.UpdatedAt = time.Now()
			return nil
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	copia := *a
	r.alertas[a.ID] = &copia
	return nil
}

func (r *stubAlertaRepo) FindPorPar(_ context.Context, planillaID, cierreID uuid.UUID) (*model.AlertaCruceCaja, error) {
	for _, a := range r.alertas {
		if a.PlanillaStockID == planillaID && a.CierreCajaID == cierreID {
			copia := *a
			return &copia, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *stubAlertaRepo) ActualizarEstado(_ context.Context, id uuid.UUID, estado string) error {
	a, ok := r.alertas[id]
	if !ok {
		return apperr.ErrNotFound
	}
	a.Estado = estado
	return nil
}

func (r *stubAlertaRepo) List(_ context.Context, filter repository.AlertaFilter) ([]model.AlertaCruceCaja, int64, error) {
	var result []model.AlertaCruceCaja
	for _, a := range r.alertas {
		if filter.Estado != "" && a.Estado != filter.Estado {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

var _ repository.AlertaCruceRepository = (*stubAlertaRepo)(nil)
