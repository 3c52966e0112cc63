package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

// PlanillaFilter defines filters for listing planillas.
type PlanillaFilter struct {
	LocalID *uuid.UUID
	Estado  string
	Page    int
	Limit   int
}

type PlanillaStockRepository interface {
	CreatePlanilla(ctx context.Context, p *model.PlanillaStock) error
	UpdatePlanilla(ctx context.Context, p *model.PlanillaStock) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PlanillaStock, error)
	// FindHeader loads the header without its lines. The comparator uses it
	// so the line fetch can run concurrently with the cierre lookup.
	FindHeader(ctx context.Context, id uuid.UUID) (*model.PlanillaStock, error)
	// FindAbiertaPorSlot returns the non-completed planilla for the natural
	// key, or apperr.ErrNotFound. The read-then-act duplicate check is backed
	// by a partial unique index at the storage layer (see infra/database.go).
	FindAbiertaPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*model.PlanillaStock, error)
	UpsertLinea(ctx context.Context, l *model.LineaStock) error
	ListLineas(ctx context.Context, planillaID uuid.UUID) ([]model.LineaStock, error)
	List(ctx context.Context, filter PlanillaFilter) ([]model.PlanillaStock, int64, error)
}

type planillaRepo struct{ db *gorm.DB }

func NewPlanillaStockRepository(db *gorm.DB) PlanillaStockRepository {
	return &planillaRepo{db: db}
}

func (r *planillaRepo) CreatePlanilla(ctx context.Context, p *model.PlanillaStock) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperr.NewPersistence("crear planilla", err)
	}
	return nil
}

func (r *planillaRepo) UpdatePlanilla(ctx context.Context, p *model.PlanillaStock) error {
	// Omit Lineas: lines are upserted individually by key.
	if err := r.db.WithContext(ctx).Omit("Lineas").Save(p).Error; err != nil {
		return apperr.NewPersistence("actualizar planilla", err)
	}
	return nil
}

func (r *planillaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PlanillaStock, error) {
	var p model.PlanillaStock
	err := r.db.WithContext(ctx).
		Preload("Lineas", func(db *gorm.DB) *gorm.DB { return db.Order("producto_nombre ASC") }).
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.NewPersistence("buscar planilla", err)
	}
	return &p, nil
}

func (r *planillaRepo) FindHeader(ctx context.Context, id uuid.UUID) (*model.PlanillaStock, error) {
	var p model.PlanillaStock
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.NewPersistence("buscar planilla", err)
	}
	return &p, nil
}

func (r *planillaRepo) FindAbiertaPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*model.PlanillaStock, error) {
	var p model.PlanillaStock
	err := r.db.WithContext(ctx).
		Preload("Lineas", func(db *gorm.DB) *gorm.DB { return db.Order("producto_nombre ASC") }).
		Where("local_id = ? AND fecha = ? AND turno = ? AND estado <> ?",
			localID, fecha, turno, model.EstadoCompletada).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.NewPersistence("buscar planilla por slot", err)
	}
	return &p, nil
}

func (r *planillaRepo) UpsertLinea(ctx context.Context, l *model.LineaStock) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "planilla_stock_id"}, {Name: "producto_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cantidad_apertura", "apertura_bloqueada",
			"cantidad_ingreso", "ingreso_bloqueado",
			"cantidad_cierre", "cierre_bloqueado",
			"unidades_vendidas", "cantidad_descartada", "consumo_interno",
			"diferencia", "updated_at",
		}),
	}).Create(l).Error
	if err != nil {
		return apperr.NewPersistence("guardar línea", err)
	}
	return nil
}

func (r *planillaRepo) ListLineas(ctx context.Context, planillaID uuid.UUID) ([]model.LineaStock, error) {
	var lineas []model.LineaStock
	err := r.db.WithContext(ctx).
		Where("planilla_stock_id = ?", planillaID).
		Order("producto_nombre ASC").
		Find(&lineas).Error
	if err != nil {
		return nil, apperr.NewPersistence("listar líneas", err)
	}
	return lineas, nil
}

func (r *planillaRepo) List(ctx context.Context, filter PlanillaFilter) ([]model.PlanillaStock, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.PlanillaStock{})
	if filter.LocalID != nil {
		q = q.Where("local_id = ?", *filter.LocalID)
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.NewPersistence("contar planillas", err)
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var planillas []model.PlanillaStock
	err := q.Order("fecha DESC, turno ASC").Offset(offset).Limit(limit).Find(&planillas).Error
	if err != nil {
		return nil, 0, apperr.NewPersistence("listar planillas", err)
	}
	return planillas, total, nil
}
