package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

// AlertaFilter defines filters for listing cross-check alerts.
type AlertaFilter struct {
	Estado string
	Page   int
	Limit  int
}

type AlertaCruceRepository interface {
	// Upsert is idempotent per (planilla, cierre): re-running the comparator
	// refreshes the amounts of the existing row instead of duplicating it.
	Upsert(ctx context.Context, a *model.AlertaCruceCaja) error
	FindPorPar(ctx context.Context, planillaID, cierreID uuid.UUID) (*model.AlertaCruceCaja, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error
	List(ctx context.Context, filter AlertaFilter) ([]model.AlertaCruceCaja, int64, error)
}

type alertaCruceRepo struct{ db *gorm.DB }

func NewAlertaCruceRepository(db *gorm.DB) AlertaCruceRepository {
	return &alertaCruceRepo{db: db}
}

func (r *alertaCruceRepo) Upsert(ctx context.Context, a *model.AlertaCruceCaja) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "planilla_stock_id"}, {Name: "cierre_caja_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"monto_esperado", "monto_real", "diferencia", "estado", "updated_at",
		}),
	}).Create(a).Error
	if err != nil {
		return apperr.NewPersistence("guardar alerta de cruce", err)
	}
	return nil
}

func (r *alertaCruceRepo) FindPorPar(ctx context.Context, planillaID, cierreID uuid.UUID) (*model.AlertaCruceCaja, error) {
	var a model.AlertaCruceCaja
	err := r.db.WithContext(ctx).
		Where("planilla_stock_id = ? AND cierre_caja_id = ?", planillaID, cierreID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.NewPersistence("buscar alerta de cruce", err)
	}
	return &a, nil
}

func (r *alertaCruceRepo) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	res := r.db.WithContext(ctx).Model(&model.AlertaCruceCaja{}).
		Where("id = ?", id).
		Update("estado", estado)
	if res.Error != nil {
		return apperr.NewPersistence("actualizar estado de alerta", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *alertaCruceRepo) List(ctx context.Context, filter AlertaFilter) ([]model.AlertaCruceCaja, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.AlertaCruceCaja{})
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.NewPersistence("contar alertas", err)
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

	var alertas []model.AlertaCruceCaja
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&alertas).Error
	if err != nil {
		return nil, 0, apperr.NewPersistence("listar alertas", err)
	}
	return alertas, total, nil
}
