package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

type CierreCajaRepository interface {
	Create(ctx context.Context, c *model.CierreCaja) error
	// FindPorSlot returns apperr.ErrNotFound when no cierre was recorded for
	// the slot. The comparator turns that into its "no comparable" outcome.
	FindPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*model.CierreCaja, error)
}

type cierreCajaRepo struct{ db *gorm.DB }

func NewCierreCajaRepository(db *gorm.DB) CierreCajaRepository {
	return &cierreCajaRepo{db: db}
}

func (r *cierreCajaRepo) Create(ctx context.Context, c *model.CierreCaja) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return apperr.NewPersistence("crear cierre de caja", err)
	}
	return nil
}

func (r *cierreCajaRepo) FindPorSlot(ctx context.Context, localID uuid.UUID, fecha time.Time, turno string) (*model.CierreCaja, error) {
	var c model.CierreCaja
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND fecha = ? AND turno = ?", localID, fecha, turno).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, apperr.NewPersistence("buscar cierre de caja", err)
	}
	return &c, nil
}
