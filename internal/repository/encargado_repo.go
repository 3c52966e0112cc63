package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

// EncargadoRepository is the read side of the manager roster collaborator.
type EncargadoRepository interface {
	ListarPorLocal(ctx context.Context, localID uuid.UUID) ([]model.Encargado, error)
	// ExisteEnLocal reports whether encargadoID belongs to the active roster
	// filtered for localID.
	ExisteEnLocal(ctx context.Context, encargadoID, localID uuid.UUID) (bool, error)
}

type encargadoRepo struct{ db *gorm.DB }

func NewEncargadoRepository(db *gorm.DB) EncargadoRepository {
	return &encargadoRepo{db: db}
}

func (r *encargadoRepo) ListarPorLocal(ctx context.Context, localID uuid.UUID) ([]model.Encargado, error) {
	var encargados []model.Encargado
	err := r.db.WithContext(ctx).
		Where("local_id = ? AND activo = ?", localID, true).
		Order("nombre ASC").
		Find(&encargados).Error
	if err != nil {
		return nil, apperr.NewPersistence("listar encargados", err)
	}
	return encargados, nil
}

func (r *encargadoRepo) ExisteEnLocal(ctx context.Context, encargadoID, localID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Encargado{}).
		Where("id = ? AND local_id = ? AND activo = ?", encargadoID, localID, true).
		Count(&count).Error
	if err != nil {
		return false, apperr.NewPersistence("validar encargado", err)
	}
	return count > 0, nil
}
