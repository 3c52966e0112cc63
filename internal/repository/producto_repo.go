package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

// ProductoRepository is the read side of the catalog collaborator. Catalog
// administration happens in the surrounding back office.
type ProductoRepository interface {
	ListActivos(ctx context.Context) ([]model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepo{db: db}
}

func (r *productoRepo) ListActivos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre ASC").
		Find(&productos).Error
	if err != nil {
		return nil, apperr.NewPersistence("listar productos activos", err)
	}
	return productos, nil
}
