package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/dto"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
)

const (
	cacheKeyProductos = "catalogo:productos:activos"
	cacheTTLProductos = 5 * time.Minute
)

// CatalogoService exposes the two collaborator read contracts the workflow
// needs: the active product catalog and the per-local manager roster. The
// catalog is read-through cached in redis; a cache miss or redis failure
// always falls back to the database, never to stale or fabricated data.
type CatalogoService interface {
	ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error)
	ListarEncargados(ctx context.Context, localID uuid.UUID) ([]dto.EncargadoResponse, error)
}

type catalogoService struct {
	productos  repository.ProductoRepository
	encargados repository.EncargadoRepository
	rdb        *redis.Client
}

func NewCatalogoService(productos repository.ProductoRepository, encargados repository.EncargadoRepository, rdb *redis.Client) CatalogoService {
	return &catalogoService{productos: productos, encargados: encargados, rdb: rdb}
}

func (s *catalogoService) ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKeyProductos).Result(); err == nil {
			var resp []dto.ProductoResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	productos, err := s.productos.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		p := &productos[i]
		resp = append(resp, dto.ProductoResponse{
			ID:                  p.ID.String(),
			Nombre:              p.Nombre,
			Categoria:           p.Categoria,
			ValorUnitario:       p.ValorUnitario,
			TieneConsumoInterno: p.TieneConsumoInterno,
		})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKeyProductos, data, cacheTTLProductos).Err(); err != nil {
				log.Debug().Err(err).Msg("no se pudo cachear el catálogo")
			}
		}
	}
	return resp, nil
}

func (s *catalogoService) ListarEncargados(ctx context.Context, localID uuid.UUID) ([]dto.EncargadoResponse, error) {
	encargados, err := s.encargados.ListarPorLocal(ctx, localID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EncargadoResponse, 0, len(encargados))
	for i := range encargados {
		resp = append(resp, dto.EncargadoResponse{
			ID:     encargados[i].ID.String(),
			Nombre: encargados[i].Nombre,
		})
	}
	return resp, nil
}
