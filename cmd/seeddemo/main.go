// Command seeddemo loads a minimal demo dataset (one local, two encargados,
// a handful of productos) so the workflow can be exercised locally.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/config"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/infra"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	local := model.Local{Nombre: "Local Centro", Activo: true}
	if err := db.Create(&local).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed local")
	}

	encargados := []model.Encargado{
		{Nombre: "Marcela Suárez", LocalID: local.ID, Activo: true},
		{Nombre: "Diego Paredes", LocalID: local.ID, Activo: true},
	}
	if err := db.Create(&encargados).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed encargados")
	}

	productos := []model.Producto{
		{Nombre: "Empanada de carne", Categoria: "empanadas", ValorUnitario: decimal.NewFromInt(100), TieneConsumoInterno: true, Activo: true},
		{Nombre: "Empanada de pollo", Categoria: "empanadas", ValorUnitario: decimal.NewFromInt(100), TieneConsumoInterno: true, Activo: true},
		{Nombre: "Pizza muzzarella", Categoria: "pizzas", ValorUnitario: decimal.NewFromInt(850), Activo: true},
		{Nombre: "Gaseosa 500ml", Categoria: "bebidas", ValorUnitario: decimal.NewFromInt(300), Activo: true},
		{Nombre: "Agua mineral", Categoria: "bebidas", ValorUnitario: decimal.NewFromInt(250), Activo: true},
	}
	if err := db.Create(&productos).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed productos")
	}

	log.Info().
		Str("local_id", local.ID.String()).
		Int("encargados", len(encargados)).
		Int("productos", len(productos)).
		Msg("demo data seeded")
}
