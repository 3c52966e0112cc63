package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// GORM cannot express (partial unique indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates/updates the schema. Shared with integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Local{},
		&model.Encargado{},
		&model.Producto{},
		&model.PlanillaStock{},
		&model.LineaStock{},
		&model.CierreCaja{},
		&model.AlertaCruceCaja{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
//
// uni_planillas_slot_abierta is the storage-level guard behind the
// duplicate-sheet check: the service's read-then-act lookup is not atomic, so
// two concurrent creates for the same (local, fecha, turno) slot are resolved
// here — the second insert fails. Completed planillas are excluded so a new
// count can be opened for a slot whose previous planilla was finalized.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_planillas_slot_abierta') THEN
		    CREATE UNIQUE INDEX uni_planillas_slot_abierta
		        ON planillas_stock (local_id, fecha, turno)
		        WHERE estado <> 'completada';
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
