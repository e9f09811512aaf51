package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tu-usuario/warehouse-api/pkg/config"
	"github.com/tu-usuario/warehouse-api/pkg/logger"
)

// Herramienta de migraciones de esquema. Usa los archivos SQL versionados de
// migrations/ y registra la versión aplicada en la tabla schema_migrations.
func main() {
	var (
		action = flag.String("action", "up", "Acción: up, down, version, force")
		steps  = flag.Int("steps", 1, "Pasos para la migración down")
		target = flag.Uint("target", 0, "Versión objetivo para version o force")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	m, closeFn, err := newMigrate(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}
	defer closeFn()

	switch *action {
	case "up":
		log.Info().Msg("aplicando migraciones pendientes...")
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migración up")
		}
		log.Info().Msg("migraciones al día")

	case "down":
		log.Info().Int("steps", *steps).Msg("revirtiendo migraciones...")
		if err := m.Steps(-*steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migración down")
		}
		log.Info().Msg("migraciones revertidas")

	case "version":
		if *target == 0 {
			log.Fatal().Msg("se requiere -target para la acción version")
		}
		log.Info().Uint("target", *target).Msg("migrando a versión...")
		if err := m.Migrate(*target); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migración a versión")
		}
		log.Info().Msg("versión alcanzada")

	case "force":
		// force permite versión 0 (estado sin migraciones) y limpia el estado dirty.
		log.Warn().Uint("target", *target).Msg("forzando versión de migración")
		if err := m.Force(int(*target)); err != nil {
			log.Fatal().Err(err).Msg("forzar versión")
		}
		log.Info().Msg("versión forzada")

	default:
		fmt.Printf("Uso: %s -action=[up|down|version|force] [opciones]\n", os.Args[0])
		os.Exit(1)
	}
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, func(), error) {
	db, err := sql.Open("pgx", cfg.DB.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("abrir conexión: %w", err)
	}
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("driver de migraciones: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(
		"file://"+cfg.Migrations.Dir, "pgx", driver,
	)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("instancia de migraciones: %w", err)
	}
	return m, func() { m.Close() }, nil
}
