package main

import (
	"errors"
	"fmt"
	"os"

	"animal-shelter/internal/adapters/auth/idp"
	"animal-shelter/internal/adapters/auth/jwtauth"
	"animal-shelter/internal/adapters/storage/sqlstore"
	"animal-shelter/internal/config"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/ports/auth"

	"github.com/spf13/cobra"
)

// @title Animal Shelter API
// @version 1.0
// @description Fichas de animales del refugio y agenda de medicación.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "shelter",
		Short:         "Animal shelter API and maintenance tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "archivo .env opcional (las variables de entorno tienen prioridad)")

	load := func() (*config.Config, logger.Logger, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			return nil, nil, err
		}
		log := logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
		})
		return cfg, log, nil
	}

	root.AddCommand(serveCmd(load))
	root.AddCommand(dbCmd(load))
	root.AddCommand(legacyCmd(load))
	root.AddCommand(tokenCmd(load))
	return root
}

type loader func() (*config.Config, logger.Logger, error)

var errNoDatabase = errors.New("DB_DRIVER=memory has no database; use postgres or sqlite")

// openDB abre la base configurada y aplica migraciones pendientes.
// Devuelve nil con DB_DRIVER=memory.
func openDB(cfg *config.Config, log logger.Logger) (*sqlstore.DB, error) {
	var dialect sqlstore.Dialect
	switch cfg.DBDriver {
	case config.DBDriverMemory:
		return nil, nil
	case config.DBDriverPostgres:
		dialect = sqlstore.Postgres
	case config.DBDriverSQLite:
		dialect = sqlstore.SQLite
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := sqlstore.Open(dialect, cfg.DBDSN, sqlstore.Options{MaxOpenConns: cfg.DBMaxOpenConns})
	if err != nil {
		return nil, err
	}
	n, err := sqlstore.Migrate(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready", map[string]any{"driver": cfg.DBDriver, "migrations_applied": n})
	return db, nil
}

// newVerifier elige el verificador según AUTH_MODE. nil = modo dev.
func newVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeDev:
		return nil, nil
	case config.AuthModeJWT:
		v, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
		if err != nil {
			return nil, err
		}
		return v, nil
	case config.AuthModeIDP:
		c, err := idp.NewClient(idp.Config{
			BaseURL: cfg.IDPBaseURL,
			APIKey:  cfg.IDPAPIKey,
			Timeout: cfg.IDPTimeout,
		})
		if err != nil {
			return nil, err
		}
		return idp.NewVerifier(c), nil
	default:
		return nil, fmt.Errorf("unknown AUTH_MODE %q", cfg.AuthMode)
	}
}
