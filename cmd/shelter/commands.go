package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animal-shelter/internal/adapters/auth/jwtauth"
	"animal-shelter/internal/adapters/storage/sqlstore"
	"animal-shelter/internal/config"
	"animal-shelter/internal/domain/legacy"
	"animal-shelter/internal/platform/metrics"
	"animal-shelter/internal/router"

	"github.com/spf13/cobra"
)

func serveCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			db, err := openDB(cfg, log)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			verifier, err := newVerifier(cfg)
			if err != nil {
				return err
			}

			handler := router.NewRouter(router.Options{
				AuthVerifier: verifier,
				DB:           db,
				Logger:       log,
				Metrics:      metrics.NewPrometheus("shelter", router.ClassifyError),
			})

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      handler,
				ReadTimeout:  cfg.HTTPReadTimeout,
				WriteTimeout: cfg.HTTPWriteTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", map[string]any{
					"addr":      srv.Addr,
					"db_driver": cfg.DBDriver,
					"auth_mode": cfg.AuthMode,
				})
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)
			case <-ctx.Done():
			}

			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func dbCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			db, err := openDB(cfg, log)
			if err != nil {
				return err
			}
			if db == nil {
				return errNoDatabase
			}
			defer db.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "migrations up to date")
			return nil
		},
	})

	var steps int
	rollback := &cobra.Command{
		Use:   "rollback",
		Short: "Revert the last applied migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			db, err := openDB(cfg, log)
			if err != nil {
				return err
			}
			if db == nil {
				return errNoDatabase
			}
			defer db.Close()

			n, err := sqlstore.Rollback(db, steps)
			if err != nil {
				return fmt.Errorf("rollback: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reverted %d migration(s)\n", n)
			return nil
		},
	}
	rollback.Flags().IntVar(&steps, "steps", 1, "cantidad de migraciones a revertir")
	cmd.AddCommand(rollback)

	return cmd
}

func legacyCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "legacy",
		Short: "Legacy schema tasks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Copy legacy animals and medication records into the current schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			db, err := openDB(cfg, log)
			if err != nil {
				return err
			}
			if db == nil {
				return errNoDatabase
			}
			defer db.Close()

			m := legacy.NewMigrator(
				sqlstore.NewLegacyRepo(db),
				sqlstore.NewAnimalsRepo(db),
				sqlstore.NewMedicationsRepo(db),
				log,
			)
			rep, err := m.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("legacy migration: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	})

	return cmd
}

func tokenCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Session tokens for AUTH_MODE=jwt",
	}

	var (
		userID string
		email  string
		ttl    time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a caregiver token with AUTH_JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := load()
			if err != nil {
				return err
			}
			if cfg.AuthMode != config.AuthModeJWT {
				return fmt.Errorf("token issue requires AUTH_MODE=jwt (got %q)", cfg.AuthMode)
			}
			v, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTIssuer)
			if err != nil {
				return err
			}
			tok, err := v.Issue(userID, email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	issue.Flags().StringVar(&userID, "user", "", "id del cuidador (sub)")
	issue.Flags().StringVar(&email, "email", "", "email opcional")
	issue.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "vigencia del token")
	_ = issue.MarkFlagRequired("user")
	cmd.AddCommand(issue)

	return cmd
}
