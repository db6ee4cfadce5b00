package router

import (
	"errors"
	"net/http"

	_ "animal-shelter/docs"
	mem "animal-shelter/internal/adapters/storage/memory"
	"animal-shelter/internal/adapters/storage/sqlstore"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/legacy"
	"animal-shelter/internal/domain/medications"
	"animal-shelter/internal/middleware"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/platform/metrics"
	"animal-shelter/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa SQL (Postgres o SQLite). Si no, in-memory.
	DB *sqlstore.DB

	// Opcional: fuente legacy para /admin/legacy-migration. Con DB se usan
	// sus tablas legacy_*; sin DB, una fuente en memoria vacía.
	Legacy legacy.Source

	Logger  logger.Logger
	Metrics *metrics.Prometheus // nil = sin /metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		animalRepo animals.Repository
		medRepo    medications.Repository
		source     = opts.Legacy
	)

	if opts.DB != nil {
		animalRepo = sqlstore.NewAnimalsRepo(opts.DB)
		medRepo = sqlstore.NewMedicationsRepo(opts.DB)
		if source == nil {
			source = sqlstore.NewLegacyRepo(opts.DB)
		}
	} else {
		animalRepo = mem.NewAnimalRepo()
		medRepo = mem.NewMedicationRepo()
		if source == nil {
			source = mem.NewLegacyRepo()
		}
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	medsSvc := medications.NewService(medRepo, animalsSvc)
	migrator := legacy.NewMigrator(source, animalRepo, medRepo, log)

	if opts.Metrics != nil {
		animalsSvc.SetMetrics(opts.Metrics)
		medsSvc.SetMetrics(opts.Metrics)
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	medications.RegisterRoutes(r, medsSvc)
	legacy.RegisterRoutes(r, migrator)

	return r
}

// ClassifyError etiqueta los errores de dominio para las métricas.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, animals.ErrUnauthenticated), errors.Is(err, medications.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, animals.ErrNotFound), errors.Is(err, medications.ErrNotFound), errors.Is(err, medications.ErrAnimalNotFound):
		return "not_found"
	case errors.Is(err, animals.ErrInvalidInput), errors.Is(err, medications.ErrInvalidInput):
		return "invalid"
	default:
		var partial *medications.PartialApplyError
		if errors.As(err, &partial) {
			return "partial"
		}
		return "error"
	}
}
