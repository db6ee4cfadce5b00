package legacy

import (
	"encoding/json"
	"net/http"
	"strings"

	"animal-shelter/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, m *Migrator) {
	r.Post("/admin/legacy-migration", runMigrationHandler(m))
}

// runMigrationHandler godoc
// @Summary Migrar tablas legacy
// @Description Copia animales y medicaciones del esquema viejo al nuevo. No es idempotente: correrla dos veces duplica datos. Los registros sin animal resoluble se saltean y se cuentan en `records_skipped`.
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} Report
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "migration failed"
// @Router /admin/legacy-migration [post]
func runMigrationHandler(m *Migrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := m.Run(r.Context())
		if err != nil {
			m.log.Error("legacy migration failed", map[string]any{
				"error":          err,
				"user_id":        claims.UserID,
				"animals_copied": rep.AnimalsCopied,
				"records_copied": rep.RecordsCopied,
			})
			http.Error(w, "migration failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rep)
	}
}
