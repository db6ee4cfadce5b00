package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-shelter/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))

		// Borrado lógico, sin vuelta atrás
		ar.Post("/{animalID}/deactivate", deactivateAnimalHandler(svc))
	})
}

// animalRequest es el cuerpo para alta y actualización (reemplazo completo).
type animalRequest struct {
	Name         string `json:"name"`
	Sex          Sex    `json:"sex" enums:"Macho,Femea"`
	Coat         string `json:"coat"`
	Age          string `json:"age"`
	OwnerName    string `json:"owner_name"`
	TreatmentFor string `json:"treatment_for"`
	Treatment    string `json:"treatment"`
	FIV          bool   `json:"fiv"`
	FeLV         bool   `json:"felv"`
	Rabies       bool   `json:"rabies"`
	V6           bool   `json:"v6"`
}

// animalResponse representa un animal del refugio devuelto por la API.
type animalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Sex          Sex       `json:"sex"`
	Coat         string    `json:"coat"`
	Age          string    `json:"age"`
	OwnerName    string    `json:"owner_name"`
	TreatmentFor string    `json:"treatment_for"`
	Treatment    string    `json:"treatment"`
	FIV          bool      `json:"fiv"`
	FeLV         bool      `json:"felv"`
	Rabies       bool      `json:"rabies"`
	V6           bool      `json:"v6"`
	Active       bool      `json:"active"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (req animalRequest) input() AnimalInput {
	return AnimalInput{
		Name:         req.Name,
		Sex:          req.Sex,
		Coat:         req.Coat,
		Age:          req.Age,
		OwnerName:    req.OwnerName,
		TreatmentFor: req.TreatmentFor,
		Treatment:    req.Treatment,
		FIV:          req.FIV,
		FeLV:         req.FeLV,
		Rabies:       req.Rabies,
		V6:           req.V6,
	}
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Da de alta un animal activo. El creador queda registrado como el usuario autenticado. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body animalRequest true "Datos del animal; sex es Macho o Femea"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / nombre o sexo inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Add(r.Context(), callerID(r), req.input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales activos
// @Description Devuelve todos los animales activos. Sin usuario autenticado devuelve una lista vacía.
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), callerID(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Description Devuelve el animal si existe y está activo; en cualquier otro caso responde `null`.
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok, err := svc.Get(r.Context(), callerID(r), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Reemplaza todos los atributos editables. También acepta animales desactivados.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Param payload body animalRequest true "Datos completos del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / nombre o sexo inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), callerID(r), chi.URLParam(r, "animalID"), req.input())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deactivateAnimalHandler godoc
// @Summary Desactivar animal
// @Description Borrado lógico. El animal deja de aparecer en lecturas; sus medicaciones se conservan.
// @Tags animals
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/deactivate [post]
func deactivateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Deactivate(r.Context(), callerID(r), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// callerID devuelve "" si no hay claims; el service decide si eso es un 401.
func callerID(r *http.Request) string {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return ""
	}
	return strings.TrimSpace(claims.UserID)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:           a.ID,
		Name:         a.Name,
		Sex:          a.Sex,
		Coat:         a.Coat,
		Age:          a.Age,
		OwnerName:    a.OwnerName,
		TreatmentFor: a.TreatmentFor,
		Treatment:    a.Treatment,
		FIV:          a.FIV,
		FeLV:         a.FeLV,
		Rabies:       a.Rabies,
		V6:           a.V6,
		Active:       a.Active,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// writeJSON está duplicado en cada módulo (animals/medications) a propósito:
// todavía no justifica un paquete de helpers compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
