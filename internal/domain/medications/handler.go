package medications

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"animal-shelter/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals/{animalID}/medications", func(ar chi.Router) {
		ar.Post("/", createMedicationHandler(svc))
		ar.Get("/", listByAnimalHandler(svc))
		ar.Get("/groups", listDisplayGroupsHandler(svc))
	})

	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listByDateHandler(svc))
		mr.Get("/schedule", dailyScheduleHandler(svc))

		mr.Post("/batch/update", batchUpdateHandler(svc))
		mr.Post("/batch/delete", batchDeleteHandler(svc))
		mr.Post("/batch/administer", batchAdministerHandler(svc))

		mr.Post("/{medicationID}/administer", administerHandler(svc))
		mr.Post("/{medicationID}/undo", undoHandler(svc))
		mr.Delete("/{medicationID}", deleteHandler(svc))
	})

	r.Route("/medication-groups/{groupID}", func(gr chi.Router) {
		gr.Get("/", listByGroupHandler(svc))
		gr.Delete("/", deleteGroupHandler(svc))
	})
}

// createMedicationRequest agenda una dosis única o, con end_date, una por día.
// Con second_dose_time se crea una segunda serie a otra hora, unida por group_id.
type createMedicationRequest struct {
	Date           string  `json:"date"` // YYYY-MM-DD (inicio si hay end_date)
	EndDate        string  `json:"end_date"`
	Time           string  `json:"time"` // HH:MM
	SecondDoseTime string  `json:"second_dose_time"`
	Medication     string  `json:"medication"`
	Dose           string  `json:"dose"`
	Observations   *string `json:"observations"`
	GroupID        *string `json:"group_id"`
}

type createMedicationResponse struct {
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	IDs     []string             `json:"ids"`
	GroupID *string              `json:"group_id,omitempty"`
	Records []medicationResponse `json:"records"`
}

// medicationResponse representa una dosis agendada.
type medicationResponse struct {
	ID             string    `json:"id"`
	AnimalID       string    `json:"animal_id"`
	Date           string    `json:"date"`
	EndDate        *string   `json:"end_date,omitempty"`
	Time           string    `json:"time"`
	Medication     string    `json:"medication"`
	Dose           string    `json:"dose"`
	Administered   bool      `json:"administered"`
	Observations   *string   `json:"observations,omitempty"`
	AdministeredBy *string   `json:"administered_by,omitempty"`
	GroupID        *string   `json:"group_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type animalSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
}

type medicationWithAnimalResponse struct {
	medicationResponse
	Animal animalSummary `json:"animal"`
}

type displayGroupResponse struct {
	Key     string               `json:"key"`
	GroupID string               `json:"group_id,omitempty"`
	IsGroup bool                 `json:"is_group"`
	Records []medicationResponse `json:"records"`
}

type timeSlotResponse struct {
	Time         string                         `json:"time"`
	Total        int                            `json:"total"`
	Administered int                            `json:"administered"`
	Collapsed    bool                           `json:"collapsed"`
	Records      []medicationWithAnimalResponse `json:"records"`
}

type scheduleResponse struct {
	Date        string             `json:"date"`
	Slots       []timeSlotResponse `json:"slots"`
	LastDoseIDs []string           `json:"last_dose_ids"`
}

type administerRequest struct {
	Observations *string `json:"observations"`
}

type batchRequest struct {
	IDs []string `json:"ids"`
}

type batchUpdateRequest struct {
	IDs          []string `json:"ids"`
	Medication   *string  `json:"medication"`
	Dose         *string  `json:"dose"`
	Time         *string  `json:"time"`
	Observations *string  `json:"observations"`
}

type batchAdministerRequest struct {
	IDs          []string `json:"ids"`
	Observations *string  `json:"observations"`
}

type updatedResponse struct {
	Updated int `json:"updated"`
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}

// createMedicationHandler godoc
// @Summary Agendar medicación
// @Description Agenda una dosis para un animal activo. Si viene `end_date` crea un registro por día entre `date` y `end_date` (si `date` > `end_date` no crea nada). `second_dose_time` agrega una segunda serie a otra hora con el mismo `group_id`. Todo se valida antes de escribir: un 400/404 no deja registros. Un rango admite hasta 366 días.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Param payload body createMedicationRequest true "Fechas YYYY-MM-DD, horas HH:MM"
// @Success 201 {object} createMedicationResponse
// @Failure 400 {string} string "invalid json / fecha u hora inválidas"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		times := []string{req.Time}
		if strings.TrimSpace(req.SecondDoseTime) != "" {
			times = append(times, req.SecondDoseTime)
		}

		created, err := svc.AddOrder(r.Context(), callerID(r), OrderInput{
			AnimalID:     chi.URLParam(r, "animalID"),
			StartDate:    req.Date,
			EndDate:      req.EndDate,
			Times:        times,
			Medication:   req.Medication,
			Dose:         req.Dose,
			Observations: req.Observations,
			GroupID:      req.GroupID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		resp := createMedicationResponse{
			Success: true,
			Count:   len(created),
			IDs:     make([]string, 0, len(created)),
			Records: toMedicationResponses(created),
		}
		for _, m := range created {
			resp.IDs = append(resp.IDs, m.ID)
		}
		if len(created) > 0 {
			resp.GroupID = created[0].GroupID
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// listByAnimalHandler godoc
// @Summary Listar medicaciones de un animal
// @Description Registros del animal, fecha más reciente primero. Vacío si el animal no existe, está inactivo o no hay usuario.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Success 200 {array} medicationResponse
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/medications [get]
func listByAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), callerID(r), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponses(items))
	}
}

// listDisplayGroupsHandler godoc
// @Summary Medicaciones de un animal agrupadas por orden
// @Description Agrupa por group_id para edición en lote; los registros sin grupo quedan como `individual-<id>`.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Success 200 {array} displayGroupResponse
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/medications/groups [get]
func listDisplayGroupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByAnimal(r.Context(), callerID(r), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		groups := GroupForDisplay(items)
		out := make([]displayGroupResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, displayGroupResponse{
				Key:     g.Key,
				GroupID: g.GroupID,
				IsGroup: g.IsGroup(),
				Records: toMedicationResponses(g.Records),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listByDateHandler godoc
// @Summary Medicaciones del día
// @Description Registros de la fecha unidos con su animal (solo activos), ordenados por hora.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string true "Fecha YYYY-MM-DD"
// @Success 200 {array} medicationWithAnimalResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Failure 500 {string} string "internal error"
// @Router /medications [get]
func listByDateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByDate(r.Context(), callerID(r), r.URL.Query().Get("date"))
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toWithAnimalResponses(items))
	}
}

// dailyScheduleHandler godoc
// @Summary Vista diaria por franja horaria
// @Description Agrupa las medicaciones del día por hora con su progreso. Las franjas cuya hora ya pasó vienen colapsadas. `last_dose_ids` marca la última dosis del último día de tratamiento de cada animal.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param date query string true "Fecha YYYY-MM-DD"
// @Success 200 {object} scheduleResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Failure 500 {string} string "internal error"
// @Router /medications/schedule [get]
func dailyScheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.DailySchedule(r.Context(), callerID(r), r.URL.Query().Get("date"), time.Now())
		if err != nil {
			writeQueryError(w, err)
			return
		}

		out := scheduleResponse{
			Date:        view.Date,
			Slots:       make([]timeSlotResponse, 0, len(view.Slots)),
			LastDoseIDs: view.LastDoseIDs,
		}
		if out.LastDoseIDs == nil {
			out.LastDoseIDs = []string{}
		}
		for _, s := range view.Slots {
			out.Slots = append(out.Slots, timeSlotResponse{
				Time:         s.Time,
				Total:        s.Total,
				Administered: s.Administered,
				Collapsed:    s.Collapsed,
				Records:      toWithAnimalResponses(s.Records),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listByGroupHandler godoc
// @Summary Medicaciones de una orden
// @Description Todos los registros que comparten group_id, ordenados por fecha y hora.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param groupID path string true "ID de grupo"
// @Success 200 {array} medicationWithAnimalResponse
// @Failure 500 {string} string "internal error"
// @Router /medication-groups/{groupID} [get]
func listByGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByGroup(r.Context(), callerID(r), chi.URLParam(r, "groupID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toWithAnimalResponses(items))
	}
}

// deleteGroupHandler godoc
// @Summary Borrar una orden completa
// @Description Borra todos los registros del group_id. Grupo inexistente: `{"deleted":0}`.
// @Tags medications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param groupID path string true "ID de grupo"
// @Success 200 {object} deletedResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medication-groups/{groupID} [delete]
func deleteGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.BatchDeleteByGroup(r.Context(), callerID(r), chi.URLParam(r, "groupID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
	}
}

// administerHandler godoc
// @Summary Marcar como administrada
// @Description Marca la dosis como dada por el usuario autenticado. Las observaciones reemplazan a las anteriores.
// @Tags medications
// @Accept json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID del registro"
// @Param payload body administerRequest false "Observaciones opcionales"
// @Success 204
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found / animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/{medicationID}/administer [post]
func administerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req administerRequest
		if err := decodeOptional(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.MarkAdministered(r.Context(), callerID(r), chi.URLParam(r, "medicationID"), req.Observations); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// undoHandler godoc
// @Summary Deshacer administración
// @Description Vuelve la dosis a pendiente y borra quién la dio y las observaciones.
// @Tags medications
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID del registro"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found / animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/{medicationID}/undo [post]
func undoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Undo(r.Context(), callerID(r), chi.URLParam(r, "medicationID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteHandler godoc
// @Summary Borrar dosis
// @Tags medications
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param medicationID path string true "ID del registro"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found / animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/{medicationID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), callerID(r), chi.URLParam(r, "medicationID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// batchUpdateHandler godoc
// @Summary Edición en lote
// @Description Aplica los campos enviados a todos los ids. Primero valida todos; si alguno falla no modifica nada.
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body batchUpdateRequest true "ids y campos a cambiar"
// @Success 200 {object} updatedResponse
// @Failure 400 {string} string "invalid json / sin campos / hora inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found / animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/batch/update [post]
func batchUpdateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.BatchUpdate(r.Context(), callerID(r), req.IDs, Patch{
			Medication:   req.Medication,
			Dose:         req.Dose,
			Time:         req.Time,
			Observations: req.Observations,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

// batchDeleteHandler godoc
// @Summary Borrado en lote
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body batchRequest true "ids a borrar"
// @Success 200 {object} deletedResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found / animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/batch/delete [post]
func batchDeleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.BatchDelete(r.Context(), callerID(r), req.IDs)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: n})
	}
}

// batchAdministerHandler godoc
// @Summary Administración en lote
// @Tags medications
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body batchAdministerRequest true "ids y observaciones comunes"
// @Success 200 {object} updatedResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found / animal not found"
// @Failure 500 {string} string "internal error"
// @Router /medications/batch/administer [post]
func batchAdministerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchAdministerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		n, err := svc.BatchMarkAdministered(r.Context(), callerID(r), req.IDs, req.Observations)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
	}
}

func callerID(r *http.Request) string {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return ""
	}
	return strings.TrimSpace(claims.UserID)
}

// decodeOptional acepta body vacío.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrAnimalNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medication not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Las consultas nunca responden 401; solo fallan por fecha inválida o storage.
func writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toMedicationResponse(m MedicationRecord) medicationResponse {
	return medicationResponse{
		ID:             m.ID,
		AnimalID:       m.AnimalID,
		Date:           m.Date,
		EndDate:        m.EndDate,
		Time:           m.Time,
		Medication:     m.Medication,
		Dose:           m.Dose,
		Administered:   m.Administered,
		Observations:   m.Observations,
		AdministeredBy: m.AdministeredBy,
		GroupID:        m.GroupID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMedicationResponses(items []MedicationRecord) []medicationResponse {
	out := make([]medicationResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMedicationResponse(m))
	}
	return out
}

func toWithAnimalResponses(items []MedicationWithAnimal) []medicationWithAnimalResponse {
	out := make([]medicationWithAnimalResponse, 0, len(items))
	for _, m := range items {
		out = append(out, medicationWithAnimalResponse{
			medicationResponse: toMedicationResponse(m.MedicationRecord),
			Animal: animalSummary{
				ID:        m.Animal.ID,
				Name:      m.Animal.Name,
				OwnerName: m.Animal.OwnerName,
			},
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
