package breeding

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"livestock-breeding/internal/domain/animals"
	"livestock-breeding/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	r.Route("/breeding", func(br chi.Router) {
		br.Post("/", createRecordHandler(svc, animalsSvc))
		br.Get("/", listRecordsHandler(svc))
		br.Get("/upcoming", upcomingBirthsHandler(svc))

		br.Get("/{recordID}", getRecordHandler(svc))
		br.Patch("/{recordID}", updateRecordHandler(svc))

		br.Post("/{recordID}/confirm", confirmPregnancyHandler(svc))
		br.Post("/{recordID}/birth", recordBirthHandler(svc))
		br.Post("/{recordID}/recalculate", recalculateDueDateHandler(svc, animalsSvc))
	})
}

// createRecordRequest es el cuerpo para registrar una monta.
type createRecordRequest struct {
	MotherID     string `json:"mother_id"`
	FatherID     string `json:"father_id"`
	BreedingDate string `json:"breeding_date"` // YYYY-MM-DD
	Method       Method `json:"method" enums:"natural,artificial_insemination,embryo_transfer"`
	Status       Status `json:"status"` // opcional: planned (default) o completed

	ExpectedDueDate string `json:"expected_due_date"` // YYYY-MM-DD opcional

	Veterinarian string   `json:"veterinarian"`
	Cost         *float64 `json:"cost"`
	Notes        string   `json:"notes"`
}

type updateRecordRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	MotherID     *string `json:"mother_id"`
	FatherID     *string `json:"father_id"`
	BreedingDate *string `json:"breeding_date"` // YYYY-MM-DD
	Method       *Method `json:"method"`
	Status       *Status `json:"status"`

	PregnancyConfirmed *bool `json:"pregnancy_confirmed"`

	OffspringCount *int `json:"offspring_count"`

	Veterinarian *string  `json:"veterinarian"`
	Cost         *float64 `json:"cost"`
	Notes        *string  `json:"notes"`
}

type recordBirthRequest struct {
	BirthDate      string `json:"birth_date"` // YYYY-MM-DD
	OffspringCount int    `json:"offspring_count"`
}

// recordResponse representa una monta devuelta por la API.
type recordResponse struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`

	MotherID string `json:"mother_id"`
	FatherID string `json:"father_id"`

	BreedingDate string `json:"breeding_date"`
	Method       Method `json:"method"`
	Status       Status `json:"status"`

	ExpectedDueDate           string `json:"expected_due_date,omitempty"`
	ActualBirthDate           string `json:"actual_birth_date,omitempty"`
	PregnancyConfirmed        bool   `json:"pregnancy_confirmed"`
	PregnancyConfirmationDate string `json:"pregnancy_confirmation_date,omitempty"`

	// Diferencia en días entre monta y parto real; negativa si las fechas
	// registradas están invertidas (señal de calidad de datos, no se oculta).
	GestationDurationDays *int `json:"gestation_duration_days,omitempty"`

	OffspringCount int `json:"offspring_count"`

	Veterinarian string   `json:"veterinarian,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	Notes        string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type recalculateResponse struct {
	Record recordResponse `json:"record"`
	// Etiqueta legible de la especie usada: "bovino (283 días)";
	// para especie desconocida, la entrada tal cual.
	SpeciesLabel string `json:"species_label"`
}

// createRecordHandler godoc
// @Summary Registrar monta
// @Description Crea un registro de monta entre dos animales del padrón. Si no viene expected_due_date, se precalcula desde la especie de la madre cuando la gestación es conocida.
// @Tags breeding
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Datos de la monta; fechas en YYYY-MM-DD"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / fechas inválidas / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "mother not found / father not found"
// @Router /breeding [post]
func createRecordHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		breedingDate, err := parseDate(req.BreedingDate)
		if err != nil || breedingDate == nil {
			http.Error(w, "breeding_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		mother, err := animalsSvc.GetByID(r.Context(), req.MotherID)
		if err != nil || mother.OwnerUserID != claims.UserID {
			http.Error(w, "mother not found", http.StatusNotFound)
			return
		}
		father, err := animalsSvc.GetByID(r.Context(), req.FatherID)
		if err != nil || father.OwnerUserID != claims.UserID {
			http.Error(w, "father not found", http.StatusNotFound)
			return
		}

		var expected *time.Time
		if strings.TrimSpace(req.ExpectedDueDate) != "" {
			expected, err = parseDate(req.ExpectedDueDate)
			if err != nil {
				http.Error(w, "expected_due_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
		} else if due, ok := DueDate(*breedingDate, mother.Species); ok {
			expected = &due
		}

		rec, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			MotherID:        mother.ID,
			FatherID:        father.ID,
			BreedingDate:    *breedingDate,
			Method:          req.Method,
			Status:          req.Status,
			ExpectedDueDate: expected,
			Veterinarian:    req.Veterinarian,
			Cost:            req.Cost,
			Notes:           req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		motherID := strings.TrimSpace(r.URL.Query().Get("mother_id"))

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			if motherID != "" && rec.MotherID != motherID {
				continue
			}
			out = append(out, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// upcomingBirthsHandler alimenta el calendario: partos probables dentro
// de la ventana ?days= (default 30).
func upcomingBirthsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		days := 30
		if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "days must be a positive integer", http.StatusBadRequest)
				return
			}
			days = n
		}

		items, err := svc.UpcomingBirths(r.Context(), claims.UserID, days)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := authorizedRecord(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := authorizedRecord(w, r, svc)
		if !ok {
			return
		}

		// Para soportar "campo": null en fechas, detectamos presencia
		// decodificando primero a raw (mismo patrón que el PATCH de animales).
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateRecordRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		in := UpdateInput{
			MotherID:           req.MotherID,
			FatherID:           req.FatherID,
			Method:             req.Method,
			Status:             req.Status,
			PregnancyConfirmed: req.PregnancyConfirmed,
			OffspringCount:     req.OffspringCount,
			Veterinarian:       req.Veterinarian,
			Cost:               req.Cost,
			Notes:              req.Notes,
		}

		if req.BreedingDate != nil {
			d, err := parseDate(*req.BreedingDate)
			if err != nil || d == nil {
				http.Error(w, "breeding_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			in.BreedingDate = d
		}

		for _, f := range []struct {
			key    string
			target *patchDate
		}{
			{"expected_due_date", &in.ExpectedDueDate},
			{"actual_birth_date", &in.ActualBirthDate},
			{"pregnancy_confirmation_date", &in.PregnancyConfirmationDate},
		} {
			v, exists := raw[f.key]
			if !exists {
				continue
			}
			if string(v) == "null" {
				*f.target = PatchDate(nil)
				continue
			}
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				http.Error(w, f.key+" must be YYYY-MM-DD or null", http.StatusBadRequest)
				return
			}
			d, err := parseDate(s)
			if err != nil {
				http.Error(w, f.key+" must be YYYY-MM-DD or null", http.StatusBadRequest)
				return
			}
			*f.target = PatchDate(d)
		}

		updated, err := svc.Update(r.Context(), rec.ID, in)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "record not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(updated))
	}
}

func confirmPregnancyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := authorizedRecord(w, r, svc)
		if !ok {
			return
		}

		updated, err := svc.ConfirmPregnancy(r.Context(), rec.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(updated))
	}
}

func recordBirthHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := authorizedRecord(w, r, svc)
		if !ok {
			return
		}

		var req recordBirthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		bd, err := parseDate(req.BirthDate)
		if err != nil || bd == nil {
			http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		updated, err := svc.RecordBirth(r.Context(), rec.ID, RecordBirthInput{
			BirthDate:      *bd,
			OffspringCount: req.OffspringCount,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(updated))
	}
}

// recalculateDueDateHandler godoc
// @Summary Recalcular fecha probable de parto
// @Description Acción manual "Recalcular según especie": sobreescribe expected_due_date con breeding_date + gestación de la especie de la madre. Especie desconocida (o madre ya no resolvible) limpia la fecha en vez de fallar. Idempotente.
// @Tags breeding
// @Produce json
// @Param recordID path string true "ID de la monta"
// @Success 200 {object} recalculateResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "record not found"
// @Router /breeding/{recordID}/recalculate [post]
func recalculateDueDateHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, ok := authorizedRecord(w, r, svc)
		if !ok {
			return
		}

		// Madre no resolvible => especie desconocida => se limpia la fecha.
		species := ""
		if mother, err := animalsSvc.GetByID(r.Context(), rec.MotherID); err == nil {
			species = mother.Species
		}

		updated, err := svc.RecalculateDueDate(r.Context(), rec.ID, species)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, recalculateResponse{
			Record:       toRecordResponse(updated),
			SpeciesLabel: SpeciesDisplayLabel(species),
		})
	}
}

// authorizedRecord resuelve {recordID} y exige que el dueño del registro
// sea el usuario autenticado.
func authorizedRecord(w http.ResponseWriter, r *http.Request, svc *Service) (Record, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Record{}, false
	}

	rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return Record{}, false
	}

	if rec.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Record{}, false
	}

	return rec, true
}

func toRecordResponse(r Record) recordResponse {
	out := recordResponse{
		ID:                 r.ID,
		OwnerUserID:        r.OwnerUserID,
		MotherID:           r.MotherID,
		FatherID:           r.FatherID,
		BreedingDate:       formatDate(r.BreedingDate),
		Method:             r.Method,
		Status:             r.Status,
		PregnancyConfirmed: r.PregnancyConfirmed,
		OffspringCount:     r.OffspringCount,
		Veterinarian:       r.Veterinarian,
		Cost:               r.Cost,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.ExpectedDueDate != nil {
		out.ExpectedDueDate = formatDate(*r.ExpectedDueDate)
	}
	if r.ActualBirthDate != nil {
		out.ActualBirthDate = formatDate(*r.ActualBirthDate)
		d := GestationDuration(r.BreedingDate, *r.ActualBirthDate)
		out.GestationDurationDays = &d
	}
	if r.PregnancyConfirmationDate != nil {
		out.PregnancyConfirmationDate = formatDate(*r.PregnancyConfirmationDate)
	}

	return out
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// writeJSON está duplicado intencionalmente en handlers de distintos
// módulos; si se repite en más lugares, recién conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
