package healthrecords

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"livestock-breeding/internal/domain/animals"
	"livestock-breeding/internal/domain/healthrecords/details"
	"livestock-breeding/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	r.Route("/animals/{animalID}/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc, animalsSvc))
		hr.Get("/", listRecordsHandler(svc, animalsSvc))

		hr.Post("/{recordID}/void", voidRecordHandler(svc, animalsSvc))
	})
}

// createRecordRequest es el cuerpo para registrar una entrada clínica.
type createRecordRequest struct {
	Type       RecordType `json:"type" enums:"VACCINE,ILLNESS,INJURY,TREATMENT,DEWORMING,CHECKUP,WEIGHT_RECORDED,NOTE"`
	OccurredAt string     `json:"occurred_at"` // RFC3339
	Title      string     `json:"title"`
	Notes      string     `json:"notes"`

	Veterinarian string `json:"veterinarian"`

	// Opcional: propaga un nuevo estado de salud al animal.
	NewHealthStatus string `json:"new_health_status"`

	// Detalles opcionales según el tipo.
	Measurement *details.Measurement `json:"measurement"`
	Vaccination *details.Vaccination `json:"vaccination"`
	Medication  *details.Medication  `json:"medication"`
}

type recordResponse struct {
	ID         string       `json:"id"`
	AnimalID   string       `json:"animal_id"`
	Type       RecordType   `json:"type"`
	OccurredAt time.Time    `json:"occurred_at"`
	RecordedAt time.Time    `json:"recorded_at"`
	Title      string       `json:"title"`
	Notes      string       `json:"notes"`
	Status     RecordStatus `json:"status"`

	Veterinarian    string `json:"veterinarian,omitempty"`
	NewHealthStatus string `json:"new_health_status,omitempty"`

	Measurement *details.Measurement `json:"measurement,omitempty"`
	Vaccination *details.Vaccination `json:"vaccination,omitempty"`
	Medication  *details.Medication  `json:"medication,omitempty"`
}

func createRecordHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := authorizedAnimal(w, r, animalsSvc)
		if !ok {
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			http.Error(w, "occurred_at must be RFC3339", http.StatusBadRequest)
			return
		}

		h, err := svc.Create(r.Context(), a.ID, CreateInput{
			Type:            req.Type,
			OccurredAt:      t,
			Title:           req.Title,
			Notes:           req.Notes,
			Veterinarian:    req.Veterinarian,
			NewHealthStatus: animals.HealthStatus(strings.TrimSpace(req.NewHealthStatus)),
			Measurement:     req.Measurement,
			Vaccination:     req.Vaccination,
			Medication:      req.Medication,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Propagar el nuevo estado de salud al animal, si se pidió.
		// El historial ya quedó escrito aunque la propagación falle.
		if h.NewHealthStatus != "" {
			if _, err := animalsSvc.UpdateHealthStatus(r.Context(), a.ID, h.NewHealthStatus); err != nil {
				http.Error(w, "invalid new_health_status", http.StatusBadRequest)
				return
			}
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(h))
	}
}

func listRecordsHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := authorizedAnimal(w, r, animalsSvc)
		if !ok {
			return
		}

		filter := ListFilter{}
		q := r.URL.Query()

		if raw := strings.TrimSpace(q.Get("type")); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					filter.Types = append(filter.Types, RecordType(part))
				}
			}
		}
		if raw := strings.TrimSpace(q.Get("from")); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "from must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.From = &t
		}
		if raw := strings.TrimSpace(q.Get("to")); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				http.Error(w, "to must be RFC3339", http.StatusBadRequest)
				return
			}
			filter.To = &t
		}
		filter.Query = q.Get("q")
		if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		items, err := svc.ListByAnimal(r.Context(), a.ID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, h := range items {
			out = append(out, toRecordResponse(h))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func voidRecordHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := authorizedAnimal(w, r, animalsSvc)
		if !ok {
			return
		}

		recordID := chi.URLParam(r, "recordID")
		h, err := svc.GetByID(r.Context(), recordID)
		if err != nil || h.AnimalID != a.ID {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}

		voided, err := svc.Void(r.Context(), recordID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(voided))
	}
}

func authorizedAnimal(w http.ResponseWriter, r *http.Request, animalsSvc *animals.Service) (animals.Animal, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return animals.Animal{}, false
	}

	a, err := animalsSvc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
	if err != nil {
		http.Error(w, "animal not found", http.StatusNotFound)
		return animals.Animal{}, false
	}

	if a.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return animals.Animal{}, false
	}

	return a, true
}

func toRecordResponse(h HealthRecord) recordResponse {
	return recordResponse{
		ID:              h.ID,
		AnimalID:        h.AnimalID,
		Type:            h.Type,
		OccurredAt:      h.OccurredAt,
		RecordedAt:      h.RecordedAt,
		Title:           h.Title,
		Notes:           h.Notes,
		Status:          h.Status,
		Veterinarian:    h.Veterinarian,
		NewHealthStatus: string(h.NewHealthStatus),
		Measurement:     h.Measurement,
		Vaccination:     h.Vaccination,
		Medication:      h.Medication,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
