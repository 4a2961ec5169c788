package animals

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"livestock-breeding/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// EffectiveStatusResolver pliega la información de preñez (montas
// abiertas) en el estado mostrado. El router lo compone desde el módulo
// de breeding para no invertir la dirección de imports; los handlers
// solo lo consumen. nil => se muestra el estado guardado tal cual.
type EffectiveStatusResolver func(ctx context.Context, ownerUserID string, roster []Animal) (map[string]HealthStatus, error)

func RegisterRoutes(r chi.Router, svc *Service, effStatus EffectiveStatusResolver) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc, effStatus))

		ar.Get("/{animalID}", getAnimalHandler(svc, effStatus))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))

		ar.Get("/{animalID}/pedigree", pedigreeHandler(svc))
	})
}

// ancestryPayload son los 14 slots de pedigrí tal como viajan en JSON.
// Cada valor puede ser un ID de animal registrado o texto libre.
type ancestryPayload struct {
	Mother string `json:"mother"`
	Father string `json:"father"`

	MaternalGrandmother string `json:"maternal_grandmother"`
	MaternalGrandfather string `json:"maternal_grandfather"`
	PaternalGrandmother string `json:"paternal_grandmother"`
	PaternalGrandfather string `json:"paternal_grandfather"`

	MaternalGrandmotherMother string `json:"maternal_grandmother_mother"`
	MaternalGrandmotherFather string `json:"maternal_grandmother_father"`
	MaternalGrandfatherMother string `json:"maternal_grandfather_mother"`
	MaternalGrandfatherFather string `json:"maternal_grandfather_father"`
	PaternalGrandmotherMother string `json:"paternal_grandmother_mother"`
	PaternalGrandmotherFather string `json:"paternal_grandmother_father"`
	PaternalGrandfatherMother string `json:"paternal_grandfather_mother"`
	PaternalGrandfatherFather string `json:"paternal_grandfather_father"`
}

type createAnimalRequest struct {
	Tag          string           `json:"tag"`
	Name         string           `json:"name"`
	Species      string           `json:"species"`
	Gender       string           `json:"gender"`
	Breed        string           `json:"breed"`
	Color        string           `json:"color"`
	HealthStatus string           `json:"health_status"`
	BirthDate    string           `json:"birth_date"` // YYYY-MM-DD opcional
	Weight       *float64         `json:"weight"`
	Ancestry     *ancestryPayload `json:"ancestry"`
	Notes        string           `json:"notes"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Tag          *string          `json:"tag"`
	Name         *string          `json:"name"`
	Species      *string          `json:"species"`
	Gender       *string          `json:"gender"`
	Breed        *string          `json:"breed"`
	Color        *string          `json:"color"`
	HealthStatus *string          `json:"health_status"`
	BirthDate    *string          `json:"birth_date"` // YYYY-MM-DD; null limpia
	Weight       *float64         `json:"weight"`     // null limpia
	Ancestry     *ancestryPayload `json:"ancestry"`   // si viene, reemplaza todo el bloque
	Notes        *string          `json:"notes"`
}

// patchDate detecta presencia del campo para diferenciar "null" de
// "no enviado" (mismo truco que birth_date en el PATCH del perfil).
type patchDate struct {
	Present bool
	Value   *time.Time
}

type patchWeight struct {
	Present bool
	Value   *float64
}

// animalResponse representa un animal devuelto por la API.
// health_status es lo guardado; effective_status es lo que ve el usuario
// después de plegar las montas abiertas (puede ser pregnant-*).
type animalResponse struct {
	ID          string `json:"id"`
	OwnerUserID string `json:"owner_user_id"`

	Tag     string `json:"tag,omitempty"`
	Name    string `json:"name"`
	Species string `json:"species,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Breed   string `json:"breed,omitempty"`
	Color   string `json:"color,omitempty"`

	HealthStatus    HealthStatus `json:"health_status"`
	EffectiveStatus HealthStatus `json:"effective_status"`

	BirthDate string   `json:"birth_date,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`

	Ancestry ancestryPayload `json:"ancestry"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ancestorSlotResponse es un slot del árbol genealógico listo para
// renderizar. recorded=false => placeholder, nunca error.
type ancestorSlotResponse struct {
	DisplayName  string `json:"display_name"`
	Recorded     bool   `json:"recorded"`
	IsRegistered bool   `json:"is_registered"`
	AnimalID     string `json:"animal_id,omitempty"`
}

type pedigreeResponse struct {
	Animal ancestorSlotResponse `json:"animal"`

	Mother ancestorSlotResponse `json:"mother"`
	Father ancestorSlotResponse `json:"father"`

	MaternalGrandmother ancestorSlotResponse `json:"maternal_grandmother"`
	MaternalGrandfather ancestorSlotResponse `json:"maternal_grandfather"`
	PaternalGrandmother ancestorSlotResponse `json:"paternal_grandmother"`
	PaternalGrandfather ancestorSlotResponse `json:"paternal_grandfather"`

	MaternalGrandmotherMother ancestorSlotResponse `json:"maternal_grandmother_mother"`
	MaternalGrandmotherFather ancestorSlotResponse `json:"maternal_grandmother_father"`
	MaternalGrandfatherMother ancestorSlotResponse `json:"maternal_grandfather_mother"`
	MaternalGrandfatherFather ancestorSlotResponse `json:"maternal_grandfather_father"`
	PaternalGrandmotherMother ancestorSlotResponse `json:"paternal_grandmother_mother"`
	PaternalGrandmotherFather ancestorSlotResponse `json:"paternal_grandmother_father"`
	PaternalGrandfatherMother ancestorSlotResponse `json:"paternal_grandfather_mother"`
	PaternalGrandfatherFather ancestorSlotResponse `json:"paternal_grandfather_father"`
}

func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		var anc Ancestry
		if req.Ancestry != nil {
			anc = fromAncestryPayload(*req.Ancestry)
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Tag:          req.Tag,
			Name:         req.Name,
			Species:      req.Species,
			Gender:       req.Gender,
			Breed:        req.Breed,
			Color:        req.Color,
			HealthStatus: req.HealthStatus,
			BirthDate:    bd,
			Weight:       req.Weight,
			Ancestry:     anc,
			Notes:        req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a, a.HealthStatus))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista los animales del usuario con el estado efectivo ya plegado. ?status= filtra por estado efectivo ("pregnant" matchea también pregnant-healthy y pregnant-sick); ?species= filtra por especie tal cual está escrita; ?group_by=species devuelve un mapa especie -> animales (sin especie van a "otros").
// @Tags animals
// @Produce json
// @Param status query string false "Filtro por estado efectivo"
// @Param species query string false "Filtro por especie (texto exacto)"
// @Param group_by query string false "species para agrupar"
// @Success 200 {array} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animals [get]
func listAnimalsHandler(svc *Service, effStatus EffectiveStatusResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		roster, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		statuses, err := resolveStatuses(r.Context(), effStatus, claims.UserID, roster)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		if filter := strings.TrimSpace(q.Get("status")); filter != "" {
			filtered := make([]Animal, 0, len(roster))
			for _, a := range roster {
				if MatchesStatusFilter(statuses[a.ID], filter) {
					filtered = append(filtered, a)
				}
			}
			roster = filtered
		}
		if species := strings.TrimSpace(q.Get("species")); species != "" {
			filtered := make([]Animal, 0, len(roster))
			for _, a := range roster {
				if a.Species == species {
					filtered = append(filtered, a)
				}
			}
			roster = filtered
		}

		if strings.TrimSpace(q.Get("group_by")) == "species" {
			grouped := GroupBySpecies(roster)
			out := make(map[string][]animalResponse, len(grouped))
			for key, group := range grouped {
				items := make([]animalResponse, 0, len(group))
				for _, a := range group {
					items = append(items, toAnimalResponse(a, statuses[a.ID]))
				}
				out[key] = items
			}
			writeJSON(w, http.StatusOK, out)
			return
		}

		out := make([]animalResponse, 0, len(roster))
		for _, a := range roster {
			out = append(out, toAnimalResponse(a, statuses[a.ID]))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getAnimalHandler(svc *Service, effStatus EffectiveStatusResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := authorizedAnimal(w, r, svc)
		if !ok {
			return
		}

		statuses, err := resolveStatuses(r.Context(), effStatus, a.OwnerUserID, []Animal{a})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a, statuses[a.ID]))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := authorizedAnimal(w, r, svc)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		// Decodificar a raw primero para detectar birth_date/weight: null.
		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var req updateAnimalRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		bd := patchDate{}
		if v, exists := raw["birth_date"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := time.Parse("2006-01-02", s)
				if err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				bd.Value = &t
			}
		}

		weight := patchWeight{}
		if _, exists := raw["weight"]; exists {
			weight.Present = true
			weight.Value = req.Weight
		}

		in := UpdateProfileInput{
			Tag:          req.Tag,
			Name:         req.Name,
			Species:      req.Species,
			Gender:       req.Gender,
			Breed:        req.Breed,
			Color:        req.Color,
			HealthStatus: req.HealthStatus,
			BirthDate:    bd,
			Weight:       weight,
			Notes:        req.Notes,
		}
		if req.Ancestry != nil {
			anc := fromAncestryPayload(*req.Ancestry)
			in.Ancestry = &anc
		}

		updated, err := svc.UpdateProfile(r.Context(), a.ID, in)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated, updated.HealthStatus))
	}
}

// pedigreeHandler godoc
// @Summary Árbol genealógico
// @Description Devuelve el pedigrí de 3 generaciones. Cada slot es independiente: referencias al padrón se resuelven a "Nombre (arete)", texto libre queda como ancestro externo, y slots vacíos salen como placeholder "no registrado" (nunca error).
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} pedigreeResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/pedigree [get]
func pedigreeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := authorizedAnimal(w, r, svc)
		if !ok {
			return
		}

		roster, err := svc.ListByOwner(r.Context(), a.OwnerUserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		p := BuildPedigree(a, roster)
		writeJSON(w, http.StatusOK, toPedigreeResponse(p))
	}
}

func authorizedAnimal(w http.ResponseWriter, r *http.Request, svc *Service) (Animal, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return Animal{}, false
	}

	a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
	if err != nil {
		http.Error(w, "animal not found", http.StatusNotFound)
		return Animal{}, false
	}

	if a.OwnerUserID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Animal{}, false
	}

	return a, true
}

func resolveStatuses(ctx context.Context, effStatus EffectiveStatusResolver, ownerUserID string, roster []Animal) (map[string]HealthStatus, error) {
	if effStatus == nil {
		out := make(map[string]HealthStatus, len(roster))
		for _, a := range roster {
			if a.HealthStatus == "" {
				out[a.ID] = StatusHealthy
				continue
			}
			out[a.ID] = a.HealthStatus
		}
		return out, nil
	}
	return effStatus(ctx, ownerUserID, roster)
}

func toAnimalResponse(a Animal, effective HealthStatus) animalResponse {
	if effective == "" {
		effective = a.HealthStatus
	}

	out := animalResponse{
		ID:              a.ID,
		OwnerUserID:     a.OwnerUserID,
		Tag:             a.Tag,
		Name:            a.Name,
		Species:         a.Species,
		Gender:          a.Gender,
		Breed:           a.Breed,
		Color:           a.Color,
		HealthStatus:    a.HealthStatus,
		EffectiveStatus: effective,
		Weight:          a.Weight,
		Ancestry:        toAncestryPayload(a.Ancestry),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.BirthDate != nil {
		out.BirthDate = a.BirthDate.Format("2006-01-02")
	}
	return out
}

func toPedigreeResponse(p Pedigree) pedigreeResponse {
	return pedigreeResponse{
		Animal: toSlotResponse(p.Animal),

		Mother: toSlotResponse(p.Mother),
		Father: toSlotResponse(p.Father),

		MaternalGrandmother: toSlotResponse(p.MaternalGrandmother),
		MaternalGrandfather: toSlotResponse(p.MaternalGrandfather),
		PaternalGrandmother: toSlotResponse(p.PaternalGrandmother),
		PaternalGrandfather: toSlotResponse(p.PaternalGrandfather),

		MaternalGrandmotherMother: toSlotResponse(p.MaternalGrandmotherMother),
		MaternalGrandmotherFather: toSlotResponse(p.MaternalGrandmotherFather),
		MaternalGrandfatherMother: toSlotResponse(p.MaternalGrandfatherMother),
		MaternalGrandfatherFather: toSlotResponse(p.MaternalGrandfatherFather),
		PaternalGrandmotherMother: toSlotResponse(p.PaternalGrandmotherMother),
		PaternalGrandmotherFather: toSlotResponse(p.PaternalGrandmotherFather),
		PaternalGrandfatherMother: toSlotResponse(p.PaternalGrandfatherMother),
		PaternalGrandfatherFather: toSlotResponse(p.PaternalGrandfatherFather),
	}
}

func toSlotResponse(ref AncestorRef) ancestorSlotResponse {
	return ancestorSlotResponse{
		DisplayName:  ref.DisplayName,
		Recorded:     ref.Kind != AncestorEmpty,
		IsRegistered: ref.IsRegistered(),
		AnimalID:     ref.AnimalID,
	}
}

func fromAncestryPayload(p ancestryPayload) Ancestry {
	return Ancestry{
		Mother: p.Mother,
		Father: p.Father,

		MaternalGrandmother: p.MaternalGrandmother,
		MaternalGrandfather: p.MaternalGrandfather,
		PaternalGrandmother: p.PaternalGrandmother,
		PaternalGrandfather: p.PaternalGrandfather,

		MaternalGrandmotherMother: p.MaternalGrandmotherMother,
		MaternalGrandmotherFather: p.MaternalGrandmotherFather,
		MaternalGrandfatherMother: p.MaternalGrandfatherMother,
		MaternalGrandfatherFather: p.MaternalGrandfatherFather,
		PaternalGrandmotherMother: p.PaternalGrandmotherMother,
		PaternalGrandmotherFather: p.PaternalGrandmotherFather,
		PaternalGrandfatherMother: p.PaternalGrandfatherMother,
		PaternalGrandfatherFather: p.PaternalGrandfatherFather,
	}
}

func toAncestryPayload(a Ancestry) ancestryPayload {
	return ancestryPayload{
		Mother: a.Mother,
		Father: a.Father,

		MaternalGrandmother: a.MaternalGrandmother,
		MaternalGrandfather: a.MaternalGrandfather,
		PaternalGrandmother: a.PaternalGrandmother,
		PaternalGrandfather: a.PaternalGrandfather,

		MaternalGrandmotherMother: a.MaternalGrandmotherMother,
		MaternalGrandmotherFather: a.MaternalGrandmotherFather,
		MaternalGrandfatherMother: a.MaternalGrandfatherMother,
		MaternalGrandfatherFather: a.MaternalGrandfatherFather,
		PaternalGrandmotherMother: a.PaternalGrandmotherMother,
		PaternalGrandmotherFather: a.PaternalGrandmotherFather,
		PaternalGrandfatherMother: a.PaternalGrandfatherMother,
		PaternalGrandfatherFather: a.PaternalGrandfatherFather,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos
// módulos para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
