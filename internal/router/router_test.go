package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"livestock-breeding/internal/router"
)

func TestHTTP_EndToEnd_BreedingLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Owner registra madre y padre
	motherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Luna",
		"tag":     "A-12",
		"species": "vaca",
		"gender":  "female",
	})
	fatherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Trueno",
		"species": "toro",
		"gender":  "male",
	})

	// 2) Registrar monta sin expected_due_date: se precalcula por especie
	var rec struct {
		ID              string `json:"id"`
		Status          string `json:"status"`
		ExpectedDueDate string `json:"expected_due_date"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/breeding", ownerID, map[string]any{
			"mother_id":     motherID,
			"father_id":     fatherID,
			"breeding_date": "2024-01-01",
			"method":        "natural",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create record, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &rec)
		if rec.ID == "" {
			t.Fatalf("create record: missing id body=%s", string(body))
		}
		if rec.Status != "planned" {
			t.Fatalf("expected planned, got %s", rec.Status)
		}
		// vaca: 283 días desde 2024-01-01
		if rec.ExpectedDueDate != "2024-10-10" {
			t.Fatalf("expected due 2024-10-10, got %q", rec.ExpectedDueDate)
		}
	}

	// 3) Otro usuario no ve el registro
	{
		st, _ := doReq(t, ts.URL, "GET", "/breeding/"+rec.ID, strangerID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for stranger, got %d", st)
		}
	}

	// 4) Confirmar preñez
	{
		st, body := doReq(t, ts.URL, "POST", "/breeding/"+rec.ID+"/confirm", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 confirm, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status             string `json:"status"`
			PregnancyConfirmed bool   `json:"pregnancy_confirmed"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "confirmed_pregnant" || !resp.PregnancyConfirmed {
			t.Fatalf("expected confirmed_pregnant, got %s", string(body))
		}
	}

	// 5) La madre se ve pregnant-healthy sin que cambie lo guardado
	{
		a := getAnimal(t, ts.URL, ownerID, motherID)
		if a.HealthStatus != "healthy" {
			t.Fatalf("stored status must stay healthy, got %s", a.HealthStatus)
		}
		if a.EffectiveStatus != "pregnant-healthy" {
			t.Fatalf("expected effective pregnant-healthy, got %s", a.EffectiveStatus)
		}
	}

	// 6) ?status=pregnant la encuentra vía prefijo
	{
		st, body := doReq(t, ts.URL, "GET", "/animals?status=pregnant", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pregnant, got %d body=%s", st, string(body))
		}
		var list []animalResp
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].ID != motherID {
			t.Fatalf("expected only mother in pregnant filter, got %s", string(body))
		}
	}

	// 7) Registro clínico con new_health_status=sick => pregnant-sick
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+motherID+"/health-records", ownerID, map[string]any{
			"type":              "ILLNESS",
			"occurred_at":       time.Now().UTC().Format(time.RFC3339),
			"title":             "Fiebre",
			"new_health_status": "sick",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create health record, got %d body=%s", st, string(body))
		}

		a := getAnimal(t, ts.URL, ownerID, motherID)
		if a.HealthStatus != "sick" {
			t.Fatalf("expected stored sick, got %s", a.HealthStatus)
		}
		if a.EffectiveStatus != "pregnant-sick" {
			t.Fatalf("expected effective pregnant-sick, got %s", a.EffectiveStatus)
		}
	}

	// 8) Registrar parto: cierra la preñez y reporta la duración real
	{
		st, body := doReq(t, ts.URL, "POST", "/breeding/"+rec.ID+"/birth", ownerID, map[string]any{
			"birth_date":      "2024-10-08",
			"offspring_count": 1,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 birth, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status                string `json:"status"`
			ActualBirthDate       string `json:"actual_birth_date"`
			GestationDurationDays *int   `json:"gestation_duration_days"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "birth_completed" || resp.ActualBirthDate != "2024-10-08" {
			t.Fatalf("unexpected birth response: %s", string(body))
		}
		if resp.GestationDurationDays == nil || *resp.GestationDurationDays != 281 {
			t.Fatalf("expected gestation duration 281, got %v", resp.GestationDurationDays)
		}

		// La madre deja de verse preñada (queda sick, lo guardado).
		a := getAnimal(t, ts.URL, ownerID, motherID)
		if a.EffectiveStatus != "sick" {
			t.Fatalf("expected effective sick after birth, got %s", a.EffectiveStatus)
		}
	}
}

func TestHTTP_RecalculateDueDate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	motherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Mora",
		"species": "yegua",
	})
	fatherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Rayo",
		"species": "caballo",
	})

	// Monta con fecha probable editada a mano
	st, body := doReq(t, ts.URL, "POST", "/breeding", ownerID, map[string]any{
		"mother_id":         motherID,
		"father_id":         fatherID,
		"breeding_date":     "2024-01-01",
		"method":            "artificial_insemination",
		"expected_due_date": "2024-06-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create record, got %d body=%s", st, string(body))
	}
	var rec struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &rec)

	// Recalcular según especie: yegua => 340 días => 2024-12-06
	st, body = doReq(t, ts.URL, "POST", "/breeding/"+rec.ID+"/recalculate", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 recalculate, got %d body=%s", st, string(body))
	}
	var resp struct {
		Record struct {
			ExpectedDueDate string `json:"expected_due_date"`
		} `json:"record"`
		SpeciesLabel string `json:"species_label"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Record.ExpectedDueDate != "2024-12-06" {
		t.Fatalf("expected due 2024-12-06, got %q", resp.Record.ExpectedDueDate)
	}
	if resp.SpeciesLabel != "equino (340 días)" {
		t.Fatalf("expected label 'equino (340 días)', got %q", resp.SpeciesLabel)
	}

	// Especie desconocida: el recálculo limpia la fecha en vez de fallar.
	st, body = doReq(t, ts.URL, "PATCH", "/animals/"+motherID, ownerID, map[string]any{
		"species": "capibara",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch species, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/breeding/"+rec.ID+"/recalculate", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 recalculate #2, got %d body=%s", st, string(body))
	}
	resp.Record.ExpectedDueDate = ""
	resp.SpeciesLabel = ""
	_ = json.Unmarshal(body, &resp)
	if resp.Record.ExpectedDueDate != "" {
		t.Fatalf("expected cleared due date, got %q", resp.Record.ExpectedDueDate)
	}
	if resp.SpeciesLabel != "capibara" {
		t.Fatalf("expected passthrough label, got %q", resp.SpeciesLabel)
	}
}

func TestHTTP_Pedigree(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	motherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Luna",
		"tag":     "A-12",
		"species": "vaca",
	})
	calfID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Manchas",
		"species": "vaca",
		"ancestry": map[string]any{
			"mother": motherID,
			"father": "Toro del vecino",
		},
	})

	st, body := doReq(t, ts.URL, "GET", "/animals/"+calfID+"/pedigree", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 pedigree, got %d body=%s", st, string(body))
	}

	type slot struct {
		DisplayName  string `json:"display_name"`
		Recorded     bool   `json:"recorded"`
		IsRegistered bool   `json:"is_registered"`
		AnimalID     string `json:"animal_id"`
	}
	var resp struct {
		Mother              slot `json:"mother"`
		Father              slot `json:"father"`
		MaternalGrandmother slot `json:"maternal_grandmother"`
		PaternalGrandfather slot `json:"paternal_grandfather"`
	}
	_ = json.Unmarshal(body, &resp)

	if !resp.Mother.IsRegistered || resp.Mother.DisplayName != "Luna (A-12)" || resp.Mother.AnimalID != motherID {
		t.Fatalf("unexpected mother slot: %+v", resp.Mother)
	}
	if resp.Father.IsRegistered || !resp.Father.Recorded || resp.Father.DisplayName != "Toro del vecino" {
		t.Fatalf("unexpected father slot: %+v", resp.Father)
	}
	if resp.MaternalGrandmother.Recorded || resp.MaternalGrandmother.DisplayName != "no registrado" {
		t.Fatalf("unexpected empty slot: %+v", resp.MaternalGrandmother)
	}
	if resp.PaternalGrandfather.Recorded {
		t.Fatalf("expected empty paternal grandfather, got %+v", resp.PaternalGrandfather)
	}
}

func TestHTTP_UpcomingBirths(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	motherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Luna",
		"species": "vaca",
	})
	fatherID := createAnimal(t, ts.URL, ownerID, map[string]any{
		"name":    "Trueno",
		"species": "toro",
	})

	// Monta de hoy: parto probable hoy+283 días.
	st, body := doReq(t, ts.URL, "POST", "/breeding", ownerID, map[string]any{
		"mother_id":     motherID,
		"father_id":     fatherID,
		"breeding_date": time.Now().UTC().Format("2006-01-02"),
		"method":        "natural",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create record, got %d body=%s", st, string(body))
	}
	var rec struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &rec)

	// Sin confirmar no hay preñez abierta: lista vacía.
	{
		st, body := doReq(t, ts.URL, "GET", "/breeding/upcoming?days=365", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 upcoming, got %d body=%s", st, string(body))
		}
		var list []json.RawMessage
		_ = json.Unmarshal(body, &list)
		if len(list) != 0 {
			t.Fatalf("expected empty upcoming before confirm, got %s", string(body))
		}
	}

	if st, body := doReq(t, ts.URL, "POST", "/breeding/"+rec.ID+"/confirm", ownerID, nil); st != http.StatusOK {
		t.Fatalf("expected 200 confirm, got %d body=%s", st, string(body))
	}

	// Dentro de la ventana amplia aparece; en la default de 30 días no.
	{
		st, body := doReq(t, ts.URL, "GET", "/breeding/upcoming?days=365", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 upcoming, got %d body=%s", st, string(body))
		}
		var list []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].ID != rec.ID {
			t.Fatalf("expected record in 365d window, got %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/breeding/upcoming", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 upcoming default, got %d body=%s", st, string(body))
		}
		var list []json.RawMessage
		_ = json.Unmarshal(body, &list)
		if len(list) != 0 {
			t.Fatalf("expected empty 30d window, got %s", string(body))
		}
	}
}

func TestHTTP_GroupBySpecies(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	createAnimal(t, ts.URL, ownerID, map[string]any{"name": "Mora", "species": "vaca"})
	createAnimal(t, ts.URL, ownerID, map[string]any{"name": "Luna", "species": "vaca"})
	createAnimal(t, ts.URL, ownerID, map[string]any{"name": "Rex"})

	st, body := doReq(t, ts.URL, "GET", "/animals?group_by=species", ownerID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 grouped list, got %d body=%s", st, string(body))
	}

	var grouped map[string][]animalResp
	_ = json.Unmarshal(body, &grouped)

	if len(grouped["vaca"]) != 2 {
		t.Fatalf("expected 2 vacas, got %s", string(body))
	}
	if grouped["vaca"][0].Name != "Luna" || grouped["vaca"][1].Name != "Mora" {
		t.Fatalf("expected vacas sorted by name, got %s", string(body))
	}
	if len(grouped["otros"]) != 1 || grouped["otros"][0].Name != "Rex" {
		t.Fatalf("expected Rex in otros, got %s", string(body))
	}
}

type animalResp struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	HealthStatus    string `json:"health_status"`
	EffectiveStatus string `json:"effective_status"`
}

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func getAnimal(t *testing.T, baseURL, userID, animalID string) animalResp {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/animals/"+animalID, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
	}

	var a animalResp
	_ = json.Unmarshal(body, &a)
	return a
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
