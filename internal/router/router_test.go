package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"animal-shelter/internal/adapters/storage/sqlstore"
	"animal-shelter/internal/router"
)

func TestHTTP_EndToEnd_Adoption(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	runAdoptionFlow(t, ts.URL)
}

func TestHTTP_EndToEnd_SQLite(t *testing.T) {
	store, err := sqlstore.Open(context.Background(), sqlstore.Config{Path: filepath.Join(t.TempDir(), "bbdd.db")})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer ts.Close()

	runAdoptionFlow(t, ts.URL)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected healthy store, got %d %s", st, body)
	}
}

func runAdoptionFlow(t *testing.T, baseURL string) {
	t.Helper()

	// 1) Registro de usuario
	{
		st, body := doReq(t, baseURL, "POST", "/users/", map[string]any{
			"name":    "Alice Smith",
			"email":   "alice@x.com",
			"phone":   612345678,
			"address": "Calle Mayor 1",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register user, got %d body=%s", st, body)
		}
		var res struct {
			Usuario struct {
				ID     string `json:"id"`
				Nombre string `json:"nombre"`
				Email  string `json:"email"`
			} `json:"usuario"`
		}
		decode(t, body, &res)
		if res.Usuario.ID == "" || res.Usuario.Nombre != "Alice Smith" || res.Usuario.Email != "alice@x.com" {
			t.Fatalf("unexpected user response %s", body)
		}
	}

	// 2) Registro de animales (con alias en castellano)
	createAnimal(t, baseURL, map[string]any{"name": "Rex", "age": 4, "kind": "dog"})
	createAnimal(t, baseURL, map[string]any{"nombre": "Luna", "edad": 2, "tipo": "dog"})
	createAnimal(t, baseURL, map[string]any{"name": "Misu", "kind": "cat"})

	// 3) Adopción dirigida
	{
		st, body := doReq(t, baseURL, "POST", "/adopcion/?"+query("user_name", "Alice Smith", "animal_name", "Rex"), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adoption, got %d body=%s", st, body)
		}
		var res struct {
			Adopcion struct {
				AnimalName string `json:"animal_name"`
				UserName   string `json:"user_name"`
			} `json:"adopcion"`
		}
		decode(t, body, &res)
		if res.Adopcion.AnimalName != "Rex" || res.Adopcion.UserName != "Alice Smith" {
			t.Fatalf("unexpected adoption response %s", body)
		}
	}

	// 4) Rex ya no aparece entre los perros
	if got := availableNames(t, baseURL, "/disponibles/dog"); len(got) != 1 || got[0] != "Luna" {
		t.Fatalf("expected only Luna available, got %v", got)
	}
	if got := availableNames(t, baseURL, "/disponibles?tipo=cat"); len(got) != 1 || got[0] != "Misu" {
		t.Fatalf("expected only Misu, got %v", got)
	}
	if got := availableNames(t, baseURL, "/disponibles/parrot"); len(got) != 0 {
		t.Fatalf("unknown kind should list nothing, got %v", got)
	}

	// 5) Segunda adopción de Rex
	{
		st, body := doReq(t, baseURL, "POST", "/adopcion?"+query("user_name", "Alice Smith", "animal_name", "Rex"), nil)
		expectError(t, st, body, http.StatusBadRequest, "conflict")
	}

	// 6) Adopción aleatoria: el gato que queda
	{
		st, body := doReq(t, baseURL, "POST", "/adopcion/random?"+query("user_name", "Alice Smith", "tipo", "cat"), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 random adoption, got %d body=%s", st, body)
		}
		st, body = doReq(t, baseURL, "POST", "/adopcion/random?"+query("user_name", "Alice Smith", "kind", "cat"), nil)
		expectError(t, st, body, http.StatusBadRequest, "not_found")
	}

	// 7) Listado de adopciones
	{
		st, body := doReq(t, baseURL, "GET", "/adopciones", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing adoptions, got %d body=%s", st, body)
		}
		var res struct {
			Adopciones []struct {
				AnimalName string `json:"animal_name"`
				Fecha      string `json:"fecha"`
			} `json:"adopciones"`
		}
		decode(t, body, &res)
		if len(res.Adopciones) != 2 {
			t.Fatalf("expected 2 adoptions, got %s", body)
		}
		if len(res.Adopciones[0].Fecha) != len("2006-01-02") {
			t.Fatalf("expected a calendar date, got %q", res.Adopciones[0].Fecha)
		}
	}
}

func TestHTTP_RegisterUser_Errors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	valid := map[string]any{"name": "Alice Smith", "email": "alice@x.com", "address": "Calle Mayor 1"}
	if st, body := doReq(t, ts.URL, "POST", "/users", valid); st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, body)
	}

	st, body := doReq(t, ts.URL, "POST", "/users", valid)
	expectError(t, st, body, http.StatusBadRequest, "duplicate")

	cases := []map[string]any{
		{"name": "Al", "email": "al@x.com", "address": "Calle Mayor 1"},
		{"name": "Alice Smith", "email": "not-an-email", "address": "Calle Mayor 1"},
		{"name": "Alice Smith", "email": "a2@x.com", "phone": 12345, "address": "Calle Mayor 1"},
		{"name": "Alice Smith", "email": "a3@x.com"},
	}
	for _, payload := range cases {
		st, body := doReq(t, ts.URL, "POST", "/users", payload)
		expectError(t, st, body, http.StatusUnprocessableEntity, "validation")
	}
}

func TestHTTP_RegisterAnimal_Errors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createAnimal(t, ts.URL, map[string]any{"name": "Rex", "age": 4, "kind": "dog"})

	st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{"name": "Rex", "kind": "cat"})
	expectError(t, st, body, http.StatusBadRequest, "duplicate")

	st, body = doReq(t, ts.URL, "POST", "/animals", map[string]any{"name": "Piolin", "kind": "bird"})
	expectError(t, st, body, http.StatusUnprocessableEntity, "validation")

	st, body = doReq(t, ts.URL, "POST", "/animals", map[string]any{"name": "Toby", "age": -1, "kind": "dog"})
	expectError(t, st, body, http.StatusUnprocessableEntity, "validation")
}

func TestHTTP_Adoption_Errors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createAnimal(t, ts.URL, map[string]any{"name": "Rex", "age": 4, "kind": "dog"})

	st, body := doReq(t, ts.URL, "POST", "/adopcion?"+query("user_name", "Ghost", "animal_name", "Rex"), nil)
	expectError(t, st, body, http.StatusBadRequest, "not_found")

	st, body = doReq(t, ts.URL, "POST", "/adopcion?"+query("user_name", "Ghost"), nil)
	expectError(t, st, body, http.StatusUnprocessableEntity, "validation")

	st, body = doReq(t, ts.URL, "POST", "/adopcion/random", nil)
	expectError(t, st, body, http.StatusUnprocessableEntity, "validation")
}

func TestHTTP_RateLimitedAdoptions(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		RateLimit: router.RateLimit{RPS: 0.001, Burst: 1},
	}))
	defer ts.Close()

	path := "/adopcion?" + query("user_name", "Ghost", "animal_name", "Rex")
	if st, _ := doReq(t, ts.URL, "POST", path, nil); st == http.StatusTooManyRequests {
		t.Fatalf("first request should not be limited")
	}
	if st, _ := doReq(t, ts.URL, "POST", path, nil); st != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", st)
	}

	// las lecturas no pasan por el limitador
	if st, _ := doReq(t, ts.URL, "GET", "/adopciones", nil); st != http.StatusOK {
		t.Fatalf("expected 200 listing adoptions, got %d", st)
	}
}

func TestHTTP_Swagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	if !bytes.Contains(body, []byte("/adopcion/random/")) {
		t.Fatalf("swagger doc should describe the adoption routes")
	}
}

func createAnimal(t *testing.T, baseURL string, payload map[string]any) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals/", payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 register animal, got %d body=%s", st, body)
	}
}

func availableNames(t *testing.T, baseURL, path string) []string {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing %s, got %d body=%s", path, st, body)
	}
	var res struct {
		Animales []struct {
			Nombre string `json:"nombre"`
		} `json:"animales"`
	}
	decode(t, body, &res)
	if res.Animales == nil {
		t.Fatalf("animales must be an array, got %s", body)
	}

	out := make([]string, 0, len(res.Animales))
	for _, a := range res.Animales {
		out = append(out, a.Nombre)
	}
	return out
}

func expectError(t *testing.T, status int, body []byte, wantStatus int, wantKind string) {
	t.Helper()

	if status != wantStatus {
		t.Fatalf("expected %d, got %d body=%s", wantStatus, status, body)
	}
	var res struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	decode(t, body, &res)
	if res.Error != wantKind || res.Detail == "" {
		t.Fatalf("expected error kind %q with detail, got %s", wantKind, body)
	}
}

func query(kv ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v.Encode()
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
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

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
