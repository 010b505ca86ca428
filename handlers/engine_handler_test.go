package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/dileepraotv/tt-tournament-system/handlers"
	"github.com/dileepraotv/tt-tournament-system/routes"
	"github.com/dileepraotv/tt-tournament-system/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engineHandler := handlers.NewEngineHandler(services.NewEngineService(logger), logger)

	router := chi.NewRouter()
	routes.SetupRoutes(router, engineHandler, []string{"*"})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestHealthcheck(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestValidateGameEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv, "/api/v1/games/validate", map[string]int{"score1": 11, "score2": 9})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var valid bool
	if err := json.Unmarshal(body["valid"], &valid); err != nil || !valid {
		t.Errorf("11-9 should be valid, body %s", body["valid"])
	}

	resp, body = postJSON(t, srv, "/api/v1/games/validate", map[string]int{"score1": 12, "score2": 5})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if err := json.Unmarshal(body["valid"], &valid); err != nil || valid {
		t.Errorf("12-5 should be invalid, body %s", body["valid"])
	}
}

func TestMatchStateEndpointRejectsBadFormat(t *testing.T) {
	srv := newTestServer(t)

	resp, body := postJSON(t, srv, "/api/v1/matches/state", map[string]interface{}{
		"games":  []map[string]int{{"number": 1, "score1": 11, "score2": 5}},
		"format": 4,
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if _, ok := body["error"]; !ok {
		t.Error("expected an error message in the body")
	}
}

func TestGenerateBracketEndpoint(t *testing.T) {
	srv := newTestServer(t)

	players := []map[string]interface{}{
		{"id": 1, "name": "Ma Long", "seed": 1},
		{"id": 2, "name": "Fan Zhendong", "seed": 2},
		{"id": 3, "name": "Hugo Calderano"},
		{"id": 4, "name": "Truls Moregard"},
		{"id": 5, "name": "Felix Lebrun"},
		{"id": 6, "name": "Tomokazu Harimoto"},
	}
	resp, body := postJSON(t, srv, "/api/v1/brackets/generate", map[string]interface{}{
		"players": players,
		"config":  map[string]interface{}{"format": 5, "seed": 42},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var bracketSize int
	if err := json.Unmarshal(body["bracket_size"], &bracketSize); err != nil {
		t.Fatalf("bracket_size missing: %v", err)
	}
	if bracketSize != 8 {
		t.Errorf("bracket_size = %d, want 8", bracketSize)
	}
}

func TestGenerateBracketEndpointEmptyPlayers(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := postJSON(t, srv, "/api/v1/brackets/generate", map[string]interface{}{
		"players": []interface{}{},
		"config":  map[string]interface{}{"format": 5},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/games/validate", "application/json",
		bytes.NewReader([]byte(`{"score1": `)))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownFieldIsBadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := postJSON(t, srv, "/api/v1/games/validate", map[string]int{"score1": 11, "score2": 9, "bogus": 1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
