package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelcraft/internal/config"
	"reelcraft/internal/core"
	"reelcraft/internal/generate"
	"reelcraft/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	st, err := store.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{
		Insights: config.Insights{MinTracked: 3, LikedSamples: 2},
		Server: config.Server{
			Host:           "127.0.0.1",
			Port:           0,
			ReadTimeout:    "5s",
			WriteTimeout:   "5s",
			RequestTimeout: "5s",
			AllowedOrigins: []string{"*"},
		},
	}

	// A nil AI keeps every endpoint deterministic and offline.
	svc := generate.NewService(nil, generate.DefaultOptions(nil))
	return New(cfg, svc, st)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthReportsOffline(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["offline"] != true {
		t.Errorf("expected offline true, got %v", body["offline"])
	}
}

func TestScriptEndpointSavesHistory(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/generate/script", core.ScriptRequest{
		ProductName:        "Serum X",
		ProductAdvantages:  "brightens skin",
		CopywritingFormula: "AIDA",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID     string            `json:"id"`
		Result core.ScriptOutput `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected history ID in response")
	}
	if len(resp.Result.Variations) != 3 {
		t.Errorf("expected 3 variations, got %d", len(resp.Result.Variations))
	}

	rec = doJSON(t, s, http.MethodGet, "/api/history", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d, want 200", rec.Code)
	}
	var entries []core.HistoryEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != resp.ID {
		t.Errorf("expected saved entry %q in history, got %+v", resp.ID, entries)
	}
}

func TestScriptEndpointRejectsEmptyProduct(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/generate/script", core.ScriptRequest{
		ProductAdvantages: "brightens skin",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestVideoEndpointOfflinePreconditionFailed(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/video/", core.VideoRequest{Prompt: "unboxing"})
	if rec.Code != http.StatusPreconditionFailed {
		t.Errorf("status = %d, want 412: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body["code"] != "api_key_required" {
		t.Errorf("code = %q, want api_key_required", body["code"])
	}
}

func TestBrandProfileLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/brand-profile/", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("initial GET status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/brand-profile/", core.BrandProfile{
		PersonaType: core.PersonaBrand,
		BrandName:   "GlowLab",
		ToneOfVoice: "Professional & Informative",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet, "/api/brand-profile/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/brand-profile/", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/brand-profile/", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", rec.Code)
	}
}

func TestBrandProfileRejectsUnknownPersona(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/brand-profile/", map[string]string{
		"personaType": "agency",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestFeedbackFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/generate/script", core.ScriptRequest{
		ProductName:       "Serum X",
		ProductAdvantages: "brightens skin",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("script status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/history/"+resp.ID+"/variations/0/feedback",
		map[string]string{"feedback": "amazing"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid feedback status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/history/"+resp.ID+"/variations/0/feedback",
		map[string]string{"feedback": "liked"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("feedback status = %d, want 204: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, s, http.MethodGet, "/api/history/"+resp.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get history status = %d", rec.Code)
	}
	var entry core.HistoryEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if entry.Variations[0].Feedback != core.FeedbackLiked {
		t.Errorf("feedback = %q, want liked", entry.Variations[0].Feedback)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/history/"+resp.ID+"/variations/9/feedback",
		map[string]string{"feedback": "liked"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("out-of-range variation status = %d, want 404", rec.Code)
	}
}

func TestInsightsNotReadyWithoutData(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/insights", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["ready"] != false {
		t.Errorf("expected ready false, got %v", body["ready"])
	}
}

func TestCatalogListsFormulas(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/catalog", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Formulas  map[string]string `json:"formulas"`
		HookTypes []string          `json:"hookTypes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := body.Formulas["AIDA"]; !ok {
		t.Error("expected AIDA in formulas")
	}
	if len(body.HookTypes) == 0 {
		t.Error("expected hook types")
	}
}
