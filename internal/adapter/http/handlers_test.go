package adapthttp_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	adapthttp "healthtrack/internal/adapter/http"
	"healthtrack/internal/adapter/memory"
	"healthtrack/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Test-server helpers
// ---------------------------------------------------------------------------

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := memory.New()
	es := app.NewEntryService(db)
	cs := app.NewChartsService(es)
	authSvc := app.NewAuthService(db, db.NewSessionRepo())

	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html></html>"), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := adapthttp.New(es, cs, authSvc, webDir).WithoutAuth()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var m map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %v", body["success"])
	}
}

func TestSaveEntry(t *testing.T) {
	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "valid canonical units",
			payload:    map[string]any{"date": "2024-01-15", "weight": 75.5, "weightUnit": "kg", "waistSize": 85.0, "waistUnit": "cm"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "valid imperial units",
			payload:    map[string]any{"date": "2024-01-16", "weight": 165.0, "weightUnit": "lbs", "waistSize": 34.0, "waistUnit": "inches"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "weight below range",
			payload:    map[string]any{"date": "2024-01-15", "weight": 19.0, "weightUnit": "kg", "waistSize": 85.0, "waistUnit": "cm"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Weight must be between 20 and 500 kg",
		},
		{
			name:       "unknown weight unit",
			payload:    map[string]any{"date": "2024-01-15", "weight": 80.0, "weightUnit": "stone", "waistSize": 85.0, "waistUnit": "cm"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid weight unit: stone. Must be one of: kg, lbs, st",
		},
		{
			name:       "future date",
			payload:    map[string]any{"date": "2099-01-01", "weight": 75.5, "weightUnit": "kg", "waistSize": 85.0, "waistUnit": "cm"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Entry date cannot be in the future",
		},
		{
			name:       "malformed date",
			payload:    map[string]any{"date": "15-01-2024", "weight": 75.5, "weightUnit": "kg", "waistSize": 85.0, "waistUnit": "cm"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Date must be in YYYY-MM-DD format",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)

			resp := postJSON(t, ts.URL+"/api/entries", tc.payload)
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d; want %d", resp.StatusCode, tc.wantStatus)
			}

			body := decodeBody(t, resp)
			if tc.wantStatus == http.StatusCreated {
				if body["success"] != true {
					t.Fatalf("expected success=true: %v", body)
				}
				if id, ok := body["id"].(float64); !ok || id <= 0 {
					t.Fatalf("expected positive id, got %v", body["id"])
				}
				return
			}
			if body["success"] != false {
				t.Fatalf("expected success=false: %v", body)
			}
			if body["message"] != tc.wantMsg {
				t.Fatalf("message = %q; want %q", body["message"], tc.wantMsg)
			}
		})
	}
}

func TestSaveThenListConvertsUnits(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/entries", map[string]any{
		"date": "2024-01-15", "weight": 75.5, "weightUnit": "kg",
		"waistSize": 85.0, "waistUnit": "cm",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	saved := decodeBody(t, resp)
	require.Equal(t, true, saved["success"])

	resp2, err := http.Get(ts.URL + "/api/entries?weightUnit=lbs&waistUnit=cm")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	body := decodeBody(t, resp2)
	data, ok := body["data"].([]any)
	require.True(t, ok, "data should be a list: %v", body)
	require.Len(t, data, 1)

	entry := data[0].(map[string]any)
	assert.Equal(t, "2024-01-15", entry["date"])

	weight := entry["weight"].(map[string]any)
	assert.InDelta(t, 166.449, weight["value"].(float64), 0.001)
	assert.Equal(t, "lbs", weight["unit"])

	waist := entry["waist"].(map[string]any)
	assert.InDelta(t, 85.0, waist["value"].(float64), 0.0001)
	assert.Equal(t, "cm", waist["unit"])
}

func TestSaveImperialReadsBackCanonical(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/entries", map[string]any{
		"date": "2024-01-15", "weight": 165.0, "weightUnit": "lbs",
		"waistSize": 34.0, "waistUnit": "inches",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = decodeBody(t, resp)

	resp2, err := http.Get(ts.URL + "/api/entries")
	require.NoError(t, err)
	body := decodeBody(t, resp2)
	data := body["data"].([]any)
	require.Len(t, data, 1)

	entry := data[0].(map[string]any)
	weight := entry["weight"].(map[string]any)
	assert.InDelta(t, 74.84, weight["value"].(float64), 0.01)
	assert.Equal(t, "kg", weight["unit"])

	waist := entry["waist"].(map[string]any)
	assert.InDelta(t, 86.36, waist["value"].(float64), 0.01)
	assert.Equal(t, "cm", waist["unit"])
}

func TestListEntriesOrderAndRange(t *testing.T) {
	ts := newTestServer(t)

	for _, e := range []map[string]any{
		{"date": "2024-01-10", "weight": 76.0, "weightUnit": "kg", "waistSize": 86.0, "waistUnit": "cm"},
		{"date": "2024-01-15", "weight": 75.5, "weightUnit": "kg", "waistSize": 85.0, "waistUnit": "cm"},
		{"date": "2024-02-01", "weight": 75.0, "weightUnit": "kg", "waistSize": 84.5, "waistUnit": "cm"},
	} {
		resp := postJSON(t, ts.URL+"/api/entries", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = decodeBody(t, resp)
	}

	resp, err := http.Get(ts.URL + "/api/entries?startDate=2024-01-01&endDate=2024-01-31")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	data := body["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	second := data[1].(map[string]any)
	assert.Equal(t, "2024-01-15", first["date"], "newest first")
	assert.Equal(t, "2024-01-10", second["date"])
}

func TestListEntriesBadUnit(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/entries?weightUnit=grams")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["message"] != "Invalid weight unit: grams. Must be one of: kg, lbs, st" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestChartEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// Two entries on the same date; the later one must win in the series.
	for _, e := range []map[string]any{
		{"date": "2024-01-10", "weight": 76.0, "weightUnit": "kg", "waistSize": 86.0, "waistUnit": "cm"},
		{"date": "2024-01-10", "weight": 75.5, "weightUnit": "kg", "waistSize": 85.0, "waistUnit": "cm"},
		{"date": "2024-01-11", "weight": 75.2, "weightUnit": "kg", "waistSize": 84.8, "waistUnit": "cm"},
	} {
		resp := postJSON(t, ts.URL+"/api/entries", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = decodeBody(t, resp)
	}

	resp, err := http.Get(ts.URL + "/api/chart")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["dataPoints"])

	series := body["series"].(map[string]any)
	dates := series["dates"].([]any)
	require.Equal(t, []any{"2024-01-10", "2024-01-11"}, dates)

	weights := series["weights"].([]any)
	assert.InDelta(t, 75.5, weights[0].(float64), 0.0001, "latest entry for the date wins")
	assert.Equal(t, "kg", series["weightUnit"])
	assert.Equal(t, "cm", series["waistUnit"])
}

func TestChartBadFilter(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/chart?measurementFilter=bmi")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	_ = decodeBody(t, resp)
}

func TestDeleteEntries(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, ts.URL+"/api/entries", map[string]any{
			"date": "2024-01-15", "weight": 75.5, "weightUnit": "kg",
			"waistSize": 85.0, "waistUnit": "cm",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = decodeBody(t, resp)
	}

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/entries?date=2024-01-15", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["deleted"])

	resp2, err := http.Get(ts.URL + "/api/entries")
	require.NoError(t, err)
	listBody := decodeBody(t, resp2)
	assert.Empty(t, listBody["data"])
}

func TestEntriesMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/entries", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.StatusCode)
	}
}

func TestAPIRequiresAuth(t *testing.T) {
	db := memory.New()
	es := app.NewEntryService(db)
	cs := app.NewChartsService(es)
	authSvc := app.NewAuthService(db, db.NewSessionRepo())

	srv := adapthttp.New(es, cs, authSvc, t.TempDir())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/entries")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	// Health stays open.
	resp2, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close() //nolint:errcheck
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp2.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	db := memory.New()
	es := app.NewEntryService(db)
	cs := app.NewChartsService(es)
	authSvc := app.NewAuthService(db, db.NewSessionRepo())

	srv := adapthttp.New(es, cs, authSvc, t.TempDir())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// First user setup, then login, then an authenticated request.
	resp := postJSON(t, ts.URL+"/api/auth/setup", map[string]string{"username": "alex", "password": "hunter2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	resp = postJSON(t, ts.URL+"/api/auth/login", map[string]string{"username": "alex", "password": "hunter2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck

	var session *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			session = c
		}
	}
	require.NotNil(t, session, "login should set a session cookie")

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/entries", nil)
	require.NoError(t, err)
	req.AddCookie(session)
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close() //nolint:errcheck
	assert.Equal(t, http.StatusOK, authed.StatusCode)

	// Wrong password stays out.
	resp = postJSON(t, ts.URL+"/api/auth/login", map[string]string{"username": "alex", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
}
