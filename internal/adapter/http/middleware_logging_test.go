package adapthttp

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}

	var buf bytes.Buffer
	originalOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalOutput)

	t.Run("logs method, path and status", func(t *testing.T) {
		buf.Reset()
		handler := s.loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		req := httptest.NewRequest("GET", "/api/entries", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
		}
		out := buf.String()
		if !strings.Contains(out, "GET") || !strings.Contains(out, "/api/entries") || !strings.Contains(out, "404") {
			t.Errorf("Log output missing expected fields. Got: %s", out)
		}
	})

	t.Run("implicit 200 when handler never writes a header", func(t *testing.T) {
		buf.Reset()
		handler := s.loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		}))

		req := httptest.NewRequest("POST", "/api/chart", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		out := buf.String()
		if !strings.Contains(out, "POST") || !strings.Contains(out, "200") {
			t.Errorf("Log output missing expected fields. Got: %s", out)
		}
	})
}
