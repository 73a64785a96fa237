package adapthttp

import (
	"log"
	"net/http"

	"healthtrack/internal/domain"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleSaveEntry(w, r)
	case http.MethodGet:
		s.handleListEntries(w, r)
	case http.MethodDelete:
		s.handleDeleteEntries(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSaveEntry(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date       string  `json:"date"`
		Weight     float64 `json:"weight"`
		WeightUnit string  `json:"weightUnit"`
		WaistSize  float64 `json:"waistSize"`
		WaistUnit  string  `json:"waistUnit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": err.Error()})
		return
	}

	id, err := s.entries.Save(r.Context(), body.Date, body.Weight, body.WeightUnit, body.WaistSize, body.WaistUnit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Entry saved successfully",
		"id":      id,
	})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.entries.ListByDateRange(r.Context(),
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
		queryDefault(r, "weightUnit", string(domain.Kilograms)),
		queryDefault(r, "waistUnit", string(domain.Centimeters)),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": entries})
}

func (s *Server) handleDeleteEntries(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	deleted, err := s.entries.DeleteByDate(r.Context(), date)
	if err != nil {
		writeError(w, err)
		return
	}
	if user := userFromContext(r); user != nil {
		log.Printf("user %s deleted %d entries for %s", user.Username, deleted, date)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": deleted})
}
