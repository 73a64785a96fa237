package adapthttp

import (
	"net/http"

	"healthtrack/internal/app"
)

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	series, err := s.charts.GetSeries(r.Context(),
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
		queryDefault(r, "measurementFilter", app.FilterAll),
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"series":     series,
		"dataPoints": len(series.Dates),
	})
}
