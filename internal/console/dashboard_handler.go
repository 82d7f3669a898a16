package console

import (
	"net/http"
	"time"

	"github.com/xavierca1/crm-console/internal/dashboard"
)

// handleDashboard renders every report section for the selected range
// preset. Sections fail independently; see dashboard.Load.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	preset := dashboard.Preset(q.Get("range"))
	if preset == "" {
		preset = dashboard.PresetWeek
	}

	bounds := dashboard.PresetBounds(preset, q.Get("start"), q.Get("end"), time.Now())
	data := dashboard.Load(r.Context(), s.client, bounds)
	writeJSON(w, http.StatusOK, data)
}
