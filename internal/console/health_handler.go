package console

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// The backend may well answer 404 on its bare base URL; any response
	// at all counts as reachable.
	probe := &http.Client{Timeout: 2 * time.Second}
	if resp, err := probe.Get(s.cfg.Backend.BaseURL); err != nil {
		deps["backend"] = "unreachable: " + err.Error()
	} else {
		resp.Body.Close()
		deps["backend"] = "reachable"
	}

	if s.auth.LoggedIn() {
		deps["session"] = "logged in"
	} else {
		deps["session"] = "logged out"
	}

	status := "healthy"
	if deps["backend"] != "reachable" {
		status = "degraded"
	}

	response := healthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(s.start).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
