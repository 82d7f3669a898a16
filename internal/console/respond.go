package console

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/xavierca1/crm-console/internal/api"
)

type errorResponse struct {
	Message string `json:"message"`
	Fields  any    `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeValidationError renders ozzo field errors as a field→message map.
func writeValidationError(w http.ResponseWriter, err error) {
	if fields, ok := err.(validation.Errors); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "validation failed", Fields: fields})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// statusFromErr maps a backend error onto the console's own response:
// the backend's status when there is one, 502 for transport failures.
func statusFromErr(err error) int {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
