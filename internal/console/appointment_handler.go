package console

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
	"github.com/xavierca1/crm-console/internal/query"
)

type appointmentsPageResponse struct {
	Appointments []entity.Appointment `json:"appointments"`
}

func appointmentFilterFromQuery(q url.Values) query.AppointmentFilter {
	tab := query.Tab(q.Get("tab"))
	if tab == "" {
		tab = query.TabAll
	}
	return query.AppointmentFilter{
		Tab:       tab,
		Status:    q.Get("status"),
		Search:    q.Get("search"),
		DateFrom:  q.Get("dateFrom"),
		DateTo:    q.Get("dateTo"),
		SortOrder: q.Get("order"),
	}
}

// handleAppointmentsPage fetches on every request; this page is not
// debounced (query.AppointmentDebounce).
func (s *Server) handleAppointmentsPage(w http.ResponseWriter, r *http.Request) {
	filter := appointmentFilterFromQuery(r.URL.Query())
	appts, err := s.client.ListAppointments(r.Context(), filter.Params(time.Now()))
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, appointmentsPageResponse{Appointments: appts})
}

func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var form AppointmentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	appt, err := s.client.CreateAppointment(r.Context(), form.Input())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var form AppointmentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	appt, err := s.client.UpdateAppointment(r.Context(), id, form.Input())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.client.DeleteAppointment(r.Context(), id); err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkDone(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	appt, err := s.client.MarkAppointmentDone(r.Context(), id)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, appt)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	cal, err := s.client.CalendarAppointments(r.Context())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, cal)
}

func (s *Server) handleTodayAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := s.client.TodayAppointments(r.Context())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, appointmentsPageResponse{Appointments: appts})
}
