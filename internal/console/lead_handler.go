package console

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
	"github.com/xavierca1/crm-console/internal/query"
)

type leadsPageResponse struct {
	Leads   []entity.Lead `json:"leads"`
	Loading bool          `json:"loading"`
	Error   string        `json:"error,omitempty"`
}

func leadFilterFromQuery(q url.Values) query.LeadFilter {
	return query.LeadFilter{
		Name:        q.Get("name"),
		Stage:       q.Get("stage"),
		Source:      q.Get("source"),
		CreatedFrom: q.Get("createdFrom"),
		CreatedTo:   q.Get("createdTo"),
	}
}

// handleLeadsPage serves the cached list and schedules a debounced
// refetch with the filters from the query string. The first load (or
// an empty cache) fetches synchronously so the page is never blank.
func (s *Server) handleLeadsPage(w http.ResponseWriter, r *http.Request) {
	params := leadFilterFromQuery(r.URL.Query()).Params()

	if len(s.leads.Leads()) == 0 && !s.leads.Loading() {
		s.leads.Fetch(r.Context(), params)
	} else {
		s.refetch.Trigger(params)
	}

	writeJSON(w, http.StatusOK, leadsPageResponse{
		Leads:   s.leads.Leads(),
		Loading: s.leads.Loading(),
		Error:   api.Message(s.leads.Err()),
	})
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var form LeadForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	lead, err := s.leads.Create(r.Context(), form.Input())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

type leadViewResponse struct {
	Lead         *entity.Lead         `json:"lead"`
	Appointments []entity.Appointment `json:"appointments"`
}

// handleLeadView is the detail page: the lead plus its appointments.
func (s *Server) handleLeadView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := s.client.GetLead(r.Context(), id)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	appts, err := s.client.LeadAppointments(r.Context(), id)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, leadViewResponse{Lead: lead, Appointments: appts})
}

func (s *Server) handleUpdateLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var form LeadForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	lead, err := s.leads.Update(r.Context(), id, form.Input())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (s *Server) handleUpdateStage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var form StageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	lead, err := s.leads.UpdateStage(r.Context(), id, form.Stage)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (s *Server) handleDeleteLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.leads.Delete(r.Context(), id); err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSaveLeadNote saves the detail-page note via the backend and
// patches the cached list entry in place instead of re-fetching the
// whole list.
func (s *Server) handleSaveLeadNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var form NoteForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := s.client.GetLead(r.Context(), id)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}

	input := api.LeadInput{
		Name:   lead.Name,
		Email:  lead.Email,
		Phone:  lead.Phone,
		Source: lead.Source,
		Stage:  lead.Stage,
		Score:  lead.Score,
		Note:   form.Note,
	}
	updated, err := s.client.UpdateLead(r.Context(), id, input)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}

	s.leads.UpdateLocal(id, func(l *entity.Lead) {
		l.Note = updated.Note
	})
	writeJSON(w, http.StatusOK, updated)
}

// handleCreateLeadAppointment books an appointment from the detail page.
func (s *Server) handleCreateLeadAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var form AppointmentForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	form.LeadID = id
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

// handleTodayFollowups backs the follow-up drawer.
func (s *Server) handleTodayFollowups(w http.ResponseWriter, r *http.Request) {
	appts, err := s.client.TodayFollowups(r.Context())
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"followups": appts})
}
