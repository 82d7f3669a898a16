package console

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/entity"
)

type sessionResponse struct {
	User *entity.User `json:"user"`
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"page":     "login",
		"loggedIn": s.auth.LoggedIn(),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	session, err := s.client.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	if err := s.auth.SetAuth(session.Token, session.User); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{User: s.auth.User()})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var form SignupForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	session, err := s.client.Signup(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	if err := s.auth.SetAuth(session.Token, session.User); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{User: s.auth.User()})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var form ResetPasswordForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := form.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.client.ResetPassword(r.Context(), form.Email, form.NewPassword); err != nil {
		writeError(w, statusFromErr(err), api.Message(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password reset"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.ClearAuth(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
