// Package console serves the dashboard pages over a local HTTP
// listener. It owns no business logic: every page reads from the
// stores or calls the backend client and renders JSON.
package console

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/crm-console/internal/api"
	"github.com/xavierca1/crm-console/internal/config"
	"github.com/xavierca1/crm-console/internal/console/middleware"
	"github.com/xavierca1/crm-console/internal/query"
	"github.com/xavierca1/crm-console/internal/store"
)

type Server struct {
	cfg     *config.Config
	client  *api.Client
	auth    *store.AuthStore
	leads   *store.LeadStore
	refetch *refetcher
	start   time.Time
}

func NewServer(cfg *config.Config, client *api.Client, auth *store.AuthStore, leads *store.LeadStore) *Server {
	s := &Server{
		cfg:    cfg,
		client: client,
		auth:   auth,
		leads:  leads,
		start:  time.Now(),
	}

	// Debounced background refetch for the leads list. The request that
	// triggered it is long gone by the time the timer fires, so the
	// fetch runs on its own context.
	s.refetch = newRefetcher(query.LeadDebounce, func(params url.Values) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout())
		defer cancel()
		if _, err := leads.Fetch(ctx, params); err != nil {
			log.Printf("⚠️ leads refetch: %v", err)
		}
	})

	// Centralized 401 policy: any unauthorized backend reply logs the
	// session out; the protected routes then redirect to /login.
	client.OnUnauthorized(func() {
		if err := auth.ClearAuth(); err != nil {
			log.Printf("⚠️ clear session after 401: %v", err)
		}
	})

	client.OnResult(middleware.RecordBackendCall)

	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Console.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", s.handleHealth)

	// Public routes.
	r.Get("/login", s.handleLoginPage)
	r.Post("/login", s.handleLogin)
	r.Post("/signup", s.handleSignup)
	r.Post("/reset-password", s.handleResetPassword)

	// Protected routes.
	r.Group(func(pr chi.Router) {
		pr.Use(s.requireAuth)

		pr.Get("/", s.handleDashboard)
		pr.Post("/logout", s.handleLogout)

		pr.Route("/leads", func(lr chi.Router) {
			lr.Get("/", s.handleLeadsPage)
			lr.Post("/", s.handleCreateLead)
			lr.Get("/followups", s.handleTodayFollowups)
			lr.Get("/{id}", s.handleLeadView)
			lr.Put("/{id}", s.handleUpdateLead)
			lr.Delete("/{id}", s.handleDeleteLead)
			lr.Put("/{id}/stage", s.handleUpdateStage)
			lr.Put("/{id}/note", s.handleSaveLeadNote)
			lr.Post("/{id}/appointments", s.handleCreateLeadAppointment)
		})

		pr.Route("/appointments", func(ar chi.Router) {
			ar.Get("/", s.handleAppointmentsPage)
			ar.Post("/", s.handleCreateAppointment)
			ar.Get("/calendar", s.handleCalendar)
			ar.Get("/today", s.handleTodayAppointments)
			ar.Put("/{id}", s.handleUpdateAppointment)
			ar.Delete("/{id}", s.handleDeleteAppointment)
			ar.Put("/{id}/mark-done", s.handleMarkDone)
		})
	})

	// Unmatched paths land on the dashboard.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/", http.StatusFound)
	})

	return r
}

// requireAuth redirects unauthenticated requests to the login page.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !s.auth.LoggedIn() {
			http.Redirect(w, req, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, req)
	})
}
