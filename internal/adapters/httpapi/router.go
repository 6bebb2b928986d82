// Package httpapi is the presentation adapter: form intake, stats for the
// public portal page, and the token-gated admin surface (table, exports,
// upload downloads).
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"regportal/internal/domain/entities"
	"regportal/internal/ports/input"
	"regportal/internal/ports/output"
)

// Server wires ports into the chi router.
type Server struct {
	mux        *chi.Mux
	ledger     input.RegistrationUseCase
	files      output.FileStore
	catalog    entities.Catalog
	translator output.T
	adminToken string
	locale     string
	ceiling    int
}

func NewServer(
	ledger input.RegistrationUseCase,
	files output.FileStore,
	catalog entities.Catalog,
	translator output.T,
	adminToken string,
	locale string,
	ceiling int,
) *Server {
	s := &Server{
		mux:        chi.NewRouter(),
		ledger:     ledger,
		files:      files,
		catalog:    catalog,
		translator: translator,
		adminToken: adminToken,
		locale:     locale,
		ceiling:    ceiling,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.Use(middleware.RealIP)
	s.mux.Use(middleware.Logger)
	s.mux.Use(middleware.Recoverer)

	s.mux.Route("/api", func(api chi.Router) {
		api.Post("/registrations", s.handleSubmit)
		api.Get("/events", s.handleEvents)
		api.Get("/stats", s.handleStats)
		api.Get("/email-check", s.handleEmailCheck)

		// Download tokens are minted by the admin surface and are
		// themselves the credential.
		api.Get("/uploads/{token}", s.handleDownload)

		api.Group(func(admin chi.Router) {
			admin.Use(s.requireAdmin)
			admin.Get("/registrations", s.handleAdminList)
			admin.Get("/registrations/export", s.handleExport)
		})
	})

	s.mux.Handle("/metrics", promhttp.Handler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
