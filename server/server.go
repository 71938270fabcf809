package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/harborline/portal/identity"
	"github.com/harborline/portal/internal/config"
	"github.com/harborline/portal/organizations"
	"github.com/harborline/portal/principals"
)

// Repos holds the directory dependencies for the Server.
type Repos struct {
	Principals    principals.Repo
	Organizations organizations.Repo
}

type Server struct {
	env     string // Environment (e.g., "DEV", "PROD")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	session *identity.Manager
	repos   Repos
	log     zerolog.Logger
}

func New(cfg config.Config, session *identity.Manager, repos Repos, log zerolog.Logger) (*Server, error) {
	if session == nil {
		return nil, errors.New("[server.New] session manager is required")
	}
	if repos.Principals == nil {
		return nil, errors.New("[server.New] principals repo is required")
	}
	if repos.Organizations == nil {
		return nil, errors.New("[server.New] organizations repo is required")
	}

	s := &Server{
		mux:     http.NewServeMux(),
		config:  cfg,
		session: session,
		repos:   repos,
		log:     log,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		s.log.Info().Str("route", route).Msg("registered")
	}
}
