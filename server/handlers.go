package server

import (
	"encoding/json"
	"net/http"

	"github.com/harborline/portal/entitlements"
	"github.com/harborline/portal/identity"
	"github.com/harborline/portal/internal/metrics"
	"github.com/harborline/portal/internal/utils"
	"github.com/harborline/portal/principals"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Principal     *principals.Principal `json:"principal"`
	Impersonating bool                  `json:"impersonating"`
	OriginalID    *string               `json:"original_id,omitempty"`
}

type impersonateRequest struct {
	PrincipalID string `json:"principal_id"`
}

type navigationResponse struct {
	Portal     entitlements.Portal    `json:"portal"`
	Navigation []entitlements.NavItem `json:"navigation"`
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		principal, err := s.session.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			switch err {
			case identity.ErrEmailRequired:
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusUnauthorized, "invalid credentials")
			}
			return
		}

		metrics.LoginAttempts.WithLabelValues("success").Inc()
		writeJSON(w, http.StatusOK, sessionResponse{Principal: principal})
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.session.Logout()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := s.session.CurrentPrincipal()
		if current == nil {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		resp := sessionResponse{
			Principal:     current,
			Impersonating: s.session.IsImpersonating(),
		}
		if original := s.session.OriginalPrincipal(); original != nil {
			resp.OriginalID = utils.Ptr(original.ID)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) ImpersonateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req impersonateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.PrincipalID == "" {
			writeError(w, http.StatusBadRequest, "principal_id is required")
			return
		}

		target, err := s.repos.Principals.GetByID(req.PrincipalID)
		if err != nil {
			writeError(w, http.StatusNotFound, "principal not found")
			return
		}

		s.session.Impersonate(target)
		metrics.Impersonations.Inc()

		resp := sessionResponse{
			Principal:     s.session.CurrentPrincipal(),
			Impersonating: s.session.IsImpersonating(),
		}
		if original := s.session.OriginalPrincipal(); original != nil {
			resp.OriginalID = utils.Ptr(original.ID)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) NavigationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := s.session.CurrentPrincipal()
		writeJSON(w, http.StatusOK, navigationResponse{
			Portal:     entitlements.PortalFor(current.Role),
			Navigation: entitlements.NavigationFor(current.Role),
		})
	}
}

func (s *Server) OrganizationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgs, err := s.repos.Organizations.List(0, 0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list organizations")
			return
		}
		writeJSON(w, http.StatusOK, orgs)
	}
}

func (s *Server) PrincipalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.repos.Principals.List(0, 0)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list principals")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
