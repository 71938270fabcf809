package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	// Session lifecycle
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteSession, ChainMiddleware(s.SessionHandler(), s.APIMiddleware()...))

	// Authenticated surface
	s.RegisterRouteHandler("GET "+RouteNavigation, ChainMiddleware(s.NavigationHandler(), s.APIMiddleware(s.RequireSession())...))

	// Admin surface; impersonation eligibility is enforced here, not in the core
	s.RegisterRouteHandler("POST "+RouteImpersonate, ChainMiddleware(s.ImpersonateHandler(), s.APIMiddleware(s.RequireMasterAdmin())...))
	s.RegisterRouteHandler("GET "+RouteOrganizations, ChainMiddleware(s.OrganizationsHandler(), s.APIMiddleware(s.RequireMasterAdmin())...))
	s.RegisterRouteHandler("GET "+RoutePrincipals, ChainMiddleware(s.PrincipalsHandler(), s.APIMiddleware(s.RequireMasterAdmin())...))

	// Operational
	s.RegisterRouteHandler("GET "+RouteHealthz, ChainMiddleware(s.HealthzHandler()))
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())
}
