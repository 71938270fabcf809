package server

const (
	RouteLogin         = "/api/login"
	RouteLogout        = "/api/logout"
	RouteSession       = "/api/session"
	RouteImpersonate   = "/api/impersonate"
	RouteNavigation    = "/api/navigation"
	RouteOrganizations = "/api/organizations"
	RoutePrincipals    = "/api/principals"
	RouteHealthz       = "/healthz"
	RouteMetrics       = "/metrics"
)
