package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Pages
	RouteIndex = "/"
	RouteLogin = "/login"

	// Auth API
	RouteAuthLogin    = "/api/auth/login"
	RouteAuthCallback = "/api/auth/callback"
	RouteAuthLogout   = "/api/auth/logout"
	RouteAuthDiagnose = "/api/auth/diagnose"

	// Dashboard API
	RouteOverview   = "/api/overview"
	RouteLogs       = "/api/logs/{serviceId}"
	RouteLogsStream = "/api/logs/stream"
	RouteRedeploy   = "/api/redeploy"

	// Operational
	RouteMetrics = "/metrics"
	RouteHealthz = "/healthz"
)
