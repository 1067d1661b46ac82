package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	// Pages (route-guarded)
	s.mux.Handle("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.PageMiddleware(s.RouteGuard())...))
	s.mux.Handle("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.PageMiddleware(s.RouteGuard())...))

	// Auth API: never guarded, these endpoints establish the session
	s.mux.Handle("GET "+RouteAuthLogin, ChainMiddleware(s.LoginInitHandler(), s.APIMiddleware()...))
	s.mux.Handle("GET "+RouteAuthCallback, ChainMiddleware(s.CallbackHandler(), s.APIMiddleware()...))
	s.mux.Handle("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.mux.Handle("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.mux.Handle("GET "+RouteAuthDiagnose, ChainMiddleware(s.DiagnoseHandler(), s.APIMiddleware()...))

	// Dashboard API: handlers answer 401 themselves so browsers polling with
	// a dead session get JSON, not a redirect
	s.mux.Handle("GET "+RouteOverview, ChainMiddleware(s.OverviewHandler(), s.APIMiddleware()...))
	s.mux.Handle("GET "+RouteLogsStream, ChainMiddleware(s.LogsStreamHandler(), s.APIMiddleware()...))
	s.mux.Handle("GET "+RouteLogs, ChainMiddleware(s.LogsHandler(), s.APIMiddleware()...))
	s.mux.Handle("POST "+RouteRedeploy, ChainMiddleware(s.RedeployHandler(), s.APIMiddleware()...))

	// Operational
	s.mux.Handle("GET "+RouteMetrics, promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	s.mux.Handle("GET "+RouteHealthz, ChainMiddleware(s.HealthzHandler()))
}

func (s *Server) HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
