package server

import (
	"net/http"

	"github.com/railboard/railboard/session"
)

// RouteGuard gate-keeps the page routes. Unauthenticated traffic is sent to
// the login entry point; a logged-in user landing on /login is sent straight
// to the dashboard instead of re-triggering login. This is a cookie presence
// check only; the session store does the cryptographic validation when the
// session is actually read.
func (s *Server) RouteGuard() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			hasSession := session.Present(r)
			isLoginPage := r.URL.Path == RouteLogin

			if !hasSession && !isLoginPage {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}
			if hasSession && isLoginPage {
				http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
				return
			}

			next(w, r)
		}
	}
}
