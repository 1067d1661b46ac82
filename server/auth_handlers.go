package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/railboard/railboard/pkce"
	"github.com/railboard/railboard/session"
)

// Error codes surfaced to the login page via /login?error=<code>. Short and
// opaque on purpose; the raw provider detail stays in the server log.
const (
	errCodeMissingParams = "missing_params"
	errCodeInvalidState  = "invalid_state"
	errCodeTokenExchange = "token_exchange"
)

// LoginInitHandler begins the authorization-code flow: generates the state
// nonce and PKCE pair, stores both in short-lived cookies, and forwards the
// browser to the provider.
func (s *Server) LoginInitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := pkce.State()
		if err != nil {
			log.Err(err).Msg("Failed to generate oauth state")
			writeJSONError(w, http.StatusInternalServerError, "failed to start login")
			return
		}

		verifier, challenge, err := pkce.Generate()
		if err != nil {
			log.Err(err).Msg("Failed to generate PKCE pair")
			writeJSONError(w, http.StatusInternalServerError, "failed to start login")
			return
		}

		s.sessions.SetFlowCookies(w, session.FlowState{
			State:        state,
			CodeVerifier: verifier,
		}, s.config.GetFlowCookieMaxAge())

		navigate(w, s.gate.AuthCodeURL(state, challenge))
	}
}

// CallbackHandler completes the flow. Every failure path clears the transient
// flow cookies and lands on /login with a short error code; the success path
// seals the session cookie and navigates to the dashboard.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		code := query.Get("code")
		state := query.Get("state")
		errorParam := query.Get("error")

		// The flow state is single-use regardless of outcome.
		flow := session.ReadFlowState(r)
		s.sessions.ClearFlowCookies(w)

		if errorParam != "" {
			log.Warn().
				Str("error", errorParam).
				Str("error_description", query.Get("error_description")).
				Msg("Provider denied authorization")
			redirectLoginError(w, r, errorParam)
			return
		}

		if code == "" || state == "" {
			redirectLoginError(w, r, errCodeMissingParams)
			return
		}

		if flow.State == "" || flow.State != state {
			log.Warn().Msg("OAuth state mismatch, possible CSRF")
			redirectLoginError(w, r, errCodeInvalidState)
			return
		}

		rec, err := s.gate.Exchange(r.Context(), code, flow.CodeVerifier)
		if err != nil {
			redirectLoginError(w, r, errCodeTokenExchange)
			return
		}

		if err := s.sessions.Save(w, rec); err != nil {
			log.Err(err).Msg("Failed to persist session after token exchange")
			redirectLoginError(w, r, errCodeTokenExchange)
			return
		}

		navigate(w, RouteIndex)
	}
}

// LogoutHandler destroys the session. Idempotent: logging out with no session
// is not an error.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.Clear(w)

		if r.Method == http.MethodPost {
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
			return
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

func redirectLoginError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, RouteLogin+"?error="+url.QueryEscape(code), http.StatusSeeOther)
}
