package session

import (
	"net/http"
	"time"
)

// Cookie names for the transient OAuth flow state. Both values are single-use
// nonces scoped to one in-flight login attempt.
const (
	StateCookieName    = "oauth_state"
	VerifierCookieName = "oauth_code_verifier"
)

// FlowState carries the anti-CSRF state nonce and PKCE secret between the
// login initiation and the provider callback.
type FlowState struct {
	State        string
	CodeVerifier string
}

// SetFlowCookies stores the flow state in short-lived http-only cookies.
func (s *Store) SetFlowCookies(w http.ResponseWriter, fs FlowState, maxAge time.Duration) {
	seconds := int(maxAge.Seconds())
	http.SetCookie(w, s.flowCookie(StateCookieName, fs.State, seconds))
	http.SetCookie(w, s.flowCookie(VerifierCookieName, fs.CodeVerifier, seconds))
}

// ReadFlowState returns the stored flow state. Missing cookies read as empty
// strings; the callback handler decides what that means.
func ReadFlowState(r *http.Request) FlowState {
	var fs FlowState
	if c, err := r.Cookie(StateCookieName); err == nil {
		fs.State = c.Value
	}
	if c, err := r.Cookie(VerifierCookieName); err == nil {
		fs.CodeVerifier = c.Value
	}
	return fs
}

// ClearFlowCookies removes both flow cookies. Called unconditionally once the
// callback completes, success or failure, to prevent replay.
func (s *Store) ClearFlowCookies(w http.ResponseWriter) {
	http.SetCookie(w, s.flowCookie(StateCookieName, "", -1))
	http.SetCookie(w, s.flowCookie(VerifierCookieName, "", -1))
}

func (s *Store) flowCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
