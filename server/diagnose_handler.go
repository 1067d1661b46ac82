package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// DiagnoseHandler probes the provider's authorize endpoint with the
// configured client id and reports the raw outcome. Exists to debug OAuth-app
// misconfiguration: the provider answers 400 invalid_client for an id it does
// not recognise and a redirect when the flow would work.
func (s *Server) DiagnoseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := s.config.GetClientID()
		redirectURI := s.config.GetRedirectURI()

		authURL, err := url.Parse(s.config.GetAuthURL())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "invalid auth URL configured")
			return
		}
		q := authURL.Query()
		q.Set("response_type", "code")
		q.Set("client_id", clientID)
		q.Set("redirect_uri", redirectURI)
		q.Set("scope", "openid email profile")
		q.Set("state", "diagnose")
		authURL.RawQuery = q.Encode()

		client := &http.Client{
			Timeout: s.config.GetRequestTimeout(),
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}

		resp, err := client.Get(authURL.String())
		if err != nil {
			writeJSONError(w, http.StatusBadGateway, "provider unreachable: "+err.Error())
			return
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var parsed any
		if err := json.Unmarshal(body, &parsed); err != nil {
			parsed = string(body)
		}

		prefix := clientID
		if len(prefix) > 16 {
			prefix = prefix[:16] + "..."
		}

		var hint string
		switch {
		case resp.StatusCode == http.StatusBadRequest:
			hint = "invalid_client: the provider does not recognise this client id; check the OAuth app configuration in the workspace settings"
		case resp.StatusCode >= 300 && resp.StatusCode < 400:
			hint = "redirect received: client id looks valid, the flow should work"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":         resp.StatusCode,
			"url":            authURL.String(),
			"redirectUri":    redirectURI,
			"clientIdPrefix": prefix,
			"response":       parsed,
			"hint":           hint,
		})
	}
}
