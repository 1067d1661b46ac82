// Package authgate drives the three-legged OAuth flow against the provider
// and hands out currently-valid access tokens, refreshing transparently when
// the stored token is near expiry.
package authgate

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/internal/errors"
	"github.com/railboard/railboard/session"
)

// refreshSkew is how close to expiry a token may get before the gate
// refreshes it. Avoids a refresh call on every request.
const refreshSkew = 60 * time.Second

// defaultTokenLifetime applies when the provider omits expires_in.
const defaultTokenLifetime = time.Hour

type Gate struct {
	oauth    *oauth2.Config
	sessions *session.Store
	client   *http.Client
}

func New(cfg config.Config, sessions *session.Store) *Gate {
	return &Gate{
		oauth: &oauth2.Config{
			ClientID:     cfg.GetClientID(),
			ClientSecret: cfg.GetClientSecret(),
			RedirectURL:  cfg.GetRedirectURI(),
			Scopes:       cfg.GetScopes(),
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.GetAuthURL(),
				TokenURL: cfg.GetTokenURL(),
				// The provider expects client_secret_basic.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		sessions: sessions,
		client:   &http.Client{Timeout: cfg.GetRequestTimeout()},
	}
}

// AuthCodeURL builds the provider authorization URL for one login attempt.
func (g *Gate) AuthCodeURL(state, challenge string) string {
	return g.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange swaps an authorization code for a session record. The raw provider
// response is logged server-side only and never reaches the browser.
func (g *Gate) Exchange(ctx context.Context, code, verifier string) (session.Record, error) {
	opts := []oauth2.AuthCodeOption{}
	if verifier != "" {
		opts = append(opts, oauth2.SetAuthURLParam("code_verifier", verifier))
	}

	tok, err := g.oauth.Exchange(g.withHTTPClient(ctx), code, opts...)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			log.Error().
				Int("status", rerr.Response.StatusCode).
				Str("body", string(rerr.Body)).
				Msg("Token exchange rejected by provider")
		} else {
			log.Err(err).Msg("Token exchange failed")
		}
		return session.Record{}, errors.Wrapf(errors.ErrTokenExchangeFailed, "code exchange")
	}

	return recordFromToken(tok, ""), nil
}

// Token returns a currently-valid access token for the request's session, or
// ok=false when no usable token exists and the caller must re-authenticate.
//
// Concurrent requests may each observe an expiring token and refresh in
// parallel; the last writer to the session cookie wins. Tolerated rather than
// serialized given the single-user trust boundary.
func (g *Gate) Token(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	rec, ok := g.sessions.Load(r)
	if !ok {
		return "", false
	}

	if !rec.ExpiresWithin(refreshSkew) {
		return rec.AccessToken, true
	}

	if rec.RefreshToken == "" {
		// Session cannot self-heal.
		return "", false
	}

	src := g.oauth.TokenSource(g.withHTTPClient(ctx), &oauth2.Token{RefreshToken: rec.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		// Fall back to the stored (possibly expired) token; the downstream
		// API call gives the caller an authoritative rejection.
		log.Err(err).Msg("Token refresh failed, using stored token")
		return rec.AccessToken, true
	}

	refreshed := recordFromToken(tok, rec.RefreshToken)
	if err := g.sessions.Save(w, refreshed); err != nil {
		log.Err(err).Msg("Failed to persist refreshed session")
	}
	return refreshed.AccessToken, true
}

func (g *Gate) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, g.client)
}

// recordFromToken maps a provider token response onto a session record.
// Providers may rotate or keep the refresh token; previousRefresh fills the
// gap when a new one is omitted.
func recordFromToken(tok *oauth2.Token, previousRefresh string) session.Record {
	refresh := tok.RefreshToken
	if refresh == "" {
		refresh = previousRefresh
	}

	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = time.Now().Add(defaultTokenLifetime)
	}

	return session.Record{
		AccessToken:  tok.AccessToken,
		RefreshToken: refresh,
		ExpiresAt:    expiry.UnixMilli(),
	}
}
