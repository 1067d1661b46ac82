package config

import "time"

type SessionConfig interface {
	GetSessionSecret() string
	GetSessionMaxAge() time.Duration
	GetFlowCookieMaxAge() time.Duration
}

// devSessionSecret is only ever used outside production. Validate rejects it
// when ENV=PROD.
const devSessionSecret = "min-32-char-secret-for-dev-only!!!!!!!!"

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionSecret() string {
	return GetEnv("SESSION_SECRET", devSessionSecret)
}

func (Session) GetSessionMaxAge() time.Duration {
	return 7 * 24 * time.Hour
}

// GetFlowCookieMaxAge bounds the lifetime of the transient oauth_state and
// oauth_code_verifier cookies that carry one in-flight login attempt.
func (Session) GetFlowCookieMaxAge() time.Duration {
	return 10 * time.Minute
}
