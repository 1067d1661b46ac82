package session

import "time"

// Record is the single cookie-backed session for one authenticated browser.
// A record with no access token is equivalent to no session at all.
type Record struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresAt    int64  `json:"expiresAt"` // milliseconds since epoch
}

// Valid reports whether the record represents a usable session.
func (r Record) Valid() bool {
	return r.AccessToken != ""
}

// ExpiresWithin reports whether the access token expires before now+d.
// A zero ExpiresAt is treated as never expiring, matching providers that
// omit expires_in.
func (r Record) ExpiresWithin(d time.Duration) bool {
	if r.ExpiresAt == 0 {
		return false
	}
	return r.ExpiresAt <= time.Now().Add(d).UnixMilli()
}
