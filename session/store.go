// Package session owns the encrypted session cookie and the short-lived
// cookies that carry one in-flight OAuth login attempt. The cookie is the only
// place session state lives; the server keeps nothing else.
package session

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/railboard/railboard/internal/config"
)

// CookieName is the session cookie. The route guard checks for its presence;
// only Load performs full decryption.
const CookieName = "railboard_session"

type Store struct {
	aead   cipher.AEAD
	maxAge time.Duration
	secure bool
}

// NewStore derives the cookie encryption key from the configured session
// secret. The secret length is validated at startup by config.Validate.
func NewStore(cfg config.Config) (*Store, error) {
	key := sha256.Sum256([]byte(cfg.GetSessionSecret()))
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("session: failed to initialise cipher: %w", err)
	}
	return &Store{
		aead:   aead,
		maxAge: cfg.GetSessionMaxAge(),
		secure: cfg.GetEnv() == "PROD",
	}, nil
}

// Load decrypts the session cookie. Any missing, tampered, or undecodable
// cookie reads as "no session".
func (s *Store) Load(r *http.Request) (Record, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Record{}, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil || len(raw) < chacha20poly1305.NonceSize {
		return Record{}, false
	}

	nonce, ciphertext := raw[:chacha20poly1305.NonceSize], raw[chacha20poly1305.NonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal(plaintext, &rec); err != nil {
		return Record{}, false
	}
	if !rec.Valid() {
		return Record{}, false
	}
	return rec, true
}

// Save seals the record into the session cookie on w.
func (s *Store) Save(w http.ResponseWriter, rec Record) error {
	plaintext, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: failed to encode record: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("session: failed to generate nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, plaintext, nil)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(sealed),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.maxAge.Seconds()),
	})
	return nil
}

// Clear destroys the session cookie. Safe to call when no session exists.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Present reports whether a session cookie exists and is non-empty. This is a
// presence check only; full validation happens when the session is read.
func Present(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	return err == nil && cookie.Value != ""
}
