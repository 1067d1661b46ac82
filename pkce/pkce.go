// Package pkce generates the Proof Key for Code Exchange material used to
// bind an authorization code to this client (RFC 7636).
package pkce

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const (
	// verifierBytes is the entropy of the code verifier. 64 bytes encodes to
	// 86 base64url characters, well inside RFC 7636's 43-128 range.
	verifierBytes = 64

	// stateBytes is the entropy of the OAuth state nonce.
	stateBytes = 32
)

// Generate returns a code verifier and its S256 challenge. The verifier is
// base64url-encoded random bytes; the challenge is the base64url-encoded
// SHA-256 digest of the verifier.
func Generate() (verifier, challenge string, err error) {
	b := make([]byte, verifierBytes)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("pkce: failed to read random bytes: %w", err)
	}

	verifier = base64.RawURLEncoding.EncodeToString(b)
	hash := sha256.Sum256([]byte(verifier))
	challenge = base64.RawURLEncoding.EncodeToString(hash[:])

	return verifier, challenge, nil
}

// State returns a hex-encoded random nonce tying an authorization request to
// its callback.
func State() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("pkce: failed to generate state: %w", err)
	}
	return hex.EncodeToString(b), nil
}
