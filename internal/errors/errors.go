package errors

import (
	"errors"
	"fmt"
)

// Failure taxonomy for the dashboard backend
var (
	// Authentication flow errors
	ErrProviderDenied      = errors.New("provider denied the authorization request")
	ErrMissingParameters   = errors.New("missing required parameters")
	ErrStateMismatch       = errors.New("oauth state mismatch")
	ErrTokenExchangeFailed = errors.New("token exchange failed")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")

	// Configuration errors
	ErrServerMisconfigured = errors.New("server misconfigured")

	// Upstream API errors
	ErrUpstreamError = errors.New("upstream error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
