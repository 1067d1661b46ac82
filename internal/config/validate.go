package config

import (
	"github.com/railboard/railboard/internal/errors"
)

const minSessionSecretLength = 32

// Validate checks the configuration a running server cannot operate without.
// Called once at startup; the process refuses to start on error.
func Validate(c Config) error {
	if c.GetClientID() == "" {
		return errors.Wrapf(errors.ErrServerMisconfigured, "RAILWAY_CLIENT_ID is not set")
	}
	if c.GetClientSecret() == "" {
		return errors.Wrapf(errors.ErrServerMisconfigured, "RAILWAY_CLIENT_SECRET is not set")
	}
	secret := c.GetSessionSecret()
	if len(secret) < minSessionSecretLength {
		return errors.Wrapf(errors.ErrServerMisconfigured, "SESSION_SECRET must be at least %d characters", minSessionSecretLength)
	}
	if c.GetEnv() == productionEnv && secret == devSessionSecret {
		return errors.Wrapf(errors.ErrServerMisconfigured, "SESSION_SECRET must be set explicitly in production")
	}
	return nil
}
