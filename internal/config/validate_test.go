package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/internal/errors"
)

func TestValidate(t *testing.T) {
	t.Run("missing client id", func(t *testing.T) {
		t.Setenv("RAILWAY_CLIENT_ID", "")
		t.Setenv("RAILWAY_CLIENT_SECRET", "secret")

		err := config.Validate(config.New())
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrServerMisconfigured))
	})

	t.Run("missing client secret", func(t *testing.T) {
		t.Setenv("RAILWAY_CLIENT_ID", "id")
		t.Setenv("RAILWAY_CLIENT_SECRET", "")

		err := config.Validate(config.New())
		require.Error(t, err)
	})

	t.Run("short session secret", func(t *testing.T) {
		t.Setenv("RAILWAY_CLIENT_ID", "id")
		t.Setenv("RAILWAY_CLIENT_SECRET", "secret")
		t.Setenv("SESSION_SECRET", "too-short")

		err := config.Validate(config.New())
		require.Error(t, err)
		require.True(t, errors.Is(err, errors.ErrServerMisconfigured))
	})

	t.Run("dev secret rejected in production", func(t *testing.T) {
		t.Setenv("RAILWAY_CLIENT_ID", "id")
		t.Setenv("RAILWAY_CLIENT_SECRET", "secret")
		t.Setenv("ENV", "PROD")

		err := config.Validate(config.New())
		require.Error(t, err)
	})

	t.Run("dev secret allowed outside production", func(t *testing.T) {
		t.Setenv("RAILWAY_CLIENT_ID", "id")
		t.Setenv("RAILWAY_CLIENT_SECRET", "secret")
		t.Setenv("ENV", "DEV")

		require.NoError(t, config.Validate(config.New()))
	})

	t.Run("explicit secret in production", func(t *testing.T) {
		t.Setenv("RAILWAY_CLIENT_ID", "id")
		t.Setenv("RAILWAY_CLIENT_SECRET", "secret")
		t.Setenv("ENV", "PROD")
		t.Setenv("SESSION_SECRET", strings.Repeat("x", 32))

		require.NoError(t, config.Validate(config.New()))
	})
}

func TestEnvDefaults(t *testing.T) {
	c := config.New()

	require.Equal(t, ":8080", c.GetPort())
	require.Equal(t, "http://localhost:8080/api/auth/callback", c.GetRedirectURI())
	require.Contains(t, c.GetScopes(), "offline_access")
	require.Equal(t, "https://backboard.railway.com/graphql/v2", c.GetAPIURL())
}

func TestPollIntervalOverride(t *testing.T) {
	t.Setenv("LOG_POLL_INTERVAL_SECONDS", "10")
	require.Equal(t, "10s", config.New().GetPollInterval().String())

	t.Setenv("LOG_POLL_INTERVAL_SECONDS", "junk")
	require.Equal(t, "3s", config.New().GetPollInterval().String())
}
