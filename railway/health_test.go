package railway_test

import (
	"testing"

	"github.com/railboard/railboard/railway"
	"github.com/stretchr/testify/require"
)

func TestStatusToHealth(t *testing.T) {
	cases := map[string]railway.Health{
		"FAILED":    railway.HealthDown,
		"CRASHED":   railway.HealthDown,
		"REMOVED":   railway.HealthDown,
		"BUILDING":  railway.HealthDeploying,
		"DEPLOYING": railway.HealthDeploying,
		"QUEUED":    railway.HealthDeploying,
		"WAITING":   railway.HealthDeploying,
		"SUCCESS":   railway.HealthHealthy,
		"SLEEPING":  railway.HealthDegraded,
		"CANCELED":  railway.HealthUnknown,
		"SKIPPED":   railway.HealthUnknown,
		"":          railway.HealthUnknown,
		"garbage":   railway.HealthUnknown,
	}

	for status, want := range cases {
		t.Run("status "+status, func(t *testing.T) {
			require.Equal(t, want, railway.StatusToHealth(status))
			// Pure function: a second call gives the same answer.
			require.Equal(t, want, railway.StatusToHealth(status))
		})
	}
}

func TestStatusToHealth_CaseInsensitive(t *testing.T) {
	require.Equal(t, railway.HealthHealthy, railway.StatusToHealth("success"))
	require.Equal(t, railway.HealthDown, railway.StatusToHealth("Crashed"))
	require.Equal(t, railway.HealthDeploying, railway.StatusToHealth("qUeUeD"))
}

func TestWorstHealth(t *testing.T) {
	t.Run("empty is unknown", func(t *testing.T) {
		require.Equal(t, railway.HealthUnknown, railway.WorstHealth(nil))
	})

	t.Run("down beats everything", func(t *testing.T) {
		healths := []railway.Health{
			railway.HealthHealthy,
			railway.HealthDown,
			railway.HealthDeploying,
		}
		require.Equal(t, railway.HealthDown, railway.WorstHealth(healths))
	})

	t.Run("degraded beats healthy", func(t *testing.T) {
		healths := []railway.Health{railway.HealthHealthy, railway.HealthDegraded}
		require.Equal(t, railway.HealthDegraded, railway.WorstHealth(healths))
	})
}
