package railway

import "strings"

// healthOrder ranks health values worst-first for WorstHealth.
var healthOrder = map[Health]int{
	HealthDown:      0,
	HealthDegraded:  1,
	HealthDeploying: 2,
	HealthHealthy:   3,
	HealthUnknown:   4,
}

// StatusToHealth maps an upstream deployment status string onto the Health
// enumeration. Deterministic and case-insensitive; anything unmapped,
// including an absent status, is UNKNOWN.
func StatusToHealth(status string) Health {
	switch strings.ToUpper(status) {
	case "FAILED", "CRASHED", "REMOVED":
		return HealthDown
	case "BUILDING", "DEPLOYING", "QUEUED", "WAITING":
		return HealthDeploying
	case "SUCCESS":
		return HealthHealthy
	case "SLEEPING":
		return HealthDegraded
	default:
		return HealthUnknown
	}
}

// WorstHealth returns the worst value of the given healths, UNKNOWN for an
// empty slice. Used to roll service rows up to a project badge.
func WorstHealth(healths []Health) Health {
	if len(healths) == 0 {
		return HealthUnknown
	}
	worst := healths[0]
	for _, h := range healths[1:] {
		if healthOrder[h] < healthOrder[worst] {
			worst = h
		}
	}
	return worst
}
