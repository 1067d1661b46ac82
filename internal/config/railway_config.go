package config

import (
	"strconv"
	"time"
)

type RailwayConfig interface {
	GetAPIURL() string
	GetPollInterval() time.Duration
	GetRequestTimeout() time.Duration
}

type Railway struct{}

var _ RailwayConfig = Railway{}

func (Railway) GetAPIURL() string {
	return GetEnv("RAILWAY_API_URL", "https://backboard.railway.com/graphql/v2")
}

func (Railway) GetPollInterval() time.Duration {
	if v := GetEnv("LOG_POLL_INTERVAL_SECONDS", ""); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 3 * time.Second
}

// GetRequestTimeout caps every outbound call to the provider's token and
// GraphQL endpoints.
func (Railway) GetRequestTimeout() time.Duration {
	return 15 * time.Second
}
