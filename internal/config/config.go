package config

type Config interface {
	EnvConfig
	OAuthConfig
	SessionConfig
	RailwayConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
	GetLogLevel() string
}

type mainConfig struct {
	EnvVars
	OAuth
	Session
	Railway
}

func New() Config {
	return mainConfig{}
}
