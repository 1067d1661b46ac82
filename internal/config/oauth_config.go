package config

type OAuthConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetAuthURL() string
	GetTokenURL() string
	GetScopes() []string
	GetRedirectURI() string
}

type OAuth struct{}

var _ OAuthConfig = OAuth{}

func (OAuth) GetClientID() string {
	return GetEnv("RAILWAY_CLIENT_ID", "")
}

func (OAuth) GetClientSecret() string {
	return GetEnv("RAILWAY_CLIENT_SECRET", "")
}

func (OAuth) GetAuthURL() string {
	return GetEnv("RAILWAY_AUTH_URL", "https://backboard.railway.com/oauth/auth")
}

func (OAuth) GetTokenURL() string {
	return GetEnv("RAILWAY_TOKEN_URL", "https://backboard.railway.com/oauth/token")
}

func (OAuth) GetScopes() []string {
	return []string{"openid", "email", "profile", "offline_access", "workspace:viewer"}
}

func (o OAuth) GetRedirectURI() string {
	return EnvVars{}.GetBaseURL() + "/api/auth/callback"
}
