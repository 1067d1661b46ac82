package server

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.AppName}}</title>
</head>
<body>
  <h1>{{.AppName}}</h1>
  <p>Deployment dashboard. Service status: <code>GET /api/overview</code>.
     Live logs: <code>GET /api/logs/stream?serviceId=&amp;envId=</code>.</p>
  <form method="post" action="/api/auth/logout">
    <button type="submit">Sign out</button>
  </form>
</body>
</html>
`))

var loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Sign in – {{.AppName}}</title>
</head>
<body>
  <h1>{{.AppName}}</h1>
  {{if .ErrorCode}}<p role="alert">Sign-in failed: <code>{{.ErrorCode}}</code>. Please try again.</p>{{end}}
  <p><a href="/api/auth/login">Sign in with Railway</a></p>
</body>
</html>
`))

// IndexHandler serves the dashboard shell. The route guard has already
// verified a session cookie is present.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != RouteIndex {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		err := indexTemplate.Execute(w, struct{ AppName string }{AppName: s.config.GetAppName()})
		if err != nil {
			log.Err(err).Msg("Failed to render index page")
		}
	}
}

// LoginPageHandler serves the sign-in page, surfacing any error code the
// callback attached to the query string.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		err := loginTemplate.Execute(w, struct {
			AppName   string
			ErrorCode string
		}{
			AppName:   s.config.GetAppName(),
			ErrorCode: r.URL.Query().Get("error"),
		})
		if err != nil {
			log.Err(err).Msg("Failed to render login page")
		}
	}
}
