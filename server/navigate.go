package server

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

// navigateTemplate is the set-cookies-then-navigate page. Some browsers drop
// cookies attached to a 30x redirect, so any response that both sets cookies
// and moves the browser serves a 200 page that forwards itself instead.
var navigateTemplate = template.Must(template.New("navigate").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="0;url={{.URL}}">
  <script>window.location.replace({{.URL}});</script>
  <title>Redirecting…</title>
</head>
<body>
  <p>Redirecting. <a href="{{.URL}}">Continue</a> if nothing happens.</p>
</body>
</html>
`))

// navigate serves the redirect page. Callers must set all cookies on w before
// calling; the page goes out with them in the same response.
func navigate(w http.ResponseWriter, url string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Cache-Control", "no-store")
	if err := navigateTemplate.Execute(w, struct{ URL string }{URL: url}); err != nil {
		log.Err(err).Msg("Failed to render navigate page")
	}
}
