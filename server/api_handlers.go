package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/railboard/railboard/logtail"
	"github.com/railboard/railboard/railway"
)

const (
	defaultLogLines = 200
	maxLogLines     = 500
)

// OverviewHandler returns the flattened service-environment status rows.
func (s *Server) OverviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		graph, err := s.api.FetchOverviewGraph(r.Context(), w, r)
		if err != nil {
			writeAPIError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, railway.OverviewRows(graph))
	}
}

// LogsHandler serves a bounded snapshot of recent log lines, no watermarking.
func (s *Server) LogsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := r.PathValue("serviceId")
		envID := r.URL.Query().Get("envId")
		if envID == "" {
			writeJSONError(w, http.StatusBadRequest, "envId query parameter is required")
			return
		}

		lines := clampLines(r.URL.Query().Get("lines"))

		entries, err := s.api.FetchLogPage(r.Context(), w, r, envID, serviceID, lines)
		if err != nil {
			writeAPIError(w, err)
			return
		}

		logs := make([]string, 0, len(entries))
		for _, entry := range entries {
			logs = append(logs, railway.FormatLine(entry))
		}
		writeJSON(w, http.StatusOK, map[string][]string{"logs": logs})
	}
}

// LogsStreamHandler bridges the log tailer onto a server-sent-event stream.
// The subscription lives exactly as long as the client connection.
func (s *Server) LogsStreamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := r.URL.Query().Get("serviceId")
		envID := r.URL.Query().Get("envId")
		if serviceID == "" || envID == "" {
			writeJSONError(w, http.StatusBadRequest, "serviceId and envId query parameters are required")
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeJSONError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		// Headers are flushed once the stream starts, so a refreshed session
		// cookie cannot be written back mid-stream. The token gate still
		// refreshes in memory; discard keeps it from touching the live writer.
		discard := newHeaderSink()
		fetch := func(ctx context.Context, limit int) ([]railway.LogEntry, error) {
			return s.api.FetchLogPage(ctx, discard, r, envID, serviceID, limit)
		}

		subscriberID := uuid.NewString()
		log.Debug().
			Str("subscriber", subscriberID).
			Str("service_id", serviceID).
			Str("env_id", envID).
			Msg("Log stream opened")

		for event := range s.tailer.Tail(r.Context(), subscriberID, fetch) {
			payload := ssepayload(event)
			if _, err := w.Write([]byte("data: " + payload + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// RedeployHandler triggers a redeploy of one service instance.
func (s *Server) RedeployHandler() http.HandlerFunc {
	type request struct {
		ServiceID     string `json:"serviceId"`
		EnvironmentID string `json:"environmentId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.ServiceID == "" || req.EnvironmentID == "" {
			writeJSONError(w, http.StatusBadRequest, "serviceId and environmentId are required")
			return
		}

		deploymentID, err := s.api.Redeploy(r.Context(), w, r, req.ServiceID, req.EnvironmentID)
		if err != nil {
			writeAPIError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"deploymentId": deploymentID})
	}
}

func clampLines(raw string) int {
	lines := defaultLogLines
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			lines = parsed
		}
	}
	if lines < 1 {
		lines = 1
	}
	if lines > maxLogLines {
		lines = maxLogLines
	}
	return lines
}

// ssepayload renders one tail event as the stream's JSON data payload.
func ssepayload(event logtail.Event) string {
	switch {
	case event.Connected:
		return `{"event":"connected"}`
	case event.Err != nil:
		b, _ := json.Marshal(map[string]string{"error": event.Err.Error()})
		return string(b)
	default:
		b, _ := json.Marshal(map[string]string{"line": event.Line})
		return string(b)
	}
}
