package server

import "net/http"

// headerSink is a ResponseWriter that swallows everything. The log stream
// fetches run after the SSE headers are flushed, when a refreshed session
// cookie can no longer reach the client; the token gate writes it here
// instead of corrupting the live stream.
type headerSink struct {
	header http.Header
}

func newHeaderSink() *headerSink {
	return &headerSink{header: http.Header{}}
}

func (h *headerSink) Header() http.Header { return h.header }

func (h *headerSink) Write(b []byte) (int, error) { return len(b), nil }

func (h *headerSink) WriteHeader(int) {}
