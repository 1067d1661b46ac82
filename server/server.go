package server

import (
	"fmt"
	"net/http"

	"github.com/railboard/railboard/authgate"
	"github.com/railboard/railboard/internal/config"
	"github.com/railboard/railboard/logtail"
	"github.com/railboard/railboard/railway"
	"github.com/railboard/railboard/session"
)

type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	config   config.Config
	sessions *session.Store
	gate     *authgate.Gate
	api      *railway.Client
	tailer   *logtail.Tailer
	metrics  *metrics
}

func New(cfg config.Config) (*Server, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("[Server New] %w", err)
	}

	sessions, err := session.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create session store: %w", err)
	}

	gate := authgate.New(cfg, sessions)

	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		sessions: sessions,
		gate:     gate,
		api:      railway.NewClient(cfg, gate),
		tailer:   logtail.New(cfg.GetPollInterval()),
		metrics:  newMetrics(),
	}

	s.initRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
