package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/lmittmann/tint"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/solidground/facade/internal/httperr"
	"github.com/solidground/facade/internal/httprate"
	"github.com/solidground/facade/internal/ver"
	"github.com/solidground/facade/server/store"
)

var (
	Name      = "facade"
	Namespace = "github.com/solidground/facade"
)

func NewServer(version ver.Version, cfg Config, documents *store.Store, signer jose.Signer, assets http.FileSystem) *Server {
	tracer := tracenoop.NewTracerProvider().Tracer(Name)
	if cfg.Otel.Trace.Enabled {
		tracer = otel.Tracer(Name)
	}

	s := &Server{
		version:   version,
		cfg:       cfg,
		documents: documents,
		signer:    signer,
		tracer:    tracer,
		assets:    assets,
		started:   time.Now(),
	}

	if cfg.RateLimit.Enabled {
		s.rateLimitHandler = httprate.NewRateLimiter(
			cfg.RateLimit.Requests,
			cfg.RateLimit.Duration,
			func(w http.ResponseWriter, r *http.Request) {
				s.error(w, r, httperr.TooManyRequests(ErrRateLimit))
			},
		).Handler
	}

	s.server = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: s.Routes(),
	}

	return s
}

type Server struct {
	version          ver.Version
	cfg              Config
	documents        *store.Store
	server           *http.Server
	signer           jose.Signer
	tracer           trace.Tracer
	assets           http.FileSystem
	rateLimitHandler func(http.Handler) http.Handler
	started          time.Time
}

func (s *Server) Start() {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("error while listening", tint.Err(err))
	}
}

func (s *Server) Close() {
	if err := s.server.Close(); err != nil {
		slog.Error("error while closing server", tint.Err(err))
	}
}
