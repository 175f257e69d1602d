package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	slogchi "github.com/samber/slog-chi"

	"github.com/solidground/facade/internal/ezhttp"
	"github.com/solidground/facade/internal/httperr"
	"github.com/solidground/facade/server/store"
)

var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrRateLimit          = errors.New("rate limit exceeded")
	ErrEmptyBody          = errors.New("empty request body")
	ErrInvalidJSON        = errors.New("request body is not valid JSON")
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(otelchi.Middleware(Name, otelchi.WithChiRoutes(r)))
	r.Use(middleware.CleanPath)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(slogchi.NewWithConfig(slog.Default(), slogchi.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelDebug,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithSpanID:       s.cfg.Otel.Enabled,
		WithTraceID:      s.cfg.Otel.Enabled,
		Filters: []slogchi.Filter{
			slogchi.IgnorePathPrefix("/assets"),
			slogchi.IgnorePathPrefix("/uploads"),
		},
	}))
	r.Use(cacheControl)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	if s.cfg.RateLimit.Enabled {
		r.Use(s.RateLimit)
	}
	r.Use(middleware.GetHead)

	if s.cfg.Debug {
		r.Mount("/debug", middleware.Profiler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/admin/login", s.Login)
		r.Get("/health", s.GetHealth)

		r.Route("/content", func(r chi.Router) {
			r.Get("/", s.GetContent)
			r.Get("/{section}", s.GetContentSection)
			r.With(s.Authenticate).Put("/{section}", s.PutContentSection)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.GetSettings)
			r.With(s.Authenticate).Put("/", s.PutSettings)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", s.GetBlog)
			r.Get("/{slug}", s.GetBlogPost)
			r.Group(func(r chi.Router) {
				r.Use(s.Authenticate)
				r.Post("/", s.PostBlogPost)
				r.Put("/{postID}", s.PutBlogPost)
				r.Delete("/{postID}", s.DeleteBlogPost)
			})
		})

		r.With(s.Authenticate).Post("/upload", s.PostUpload)
	})

	r.Get("/assets/theme.css", s.ThemeCSS)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.cfg.UploadsDir))))
	r.Handle("/*", http.FileServer(s.assets))

	if s.cfg.HTTPTimeout > 0 {
		return http.TimeoutHandler(r, s.cfg.HTTPTimeout, "Request timed out")
	}
	return r
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, HealthResponse{
		Status:    "OK",
		Timestamp: store.FormatTime(time.Now()),
		Storage:   "File-based JSON",
		Version:   s.version.Short(),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, http.ErrHandlerTimeout) {
		return
	}

	status := http.StatusInternalServerError
	var httpErr *httperr.Error
	if errors.As(err, &httpErr) {
		status = httpErr.Status
	}

	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "internal server error", slog.Any("err", err))
	}
	s.json(w, r, ezhttp.ErrorResponse{
		Message:   err.Error(),
		Status:    status,
		Path:      r.URL.Path,
		RequestID: middleware.GetReqID(r.Context()),
	}, status)
}

func (s *Server) ok(w http.ResponseWriter, r *http.Request, v any) {
	if v == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.json(w, r, v, http.StatusOK)
}

func (s *Server) json(w http.ResponseWriter, r *http.Request, v any, status int) {
	w.Header().Set(ezhttp.HeaderContentType, ezhttp.ContentTypeJSON)
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.ErrorContext(r.Context(), "failed to encode json", slog.Any("err", err))
	}
}

// rawJSON writes pre-encoded JSON with an xxhash ETag; repeat fetches from the
// loader get a 304 instead of the whole document.
func (s *Server) rawJSON(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	if writeETag(w, r, raw) {
		return
	}
	w.Header().Set(ezhttp.HeaderContentType, ezhttp.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(raw); err != nil && !errors.Is(err, http.ErrHandlerTimeout) {
		slog.ErrorContext(r.Context(), "failed to write json", slog.Any("err", err))
	}
}
