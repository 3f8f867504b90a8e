// Package gateway exposes the generation surfaces over HTTP. A single
// POST endpoint multiplexes every action behind an explicit
// discriminator, so the transport stays one handler wide regardless of
// how many surfaces the providers grow.
package gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/indomind-ai/indomind/pkg/admin"
	"github.com/indomind-ai/indomind/pkg/history"
	"github.com/indomind-ai/indomind/pkg/models"
	"github.com/indomind-ai/indomind/pkg/registry"
)

// sessionHeader names the request header carrying the session identity.
// Missing or blank falls back to the anonymous session.
const sessionHeader = "X-Session-ID"

const anonymousSession = "anonymous"

// Server wires the providers, the registry, the admin console and the
// history log behind the HTTP surface.
type Server struct {
	text     models.TextModel
	media    models.MediaModel
	console  *admin.Console
	registry *registry.Registry
	history  history.Store
	log      *slog.Logger
}

// Options collect the server dependencies. Text, Media, Admin and
// Registry are required; History defaults to an in-memory store and Log
// to slog.Default.
type Options struct {
	Text     models.TextModel
	Media    models.MediaModel
	Admin    models.AdminModel
	Registry *registry.Registry
	History  history.Store
	Log      *slog.Logger
}

func NewServer(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	store := opts.History
	if store == nil {
		store = history.NewInMemoryStore(history.DefaultRetention)
	}
	return &Server{
		text:     opts.Text,
		media:    opts.Media,
		console:  admin.NewConsole(opts.Admin, opts.Registry, log),
		registry: opts.Registry,
		history:  store,
		log:      log,
	}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/api/generate", s.handleGenerate)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}

// requestLogger emits one structured line per request with the final
// status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get(sessionHeader); id != "" {
		return id
	}
	return anonymousSession
}
