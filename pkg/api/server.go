// Package api exposes editor sessions over HTTP.
//
// Every route under /sessions/{id} maps to one controller operation and runs
// inside the session's lock, so events of one session never interleave.
// Responses are JSON except the rendered images. Errors have the shape
//
//	{"code": "WEIGHT_PENDING", "message": "weight prompt already pending"}
//
// with the HTTP status derived from the code.
package api

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/graphsketch/pkg/cache"
	"github.com/matzehuels/graphsketch/pkg/session"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	store    session.Store
	cache    cache.Cache
	cacheTTL time.Duration
	gatherer prometheus.Gatherer
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCache caches rendered PNGs for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Server) {
		if c != nil {
			s.cache = c
			s.cacheTTL = ttl
		}
	}
}

// WithMetrics serves g at /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a server over store.
func New(store session.Store, opts ...Option) *Server {
	s := &Server{
		store:  store,
		cache:  cache.NewNullCache(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.health)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.createSession)
		r.Route("/{session}", func(r chi.Router) {
			r.Get("/", s.getSession)
			r.Delete("/", s.deleteSession)

			r.Post("/nodes", s.addNode)
			r.Post("/nodes/{node}/drag", s.dragNode)
			r.Post("/nodes/{node}/click", s.clickNode)

			r.Put("/style", s.setStyle)
			r.Post("/weight", s.confirmWeight)
			r.Delete("/weight", s.cancelWeight)

			r.Get("/edges/{index}", s.describeEdge)
			r.Post("/export", s.exportGraph)

			r.Get("/canvas.svg", s.canvasSVG)
			r.Get("/graph.png", s.graphPNG)
		})
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
