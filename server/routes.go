package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 10 << 20

// securityHeaders are set on every response. No Content-Security-Policy:
// the API serves JSON and PDF only.
var securityHeaders = [][2]string{
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Origin-Agent-Cluster", "?1"},
	{"Referrer-Policy", "no-referrer"},
	{"Strict-Transport-Security", "max-age=15552000; includeSubDomains"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-DNS-Prefetch-Control", "off"},
	{"X-Download-Options", "noopen"},
	{"X-Frame-Options", "SAMEORIGIN"},
	{"X-Permitted-Cross-Domain-Policies", "none"},
	{"X-XSS-Protection", "0"},
}

// Handler builds the routed handler.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(requestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(accessLog(s.logger))
	router.Use(s.metrics.middleware)
	for _, h := range securityHeaders {
		router.Use(chimiddleware.SetHeader(h[0], h[1]))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// promhttp negotiates its own gzip
	router.Handle("/metrics", s.metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(chimiddleware.Compress(5))

		r.Get("/", s.root)
		r.Get("/api/health", s.health)

		r.Group(func(r chi.Router) {
			if s.limiter != nil {
				r.Use(s.limiter.middleware)
			}
			r.Use(chimiddleware.RequestSize(maxBodyBytes))

			r.Post("/generate-roadmap", s.generateRoadmap)
			r.Get("/get-resources/*", s.getResources)
			r.Get("/api/resources/youtube/*", s.youtubeVideo)
			r.Get("/api/resources/articles/*", s.articles)
			r.Post("/generate-notes", s.generateNotes)
			r.Post("/generate-pdf", s.generatePDF)
			r.Post("/diagram", s.diagram)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, http.StatusNotFound, "route not found", "")
	})

	if s.tracing {
		return otelhttp.NewHandler(router, "studymap",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
	return router
}
