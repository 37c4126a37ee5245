package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterOptions struct {
	// AuthMiddleware resolves the request subject; required.
	AuthMiddleware func(http.Handler) http.Handler

	// AllowedOrigins configures CORS for the browser frontend.
	AllowedOrigins []string

	Logger  *zap.Logger
	Metrics *Metrics
}

// NewRouter constructs the API HTTP router.
//
// This is intentionally a thin adapter: middleware and route wiring only;
// all behavior lives in the application services behind Server.
func NewRouter(api *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if opts.Logger != nil {
		r.Use(requestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Debug-Subject"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if opts.AuthMiddleware != nil {
		r.Use(opts.AuthMiddleware)
	}

	// Health endpoint is unauthenticated (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/v1/faq", api.handleFAQ)

	r.Route("/v1/portal", func(r chi.Router) {
		r.Post("/registration", api.handleEnsureRegistration)
		r.Get("/registration", api.handleGetMyRegistration)
		r.Put("/registration", api.handleUpdateMyRegistration)
		r.Put("/consents", api.handleSaveConsents)
		r.Post("/resume", api.handleUploadResume)
		r.Get("/resume/link", api.handleMyResumeLink)
	})

	r.Route("/v1/admin", func(r chi.Router) {
		r.Get("/registrations", api.handleAdminListRegistrations)
		r.Get("/registrations/{accountID}", api.handleAdminGetRegistration)
		r.Put("/registrations/{accountID}/profile", api.handleAdminUpdateProfile)
		r.Post("/registrations/status", api.handleAdminSetStatus)
		r.Post("/registrations/lock", api.handleAdminSetLock)
		r.Post("/registrations/delete", api.handleAdminDelete)
		r.Post("/resumes/links", api.handleAdminResumeLinks)
		r.Get("/resumes/shared", api.handleAdminSharedResumes)
		r.Get("/export.csv", api.handleAdminExportCSV)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
