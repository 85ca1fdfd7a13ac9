package handlers

import (
	"BoltPass/internal/config"
	"BoltPass/internal/metrics"
	"BoltPass/internal/middleware"
	"BoltPass/internal/service"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services: зависимости хендлеров.
type Services struct {
	Users      *service.UserService
	Entries    *service.EntryService
	Categories *service.CategoryService
	Tokens     middleware.TokenVerifier
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svc Services,
	m *metrics.Metrics,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithMetrics(m))
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithGzip)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           int((10 * time.Minute).Seconds()),
	}))

	// Handlers
	userHandler := NewUserHandler(svc.Users, m, logger)
	entryHandler := NewEntryHandler(svc.Entries, logger)
	categoryHandler := NewCategoryHandler(svc.Categories, logger)

	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/api/ping", Ping)

	// Public auth routes, rate limited by IP
	r.Group(func(r chi.Router) {
		r.Use(httprate.Limit(
			config.AuthRateLimit,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				writeError(w, http.StatusTooManyRequests, "too many requests")
			}),
		))
		r.Post("/api/register", userHandler.Register)
		r.Post("/api/login", userHandler.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(svc.Tokens, m))

		r.Get("/api/entries/titles", entryHandler.Titles)
		r.Get("/api/entries/stats", entryHandler.Stats)
		r.Get("/api/entries", entryHandler.List)
		r.Post("/api/entries", entryHandler.Create)
		r.Get("/api/entries/{id}", entryHandler.Get)
		r.Put("/api/entries/{id}", entryHandler.Update)
		r.Delete("/api/entries/{id}", entryHandler.Delete)

		r.Get("/api/categories", categoryHandler.List)
	})

	return &Handler{Router: r}
}
