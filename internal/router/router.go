package router

import (
	"context"
	"net/http"
	"time"

	mem "animal-shelter/internal/adapters/storage/memory"
	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/middleware"
	"animal-shelter/internal/platform/logger"

	_ "animal-shelter/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Store agrupa los repositorios de un backend (memoria, SQLite, Postgres).
type Store interface {
	Users() users.Repository
	Animals() animals.Repository
	Adoptions() adoptions.Repository
}

// Pinger lo implementan los stores con conexión; /health lo usa si existe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RateLimit struct {
	RPS   float64 // <= 0 desactiva
	Burst int
}

type Options struct {
	// Opcional: si no viene, in-memory.
	Store Store

	Logger    logger.Logger // puede ser nil
	RateLimit RateLimit
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Tracing)

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	r.Get("/health", healthHandler(store))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(store.Users())
	animalsSvc := animals.NewService(store.Animals())
	adoptionsSvc := adoptions.NewService(store.Adoptions())

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc)
	animals.RegisterRoutes(r, animalsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc, middleware.RateLimit(opts.RateLimit.RPS, opts.RateLimit.Burst))

	return r
}

func healthHandler(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p, ok := store.(Pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				logger.FromContext(r.Context()).Error("health check failed", map[string]any{"error": err})
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
