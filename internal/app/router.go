package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authAPI "silverdollar/internal/api/auth"
	gameAPI "silverdollar/internal/api/game"
	"silverdollar/internal/config"
	"silverdollar/internal/middleware"
)

type RouterDeps struct {
	Auth   *authAPI.Handler
	Game   *gameAPI.Handler
	JWTCfg config.JWTConfig
	Log    *slog.Logger
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(deps.Log))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth endpoints
	r.Route("/auth", func(rr chi.Router) {
		rr.Post("/register", deps.Auth.Register)
		rr.Post("/login", deps.Auth.Login)
		rr.Post("/refresh", deps.Auth.Refresh)
		rr.Post("/logout", deps.Auth.Logout)
	})

	// Game endpoints
	r.Route("/games", func(rr chi.Router) {
		rr.Use(middleware.Auth(deps.JWTCfg))
		rr.Post("/", deps.Game.Create)
		rr.Get("/{id}", deps.Game.Get)
		rr.Get("/{id}/check", deps.Game.Check)
		rr.Post("/{id}/moves", deps.Game.Move)
		rr.Delete("/{id}", deps.Game.Delete)
	})

	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.DebugContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", chimw.GetReqID(r.Context()),
			)
		})
	}
}
