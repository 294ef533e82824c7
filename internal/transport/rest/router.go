package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/employee-directory/internal/auth"
	"github.com/frahmantamala/employee-directory/internal/employee"
	"github.com/frahmantamala/employee-directory/internal/transport/middleware"
	"github.com/frahmantamala/employee-directory/internal/transport/swagger"
)

// RegisterAllRoutes wires the HTTP surface: the welcome payload at the
// root, health probes, swagger, and the /api/auth employee routes.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, employeeHandler *employee.Handler, authHandler *auth.Handler, logger *slog.Logger, allowedOrigins string) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/", welcomeHandler)
	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", employeeHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/all", employeeHandler.GetAll)
		r.Get("/search", employeeHandler.Search)
		// keep the id route last so literal paths take priority
		r.Get("/{id}", employeeHandler.GetByID)
	})
}

func welcomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"msg": "welcome..."}`))
}
