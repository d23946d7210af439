package routes

import (
	"net/http"

	"github.com/trackfit/trackfit/internal/app"
	"github.com/trackfit/trackfit/internal/handler"
	"github.com/trackfit/trackfit/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.Cfg.AppName)
	auth := handler.NewAuthHandler(app.AuthService)
	job := handler.NewJobHandler(app.JobService)

	requireAuth := middleware.RequireAuth(app.AuthService)

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /{$}", home.Index)
	mux.HandleFunc("GET /health", home.Health)
	mux.HandleFunc("POST /api/auth/register", auth.Register)
	mux.HandleFunc("POST /api/auth/login", auth.Login)

	// Protected
	mux.HandleFunc("GET /api/auth/me", requireAuth(auth.Me))
	mux.HandleFunc("GET /api/jobs", requireAuth(job.List))
	mux.HandleFunc("POST /api/jobs", requireAuth(job.Create))
	mux.HandleFunc("PUT /api/jobs/{id}", requireAuth(job.Update))
	mux.HandleFunc("DELETE /api/jobs/{id}", requireAuth(job.Delete))

	return middleware.Chain(mux,
		middleware.CORS(app.Cfg.AllowedOrigin),
		middleware.RequestLogging,
	)
}
