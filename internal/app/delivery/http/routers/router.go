package routers

import (
	"geics-service/internal/app/config"
	"geics-service/internal/app/delivery/http/middlewares"
	"geics-service/internal/app/services/appointments"
	"geics-service/internal/app/services/auth"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
	authController *auth.AuthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	router.Route("/api", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})
		r.With(middlewares.Authenticate).Get("/test-email", appointmentController.SendTestEmail)
	})

	attachPageRoutes(router, internalConfig, middlewares, authController)
}

// attachPageRoutes serves the static frontend: public landing page, login
// page, and the gate-protected admin dashboard.
func attachPageRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
) {
	publicDir := internalConfig.App.PublicDir

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(publicDir, "index.html"))
	})
	router.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		// An already-authenticated admin skips the login form.
		if user, err := authController.ResolveRequest(r); err == nil && user != "" {
			http.Redirect(w, r, "/admin", http.StatusFound)
			return
		}
		http.ServeFile(w, r, filepath.Join(publicDir, "login.html"))
	})
	router.With(middlewares.Authenticate).Get("/admin", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(publicDir, "admin.html"))
	})

	fileServer := http.FileServer(http.Dir(publicDir))
	router.Handle("/*", fileServer)
}
