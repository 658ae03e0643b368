package routers

import (
	"geics-service/internal/app/delivery/http/middlewares"
	"geics-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
	router.Get("/auth/me", authController.Me)
}
