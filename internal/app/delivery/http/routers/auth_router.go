package routers

import (
	"posyandu-console/internal/app/delivery/http/controllers"
	"posyandu-console/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	if loginLimiter != nil {
		router.With(loginLimiter.Limit).Post("/login", authController.Login)
	} else {
		router.Post("/login", authController.Login)
	}
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/session", authController.Session)
}
