package routers

import (
	"fmt"
	"net/http"
	"posyandu-console/internal/app/config"
	"posyandu-console/internal/app/delivery/http/controllers"
	"posyandu-console/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Controllers groups every handler mounted by SetupRoutes.
type Controllers struct {
	Auth        *controllers.AuthController
	Patient     *controllers.PatientController
	Kader       *controllers.KaderController
	Examination *controllers.ExaminationController
	Schedule    *controllers.ScheduleController
	Vaccination *controllers.VaccinationController
	Dashboard   *controllers.DashboardController
	Realtime    *controllers.RealtimeController
	Health      *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	loginLimiter *middlewares.RateLimiter,
	metricsHandler http.Handler,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.FrontendOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Retry-After", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.Instrument)
	router.Use(middlewares.BodyLimit)

	router.Method(http.MethodGet, "/metrics", metricsHandler)
	router.Get("/healthz", ctrls.Health.Check)
	router.With(middlewares.Authenticate).Get("/ws", ctrls.Realtime.Stream)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter, ctrls.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				r.Use(middlewares.RequireAdmin)

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, ctrls.Patient)
				})
				r.Route("/kader", func(r chi.Router) {
					attachKaderRoutes(r, ctrls.Kader)
				})
				r.Route("/examinations", func(r chi.Router) {
					attachExaminationRoutes(r, ctrls.Examination)
				})
				r.Route("/schedules", func(r chi.Router) {
					attachScheduleRoutes(r, ctrls.Schedule)
				})
				r.Route("/vaccinations", func(r chi.Router) {
					attachVaccinationRoutes(r, ctrls.Vaccination)
				})
				r.Route("/dashboard", func(r chi.Router) {
					attachDashboardRoutes(r, ctrls.Dashboard)
				})
			})
		})
	})
}
