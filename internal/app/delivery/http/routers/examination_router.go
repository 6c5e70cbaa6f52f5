package routers

import (
	"posyandu-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachExaminationRoutes(router chi.Router, examinationController *controllers.ExaminationController) {
	router.Get("/", examinationController.List)
	router.Post("/", examinationController.Create)
	router.Post("/metrics", examinationController.Metrics)
	router.Get("/report/monthly", examinationController.MonthlyReport)
	router.Put("/{id}", examinationController.Update)
	router.Delete("/{id}", examinationController.Delete)
}

func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Get("/stats", dashboardController.Stats)
}
