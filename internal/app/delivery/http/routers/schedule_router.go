package routers

import (
	"posyandu-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachScheduleRoutes(router chi.Router, scheduleController *controllers.ScheduleController) {
	router.Get("/", scheduleController.List)
	router.Post("/", scheduleController.Create)
	router.Get("/calendar", scheduleController.Calendar)
	router.Get("/upcoming", scheduleController.Upcoming)
	router.Put("/{id}", scheduleController.Update)
	router.Put("/{id}/status", scheduleController.UpdateStatus)
	router.Post("/{id}/complete", scheduleController.Complete)
	router.Delete("/{id}", scheduleController.Delete)
}

func attachVaccinationRoutes(router chi.Router, vaccinationController *controllers.VaccinationController) {
	router.Get("/", vaccinationController.List)
	router.Post("/", vaccinationController.Create)
	router.Put("/{id}", vaccinationController.Update)
	router.Delete("/{id}", vaccinationController.Delete)
	router.Post("/{id}/register", vaccinationController.Register)
}
