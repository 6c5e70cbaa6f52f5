package routers

import (
	"posyandu-console/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.List)
	router.Post("/", patientController.Create)
	router.Get("/{id}", patientController.Detail)
	router.Put("/{id}", patientController.Update)
	router.Delete("/{id}", patientController.Delete)
	router.Get("/{id}/examinations", patientController.Examinations)
}

func attachKaderRoutes(router chi.Router, kaderController *controllers.KaderController) {
	router.Get("/", kaderController.List)
	router.Post("/", kaderController.Create)
	router.Get("/{id}", kaderController.Detail)
	router.Put("/{id}", kaderController.Update)
	router.Delete("/{id}", kaderController.Delete)
}
