package routers

import (
	"geics-service/internal/app/delivery/http/middlewares"
	"geics-service/internal/app/services/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Put("/{appointmentID}/confirm", appointmentController.ConfirmAppointment)
	router.With(middlewares.Authenticate).Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
