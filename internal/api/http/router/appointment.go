package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/heal-clinic/heal_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(app fiber.Router, h *handler.AppointmentHandler) {
	app.Get("/get-appointments/:subjectId", h.List)
	app.Get("/get-prescriptions/:subjectId", h.Prescriptions)
	app.Get("/get-payments/:subjectId", h.Payments)

	app.Post("/book-appointment", h.Book)
}
