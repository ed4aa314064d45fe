package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/heal-clinic/heal_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(app fiber.Router, h *handler.DoctorHandler) {
	doctor := app.Group("/doctor")

	doctor.Put("/set-availability/:doctorId", h.SetAvailability)
	doctor.Get("/availability/:doctorId", h.GetAvailability)
	doctor.Get("/available-slots/:doctorId/:date", h.AvailableSlots)

	doctor.Get("/appointments/:doctorId", h.Appointments)
	doctor.Put("/approve-appointment/:appointmentId", h.ApproveAppointment)
}
