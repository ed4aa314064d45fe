package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/heal-clinic/heal_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(app fiber.Router, h *handler.PatientHandler) {
	app.Get("/get-profile/:subjectId", h.GetProfile)
	app.Get("/get-medical-history/:subjectId", h.GetMedicalHistory)
	app.Put("/update-medical-history/:subjectId", h.UpdateMedicalHistory)

	app.Put("/update-profile/:id", h.UpdateProfile)
	app.Delete("/delete-profile/:id", h.DeleteProfile)

	app.Get("/get-doctors", h.ListDoctors)
}
