package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/heal-clinic/heal_backend/internal/api/http/handler"
)

func (r *Router) registerRegistrationRoutes(app fiber.Router, h *handler.RegistrationHandler) {
	app.Post("/register", h.Register)
}
