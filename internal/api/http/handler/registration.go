package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/heal-clinic/heal_backend/internal/service/registration"
)

type RegistrationHandler struct {
	svc *registration.Service
}

func NewRegistrationHandler(svc *registration.Service) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

func (h *RegistrationHandler) Register(c fiber.Ctx) error {
	var req registration.Request
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Register(c.Context(), req)
	if err != nil {
		return mapRegistrationError(c, err)
	}
	return created(c, res)
}

func mapRegistrationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, registration.ErrMissingFields):
		return badRequest(c, "firstName, lastName, email, and password are required")
	case errors.Is(err, registration.ErrEmailTaken):
		return conflict(c, "an account with this email already exists")
	default:
		return internalError(c)
	}
}
