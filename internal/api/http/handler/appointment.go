package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/heal-clinic/heal_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc *appointment.Service
}

func NewAppointmentHandler(svc *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func (h *AppointmentHandler) List(c fiber.Ctx) error {
	views, err := h.svc.ListForPatient(c.Context(), c.Params("subjectId"), c.Query("status"))
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, views)
}

func (h *AppointmentHandler) Prescriptions(c fiber.Ctx) error {
	views, err := h.svc.Prescriptions(c.Context(), c.Params("subjectId"))
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, views)
}

func (h *AppointmentHandler) Payments(c fiber.Ctx) error {
	views, err := h.svc.Payments(c.Context(), c.Params("subjectId"), c.Query("search"), c.Query("sort"))
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, views)
}

func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var req appointment.BookRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrInvalidStatus):
		return badRequest(c, "status must be one of Upcoming, Completed, Follow-up, Previous, All")
	case errors.Is(err, appointment.ErrInvalidBooking):
		return badRequest(c, "date, time, and a valid consultation type are required")
	case errors.Is(err, appointment.ErrInvalidOutcome):
		return badRequest(c, "outcome must be Completed or Follow-up")
	case errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, "patient not found")
	case errors.Is(err, appointment.ErrDoctorNotFound):
		return notFound(c, "doctor not found")
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		return notFound(c, "appointment not found")
	case errors.Is(err, appointment.ErrAlreadyClosed):
		return conflict(c, "appointment is already closed")
	default:
		return internalError(c)
	}
}
