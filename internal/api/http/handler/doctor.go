package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/service/appointment"
	"github.com/heal-clinic/heal_backend/internal/service/availability"
)

type DoctorHandler struct {
	availability *availability.Service
	appointments *appointment.Service
}

func NewDoctorHandler(av *availability.Service, ap *appointment.Service) *DoctorHandler {
	return &DoctorHandler{availability: av, appointments: ap}
}

type setAvailabilityRequest struct {
	Availability []model.AvailabilityWindow `json:"availability"`
}

func (h *DoctorHandler) SetAvailability(c fiber.Ctx) error {
	doctorID, err := bson.ObjectIDFromHex(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "malformed doctor id")
	}

	var req setAvailabilityRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	doctor, err := h.availability.Merge(c.Context(), doctorID, req.Availability)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, doctor)
}

func (h *DoctorHandler) GetAvailability(c fiber.Ctx) error {
	doctorID, err := bson.ObjectIDFromHex(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "malformed doctor id")
	}

	windows, err := h.availability.Get(c.Context(), doctorID)
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, windows)
}

func (h *DoctorHandler) AvailableSlots(c fiber.Ctx) error {
	doctorID, err := bson.ObjectIDFromHex(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "malformed doctor id")
	}

	slots, err := h.availability.SlotsForDate(c.Context(), doctorID, c.Params("date"))
	if err != nil {
		return mapAvailabilityError(c, err)
	}
	return ok(c, slots)
}

func (h *DoctorHandler) Appointments(c fiber.Ctx) error {
	doctorID, err := bson.ObjectIDFromHex(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "malformed doctor id")
	}

	views, err := h.appointments.ListForDoctor(c.Context(), doctorID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, views)
}

func (h *DoctorHandler) ApproveAppointment(c fiber.Ctx) error {
	appointmentID, err := bson.ObjectIDFromHex(c.Params("appointmentId"))
	if err != nil {
		return badRequest(c, "malformed appointment id")
	}

	var req appointment.CloseRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	closed, err := h.appointments.Close(c.Context(), appointmentID, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, closed)
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidBatch):
		return badRequest(c, "availability entries need a valid weekday and a time range")
	case errors.Is(err, availability.ErrDoctorNotFound):
		return notFound(c, "doctor not found")
	case errors.Is(err, availability.ErrInvalidDate):
		return badRequest(c, "date must be YYYY-MM-DD")
	case errors.Is(err, availability.ErrNoAvailability):
		return badRequest(c, "doctor has no availability on this day")
	default:
		return internalError(c)
	}
}
