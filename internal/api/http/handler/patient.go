package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/service/patient"
)

type PatientHandler struct {
	svc *patient.Service
}

func NewPatientHandler(svc *patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func (h *PatientHandler) GetProfile(c fiber.Ctx) error {
	p, err := h.svc.Profile(c.Context(), c.Params("subjectId"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

func (h *PatientHandler) GetMedicalHistory(c fiber.Ctx) error {
	p, err := h.svc.MedicalHistory(c.Context(), c.Params("subjectId"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

func (h *PatientHandler) UpdateMedicalHistory(c fiber.Ctx) error {
	var req patient.MedicalHistoryUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateMedicalHistory(c.Context(), c.Params("subjectId"), req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

func (h *PatientHandler) UpdateProfile(c fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "malformed patient id")
	}

	var req patient.ProfileUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateProfile(c.Context(), id, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

func (h *PatientHandler) DeleteProfile(c fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return badRequest(c, "malformed patient id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

func (h *PatientHandler) ListDoctors(c fiber.Ctx) error {
	doctors, err := h.svc.ListDoctors(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, doctors)
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, "patient not found")
	case errors.Is(err, patient.ErrEmptyUpdate):
		return badRequest(c, "no updatable fields in payload")
	default:
		return internalError(c)
	}
}
