package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/service/availability"
	"github.com/heal-clinic/heal_backend/internal/store"
)

type stubDoctorStore struct {
	doctors map[bson.ObjectID]*model.Doctor
}

func (s *stubDoctorStore) Insert(_ context.Context, d *model.Doctor) (bson.ObjectID, error) {
	id := bson.NewObjectID()
	d.ID = id
	s.doctors[id] = d
	return id, nil
}

func (s *stubDoctorStore) GetByID(_ context.Context, id bson.ObjectID) (*model.Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *stubDoctorStore) List(_ context.Context) ([]*model.Doctor, error) { return nil, nil }

func (s *stubDoctorStore) FindIDsByName(_ context.Context, _ string) ([]bson.ObjectID, error) {
	return nil, nil
}

func (s *stubDoctorStore) SetAvailability(_ context.Context, id bson.ObjectID, windows []model.AvailabilityWindow) (*model.Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	d.Availability = windows
	copied := *d
	return &copied, nil
}

func newAvailabilityApp(t *testing.T) (*fiber.App, *model.Doctor) {
	t.Helper()

	doctor := &model.Doctor{
		ID:       bson.NewObjectID(),
		FullName: "Dr. Meredith Grey",
		Availability: []model.AvailabilityWindow{
			{Day: "Monday", FromTime: "09:00", ToTime: "12:00"},
		},
	}
	doctors := &stubDoctorStore{doctors: map[bson.ObjectID]*model.Doctor{doctor.ID: doctor}}
	svc := availability.NewService(doctors, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := NewDoctorHandler(svc, nil)

	app := fiber.New()
	app.Put("/doctor/set-availability/:doctorId", h.SetAvailability)
	app.Get("/doctor/availability/:doctorId", h.GetAvailability)
	app.Get("/doctor/available-slots/:doctorId/:date", h.AvailableSlots)
	return app, doctor
}

func TestSetAvailabilityEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		doctorID   func(d *model.Doctor) string
		body       string
		wantStatus int
	}{
		{
			"valid batch",
			func(d *model.Doctor) string { return d.ID.Hex() },
			`{"availability":[{"day":"Tuesday","fromTime":"10:00","toTime":"14:00"}]}`,
			fiber.StatusOK,
		},
		{
			"unknown weekday",
			func(d *model.Doctor) string { return d.ID.Hex() },
			`{"availability":[{"day":"Caturday","fromTime":"10:00","toTime":"14:00"}]}`,
			fiber.StatusBadRequest,
		},
		{
			"empty batch",
			func(d *model.Doctor) string { return d.ID.Hex() },
			`{"availability":[]}`,
			fiber.StatusBadRequest,
		},
		{
			"unknown doctor",
			func(*model.Doctor) string { return bson.NewObjectID().Hex() },
			`{"availability":[{"day":"Tuesday","fromTime":"10:00","toTime":"14:00"}]}`,
			fiber.StatusNotFound,
		},
		{
			"malformed id",
			func(*model.Doctor) string { return "not-an-id" },
			`{"availability":[{"day":"Tuesday","fromTime":"10:00","toTime":"14:00"}]}`,
			fiber.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, doctor := newAvailabilityApp(t)

			req := httptest.NewRequest("PUT", "/doctor/set-availability/"+tt.doctorID(doctor), strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			res, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer res.Body.Close()
			if res.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, res.StatusCode)
			}
		})
	}
}

func TestAvailableSlotsEndpoint(t *testing.T) {
	app, doctor := newAvailabilityApp(t)

	t.Run("covered weekday", func(t *testing.T) {
		// 2026-03-02 is a Monday.
		req := httptest.NewRequest("GET", "/doctor/available-slots/"+doctor.ID.Hex()+"/2026-03-02", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}

		var body struct {
			Data []model.AvailabilityWindow `json:"data"`
		}
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Data) != 1 || body.Data[0].Day != "Monday" {
			t.Fatalf("unexpected slots: %+v", body.Data)
		}
	})

	t.Run("uncovered weekday", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/doctor/available-slots/"+doctor.ID.Hex()+"/2026-03-03", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.StatusCode)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/doctor/available-slots/"+doctor.ID.Hex()+"/03-02-2026", nil)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		defer res.Body.Close()
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", res.StatusCode)
		}
	})
}
