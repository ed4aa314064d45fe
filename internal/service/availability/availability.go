// Package availability manages a doctor's weekly consultation windows:
// weekday-batch updates and per-date slot lookup.
package availability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/store"
)

const dateLayout = "2006-01-02"

type Service struct {
	doctors store.DoctorStore
	logger  *slog.Logger
}

func NewService(doctors store.DoctorStore, logger *slog.Logger) *Service {
	return &Service{
		doctors: doctors,
		logger:  logger.With("service", "availability"),
	}
}

// Merge replaces the doctor's windows for every weekday named in the batch
// and keeps the rest untouched. The whole batch wins over whatever the
// doctor previously had on those days, so resubmitting the same batch is a
// no-op. Window times are opaque strings; overlaps and inverted ranges are
// stored as given.
func (s *Service) Merge(ctx context.Context, doctorID bson.ObjectID, windows []model.AvailabilityWindow) (*model.Doctor, error) {
	if len(windows) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrInvalidBatch)
	}
	for _, w := range windows {
		if !model.Weekdays[w.Day] {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidBatch, w.Day)
		}
		if w.FromTime == "" || w.ToTime == "" {
			return nil, fmt.Errorf("%w: missing time range for %s", ErrInvalidBatch, w.Day)
		}
	}

	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	proposed := make(map[string]bool, len(windows))
	for _, w := range windows {
		proposed[w.Day] = true
	}

	merged := make([]model.AvailabilityWindow, 0, len(doctor.Availability)+len(windows))
	for _, w := range doctor.Availability {
		if !proposed[w.Day] {
			merged = append(merged, w)
		}
	}
	merged = append(merged, windows...)

	updated, err := s.doctors.SetAvailability(ctx, doctorID, merged)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "availability updated",
		"doctor_id", doctorID.Hex(),
		"days", len(proposed),
		"windows", len(updated.Availability),
	)
	return updated, nil
}

// Get returns the doctor's raw availability list.
func (s *Service) Get(ctx context.Context, doctorID bson.ObjectID) ([]model.AvailabilityWindow, error) {
	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return doctor.Availability, nil
}

// SlotsForDate resolves the date's weekday and returns every window the
// doctor has on it. A date whose weekday is uncovered is an error, never an
// empty success.
func (s *Service) SlotsForDate(ctx context.Context, doctorID bson.ObjectID, date string) ([]model.AvailabilityWindow, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	weekday := day.Weekday().String()

	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	var slots []model.AvailabilityWindow
	for _, w := range doctor.Availability {
		if w.Day == weekday {
			slots = append(slots, w)
		}
	}
	if len(slots) == 0 {
		return nil, ErrNoAvailability
	}
	return slots, nil
}
