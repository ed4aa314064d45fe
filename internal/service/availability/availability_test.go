package availability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/store"
)

type fakeDoctorStore struct {
	doctors map[bson.ObjectID]*model.Doctor
}

func newFakeDoctorStore(doctors ...*model.Doctor) *fakeDoctorStore {
	s := &fakeDoctorStore{doctors: make(map[bson.ObjectID]*model.Doctor)}
	for _, d := range doctors {
		s.doctors[d.ID] = d
	}
	return s
}

func (s *fakeDoctorStore) Insert(_ context.Context, d *model.Doctor) (bson.ObjectID, error) {
	id := bson.NewObjectID()
	d.ID = id
	s.doctors[id] = d
	return id, nil
}

func (s *fakeDoctorStore) GetByID(_ context.Context, id bson.ObjectID) (*model.Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (s *fakeDoctorStore) List(_ context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (s *fakeDoctorStore) FindIDsByName(_ context.Context, _ string) ([]bson.ObjectID, error) {
	return nil, nil
}

func (s *fakeDoctorStore) SetAvailability(_ context.Context, id bson.ObjectID, windows []model.AvailabilityWindow) (*model.Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	d.Availability = windows
	copied := *d
	return &copied, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func window(day, from, to string) model.AvailabilityWindow {
	return model.AvailabilityWindow{Day: day, FromTime: from, ToTime: to}
}

func TestMergeValidation(t *testing.T) {
	doctor := &model.Doctor{ID: bson.NewObjectID(), FullName: "Dr. Meredith Grey"}
	svc := NewService(newFakeDoctorStore(doctor), testLogger())

	tests := []struct {
		name    string
		windows []model.AvailabilityWindow
	}{
		{"empty batch", nil},
		{"unknown weekday", []model.AvailabilityWindow{window("Funday", "09:00", "12:00")}},
		{"missing from time", []model.AvailabilityWindow{window("Monday", "", "12:00")}},
		{"missing to time", []model.AvailabilityWindow{window("Monday", "09:00", "")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Merge(context.Background(), doctor.ID, tt.windows)
			if !errors.Is(err, ErrInvalidBatch) {
				t.Fatalf("expected ErrInvalidBatch, got %v", err)
			}
		})
	}
}

func TestMergeUnknownDoctor(t *testing.T) {
	svc := NewService(newFakeDoctorStore(), testLogger())

	_, err := svc.Merge(context.Background(), bson.NewObjectID(), []model.AvailabilityWindow{
		window("Monday", "09:00", "12:00"),
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestMergeReplacesProposedDaysOnly(t *testing.T) {
	doctor := &model.Doctor{
		ID:       bson.NewObjectID(),
		FullName: "Dr. Meredith Grey",
		Availability: []model.AvailabilityWindow{
			window("Monday", "09:00", "12:00"),
			window("Tuesday", "10:00", "13:00"),
			window("Tuesday", "15:00", "17:00"),
		},
	}
	svc := NewService(newFakeDoctorStore(doctor), testLogger())

	updated, err := svc.Merge(context.Background(), doctor.ID, []model.AvailabilityWindow{
		window("Tuesday", "08:00", "11:00"),
		window("Friday", "14:00", "18:00"),
	})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}

	perDay := make(map[string][]model.AvailabilityWindow)
	for _, w := range updated.Availability {
		perDay[w.Day] = append(perDay[w.Day], w)
	}

	if got := perDay["Monday"]; len(got) != 1 || got[0].FromTime != "09:00" {
		t.Errorf("Monday should be untouched, got %+v", got)
	}
	if got := perDay["Tuesday"]; len(got) != 1 || got[0].FromTime != "08:00" {
		t.Errorf("Tuesday should hold only the proposed window, got %+v", got)
	}
	if got := perDay["Friday"]; len(got) != 1 || got[0].FromTime != "14:00" {
		t.Errorf("Friday should be added, got %+v", got)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	doctor := &model.Doctor{ID: bson.NewObjectID(), FullName: "Dr. Meredith Grey"}
	svc := NewService(newFakeDoctorStore(doctor), testLogger())

	batch := []model.AvailabilityWindow{
		window("Monday", "09:00", "12:00"),
		window("Monday", "14:00", "17:00"),
	}

	first, err := svc.Merge(context.Background(), doctor.ID, batch)
	if err != nil {
		t.Fatalf("first merge: %v", err)
	}
	second, err := svc.Merge(context.Background(), doctor.ID, batch)
	if err != nil {
		t.Fatalf("second merge: %v", err)
	}
	if len(first.Availability) != len(second.Availability) {
		t.Fatalf("resubmitting a batch changed the window count: %d then %d",
			len(first.Availability), len(second.Availability))
	}
}

func TestSlotsForDate(t *testing.T) {
	doctor := &model.Doctor{
		ID:       bson.NewObjectID(),
		FullName: "Dr. Meredith Grey",
		Availability: []model.AvailabilityWindow{
			window("Monday", "09:00", "12:00"),
			window("Monday", "14:00", "17:00"),
			window("Wednesday", "10:00", "13:00"),
		},
	}
	svc := NewService(newFakeDoctorStore(doctor), testLogger())

	// 2026-03-02 is a Monday, 2026-03-03 a Tuesday.
	tests := []struct {
		name    string
		date    string
		want    int
		wantErr error
	}{
		{"covered weekday", "2026-03-02", 2, nil},
		{"uncovered weekday", "2026-03-03", 0, ErrNoAvailability},
		{"malformed date", "03/02/2026", 0, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := svc.SlotsForDate(context.Background(), doctor.ID, tt.date)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("slots: %v", err)
			}
			if len(slots) != tt.want {
				t.Fatalf("expected %d slots, got %d", tt.want, len(slots))
			}
		})
	}
}

func TestGetUnknownDoctor(t *testing.T) {
	svc := NewService(newFakeDoctorStore(), testLogger())
	if _, err := svc.Get(context.Background(), bson.NewObjectID()); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}
