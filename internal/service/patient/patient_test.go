package patient

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

type fakePatientStore struct {
	patients map[bson.ObjectID]*model.Patient
}

func newFakePatientStore(patients ...*model.Patient) *fakePatientStore {
	s := &fakePatientStore{patients: make(map[bson.ObjectID]*model.Patient)}
	for _, p := range patients {
		s.patients[p.ID] = p
	}
	return s
}

func (s *fakePatientStore) Insert(_ context.Context, p *model.Patient) (bson.ObjectID, error) {
	id := bson.NewObjectID()
	p.ID = id
	s.patients[id] = p
	return id, nil
}

func (s *fakePatientStore) GetByID(_ context.Context, id bson.ObjectID) (*model.Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *fakePatientStore) GetBySubjectID(_ context.Context, subjectID string) (*model.Patient, error) {
	for _, p := range s.patients {
		if p.SubjectID == subjectID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakePatientStore) List(_ context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePatientStore) SetBySubjectID(_ context.Context, subjectID string, fields bson.M) (*model.Patient, error) {
	for _, p := range s.patients {
		if p.SubjectID == subjectID {
			applyFields(p, fields)
			copied := *p
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakePatientStore) SetByID(_ context.Context, id bson.ObjectID, fields bson.M) (*model.Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	applyFields(p, fields)
	copied := *p
	return &copied, nil
}

func (s *fakePatientStore) DeleteByID(_ context.Context, id bson.ObjectID) error {
	if _, ok := s.patients[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.patients, id)
	return nil
}

func applyFields(p *model.Patient, fields bson.M) {
	for k, v := range fields {
		switch k {
		case "firstName":
			p.FirstName = v.(string)
		case "lastName":
			p.LastName = v.(string)
		case "dob":
			p.DOB = v.(string)
		case "contact":
			p.Contact = v.(string)
		case "age":
			p.Age = v.(int)
		case "weight":
			p.Weight = v.(float64)
		case "height":
			p.Height = v.(float64)
		case "bloodGroup":
			p.BloodGroup = v.(string)
		case "medicalHistory":
			p.MedicalHistory = v.(string)
		case "currentMedications":
			p.CurrentMedications = v.(string)
		case "allergies":
			p.Allergies = v.(string)
		}
	}
}

type fakeDoctorStore struct {
	doctors []*model.Doctor
}

func (s *fakeDoctorStore) Insert(_ context.Context, d *model.Doctor) (bson.ObjectID, error) {
	d.ID = bson.NewObjectID()
	s.doctors = append(s.doctors, d)
	return d.ID, nil
}

func (s *fakeDoctorStore) GetByID(_ context.Context, _ bson.ObjectID) (*model.Doctor, error) {
	return nil, store.ErrNotFound
}

func (s *fakeDoctorStore) List(_ context.Context) ([]*model.Doctor, error) {
	return s.doctors, nil
}

func (s *fakeDoctorStore) FindIDsByName(_ context.Context, _ string) ([]bson.ObjectID, error) {
	return nil, nil
}

func (s *fakeDoctorStore) SetAvailability(_ context.Context, _ bson.ObjectID, _ []model.AvailabilityWindow) (*model.Doctor, error) {
	return nil, store.ErrNotFound
}

func newService(patients *fakePatientStore, doctors *fakeDoctorStore) *Service {
	if doctors == nil {
		doctors = &fakeDoctorStore{}
	}
	stores := &store.Stores{Patients: patients, Doctors: doctors}
	return NewService(stores, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }
func fptr(f float64) *float64 { return &f }

func TestProfile(t *testing.T) {
	p := &model.Patient{
		ID:        bson.NewObjectID(),
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha.rao@example.com",
		SubjectID: "00u1abcdEFGH",
	}
	svc := newService(newFakePatientStore(p), nil)

	got, err := svc.Profile(context.Background(), p.SubjectID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if got.Email != p.Email {
		t.Fatalf("wrong document: %+v", got)
	}

	if _, err := svc.Profile(context.Background(), "00uMissing"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestUpdateMedicalHistoryAllowList(t *testing.T) {
	p := &model.Patient{
		ID:        bson.NewObjectID(),
		FirstName: "Asha",
		Email:     "asha.rao@example.com",
		SubjectID: "00u1abcdEFGH",
	}
	svc := newService(newFakePatientStore(p), nil)

	updated, err := svc.UpdateMedicalHistory(context.Background(), p.SubjectID, MedicalHistoryUpdate{
		Age:        intptr(34),
		Weight:     fptr(62.5),
		BloodGroup: strptr("O+"),
		Allergies:  strptr("Penicillin"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Age != 34 || updated.Weight != 62.5 || updated.BloodGroup != "O+" || updated.Allergies != "Penicillin" {
		t.Fatalf("clinical fields not applied: %+v", updated)
	}
	if updated.FirstName != "Asha" || updated.Email != "asha.rao@example.com" {
		t.Fatalf("update touched fields outside the allow-list: %+v", updated)
	}
}

func TestUpdateMedicalHistoryPartialPayload(t *testing.T) {
	p := &model.Patient{
		ID:         bson.NewObjectID(),
		SubjectID:  "00u1abcdEFGH",
		BloodGroup: "O+",
		Allergies:  "Penicillin",
	}
	svc := newService(newFakePatientStore(p), nil)

	updated, err := svc.UpdateMedicalHistory(context.Background(), p.SubjectID, MedicalHistoryUpdate{
		MedicalHistory: strptr("Hypertension since 2024"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MedicalHistory != "Hypertension since 2024" {
		t.Fatalf("field not applied: %+v", updated)
	}
	if updated.BloodGroup != "O+" || updated.Allergies != "Penicillin" {
		t.Fatalf("absent fields must stay untouched: %+v", updated)
	}
}

func TestUpdateMedicalHistoryEmptyPayload(t *testing.T) {
	svc := newService(newFakePatientStore(), nil)
	_, err := svc.UpdateMedicalHistory(context.Background(), "00u1abcdEFGH", MedicalHistoryUpdate{})
	if !errors.Is(err, ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	p := &model.Patient{ID: bson.NewObjectID(), FirstName: "Asha", SubjectID: "00u1abcdEFGH"}
	svc := newService(newFakePatientStore(p), nil)

	updated, err := svc.UpdateProfile(context.Background(), p.ID, ProfileUpdate{
		LastName: strptr("Rao-Kumar"),
		Contact:  strptr("+91 98765 43210"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.LastName != "Rao-Kumar" || updated.Contact != "+91 98765 43210" {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.FirstName != "Asha" {
		t.Fatalf("absent field changed: %+v", updated)
	}
}

func TestDelete(t *testing.T) {
	p := &model.Patient{ID: bson.NewObjectID(), SubjectID: "00u1abcdEFGH"}
	fake := newFakePatientStore(p)
	svc := newService(fake, nil)

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := fake.patients[p.ID]; ok {
		t.Fatal("document still present after delete")
	}
	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound on second delete, got %v", err)
	}
}

func TestListDoctors(t *testing.T) {
	doctors := &fakeDoctorStore{doctors: []*model.Doctor{
		{ID: bson.NewObjectID(), FullName: "Dr. Meredith Grey"},
		{ID: bson.NewObjectID(), FullName: "Dr. Arjun Mehta"},
	}}
	svc := newService(newFakePatientStore(), doctors)

	got, err := svc.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("list doctors: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(got))
	}
}
