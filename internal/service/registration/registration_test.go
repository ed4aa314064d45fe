package registration

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/store"
	"github.com/heal-clinic/heal_backend/pkg/okta"
)

type fakeIDP struct {
	existing   map[string]bool
	createErr  error
	existsErr  error
	nextID     string
	createdFor []string
}

func (f *fakeIDP) UserExists(_ context.Context, email string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[email], nil
}

func (f *fakeIDP) CreateUser(_ context.Context, req okta.CreateUserRequest) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdFor = append(f.createdFor, req.Email)
	return f.nextID, nil
}

type fakePatientStore struct {
	patients  map[bson.ObjectID]*model.Patient
	insertErr error
}

func newFakePatientStore() *fakePatientStore {
	return &fakePatientStore{patients: make(map[bson.ObjectID]*model.Patient)}
}

func (s *fakePatientStore) Insert(_ context.Context, p *model.Patient) (bson.ObjectID, error) {
	if s.insertErr != nil {
		return bson.NilObjectID, s.insertErr
	}
	id := bson.NewObjectID()
	p.ID = id
	s.patients[id] = p
	return id, nil
}

func (s *fakePatientStore) GetByID(_ context.Context, _ bson.ObjectID) (*model.Patient, error) {
	return nil, store.ErrNotFound
}

func (s *fakePatientStore) GetBySubjectID(_ context.Context, _ string) (*model.Patient, error) {
	return nil, store.ErrNotFound
}

func (s *fakePatientStore) List(_ context.Context) ([]*model.Patient, error) { return nil, nil }

func (s *fakePatientStore) SetBySubjectID(_ context.Context, _ string, _ bson.M) (*model.Patient, error) {
	return nil, store.ErrNotFound
}

func (s *fakePatientStore) SetByID(_ context.Context, _ bson.ObjectID, _ bson.M) (*model.Patient, error) {
	return nil, store.ErrNotFound
}

func (s *fakePatientStore) DeleteByID(_ context.Context, _ bson.ObjectID) error {
	return store.ErrNotFound
}

func newService(patients *fakePatientStore, idp *fakeIDP) *Service {
	stores := &store.Stores{Patients: patients}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(stores, idp, nil, logger)
}

func validRequest() Request {
	return Request{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha.rao@example.com",
		Password:  "correct horse battery staple",
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newService(newFakePatientStore(), &fakeIDP{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"no first name", func(r *Request) { r.FirstName = "" }},
		{"no last name", func(r *Request) { r.LastName = "" }},
		{"no email", func(r *Request) { r.Email = "" }},
		{"no password", func(r *Request) { r.Password = "" }},
		{"whitespace email", func(r *Request) { r.Email = "   " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.Register(context.Background(), req); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	idp := &fakeIDP{existing: map[string]bool{"asha.rao@example.com": true}}
	patients := newFakePatientStore()
	svc := newService(patients, idp)

	_, err := svc.Register(context.Background(), validRequest())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(patients.patients) != 0 {
		t.Fatal("duplicate registration must not write a local document")
	}
	if len(idp.createdFor) != 0 {
		t.Fatal("duplicate registration must not call create")
	}
}

func TestRegisterRaceLostToConcurrentCreate(t *testing.T) {
	// The probe said the email is free, but the create still collides.
	idp := &fakeIDP{createErr: okta.ErrUserAlreadyExists}
	svc := newService(newFakePatientStore(), idp)

	_, err := svc.Register(context.Background(), validRequest())
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterProviderFailure(t *testing.T) {
	tests := []struct {
		name string
		idp  *fakeIDP
	}{
		{"probe fails", &fakeIDP{existsErr: okta.ErrUnexpectedResponse}},
		{"create fails", &fakeIDP{createErr: okta.ErrUnexpectedResponse}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patients := newFakePatientStore()
			svc := newService(patients, tt.idp)
			_, err := svc.Register(context.Background(), validRequest())
			if !errors.Is(err, ErrIdentityProvider) {
				t.Fatalf("expected ErrIdentityProvider, got %v", err)
			}
			if len(patients.patients) != 0 {
				t.Fatal("provider failure must not write a local document")
			}
		})
	}
}

func TestRegisterSuccess(t *testing.T) {
	idp := &fakeIDP{nextID: "00u1abcdEFGH"}
	patients := newFakePatientStore()
	svc := newService(patients, idp)

	res, err := svc.Register(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.SubjectID != "00u1abcdEFGH" {
		t.Fatalf("wrong subject id: %q", res.SubjectID)
	}
	if len(patients.patients) != 1 {
		t.Fatalf("expected 1 local document, got %d", len(patients.patients))
	}
	for _, p := range patients.patients {
		if p.SubjectID != "00u1abcdEFGH" {
			t.Fatalf("local document misses the subject id: %+v", p)
		}
		if p.Email != "asha.rao@example.com" || p.FirstName != "Asha" {
			t.Fatalf("local document misses profile fields: %+v", p)
		}
	}
}
