// Package patient serves the patient profile: medical history reads and
// allow-listed updates, demographic updates, deletion and the doctor
// directory used by the booking page.
package patient

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/store"
)

// MedicalHistoryUpdate carries the clinical fields a patient may edit.
// Pointers tell an absent field apart from an explicit zero; only present
// fields reach the document.
type MedicalHistoryUpdate struct {
	Age                *int     `json:"age"`
	Weight             *float64 `json:"weight"`
	Height             *float64 `json:"height"`
	BloodGroup         *string  `json:"bloodGroup"`
	MedicalHistory     *string  `json:"medicalHistory"`
	CurrentMedications *string  `json:"currentMedications"`
	Allergies          *string  `json:"allergies"`
}

// ProfileUpdate carries the demographic fields editable from the profile
// page. Keyed by document id, not subject id.
type ProfileUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	DOB       *string `json:"dob"`
	Contact   *string `json:"contact"`
}

type Service struct {
	patients store.PatientStore
	doctors  store.DoctorStore
	logger   *slog.Logger
}

func NewService(stores *store.Stores, logger *slog.Logger) *Service {
	return &Service{
		patients: stores.Patients,
		doctors:  stores.Doctors,
		logger:   logger.With("service", "patient"),
	}
}

// Profile returns the full patient document for the given subject.
func (s *Service) Profile(ctx context.Context, subjectID string) (*model.Patient, error) {
	patient, err := s.patients.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// MedicalHistory is the same full document; the medical-history page reads
// everything and renders the clinical subset.
func (s *Service) MedicalHistory(ctx context.Context, subjectID string) (*model.Patient, error) {
	return s.Profile(ctx, subjectID)
}

// UpdateMedicalHistory applies the clinical allow-list as a partial $set.
// Fields outside the allow-list never reach the document regardless of what
// the payload carried.
func (s *Service) UpdateMedicalHistory(ctx context.Context, subjectID string, req MedicalHistoryUpdate) (*model.Patient, error) {
	fields := bson.M{}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.BloodGroup != nil {
		fields["bloodGroup"] = *req.BloodGroup
	}
	if req.MedicalHistory != nil {
		fields["medicalHistory"] = *req.MedicalHistory
	}
	if req.CurrentMedications != nil {
		fields["currentMedications"] = *req.CurrentMedications
	}
	if req.Allergies != nil {
		fields["allergies"] = *req.Allergies
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	updated, err := s.patients.SetBySubjectID(ctx, subjectID, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "medical history updated", "fields", len(fields))
	return updated, nil
}

// UpdateProfile applies the demographic allow-list by document id.
func (s *Service) UpdateProfile(ctx context.Context, id bson.ObjectID, req ProfileUpdate) (*model.Patient, error) {
	fields := bson.M{}
	if req.FirstName != nil {
		fields["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["lastName"] = *req.LastName
	}
	if req.DOB != nil {
		fields["dob"] = *req.DOB
	}
	if req.Contact != nil {
		fields["contact"] = *req.Contact
	}
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	updated, err := s.patients.SetByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the patient document. Appointments referencing it are left
// in place; doctor-side listings tolerate the dangling reference.
func (s *Service) Delete(ctx context.Context, id bson.ObjectID) error {
	if err := s.patients.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPatientNotFound
		}
		return err
	}
	s.logger.InfoContext(ctx, "patient profile deleted", "patient_id", id.Hex())
	return nil
}

// ListDoctors returns the whole doctor directory.
func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	return s.doctors.List(ctx)
}
