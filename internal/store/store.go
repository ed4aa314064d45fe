// Package store provides collection-scoped persistence contracts and their
// MongoDB implementations. Services depend on the contracts so they can be
// exercised against in-memory fakes.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

type PatientStore interface {
	Insert(ctx context.Context, p *model.Patient) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Patient, error)
	GetBySubjectID(ctx context.Context, subjectID string) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)

	// SetBySubjectID applies a partial $set and returns the updated document.
	SetBySubjectID(ctx context.Context, subjectID string, fields bson.M) (*model.Patient, error)
	SetByID(ctx context.Context, id bson.ObjectID, fields bson.M) (*model.Patient, error)

	// DeleteByID removes only the patient document; appointments referencing
	// it are left in place.
	DeleteByID(ctx context.Context, id bson.ObjectID) error
}

type DoctorStore interface {
	Insert(ctx context.Context, d *model.Doctor) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Doctor, error)
	List(ctx context.Context) ([]*model.Doctor, error)

	// FindIDsByName matches doctors whose full name contains the given
	// substring, case-insensitively.
	FindIDsByName(ctx context.Context, substr string) ([]bson.ObjectID, error)

	// SetAvailability overwrites the doctor's whole availability list.
	SetAvailability(ctx context.Context, id bson.ObjectID, windows []model.AvailabilityWindow) (*model.Doctor, error)
}

type AppointmentStore interface {
	Insert(ctx context.Context, a *model.Appointment) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Appointment, error)

	// ListByPatient returns the patient's appointments; an empty status means
	// no status filter.
	ListByPatient(ctx context.Context, patientID bson.ObjectID, status string) ([]*model.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID bson.ObjectID) ([]*model.Appointment, error)

	// SearchPayments returns the patient's payment-bearing appointments,
	// optionally narrowed to those whose doctor id is in doctorIDs or whose
	// transaction id matches txnSubstr (case-insensitive substring), sorted
	// by date (ascending when oldestFirst).
	SearchPayments(ctx context.Context, patientID bson.ObjectID, doctorIDs []bson.ObjectID, txnSubstr string, oldestFirst bool) ([]*model.Appointment, error)

	// Close transitions an Upcoming appointment to the given status with
	// doctor notes and medications attached. Returns ErrNotFound when no
	// Upcoming appointment has this id.
	Close(ctx context.Context, id bson.ObjectID, status, notes string, meds []model.Medication) (*model.Appointment, error)
}

// Stores bundles the per-collection contracts for wiring.
type Stores struct {
	Patients     PatientStore
	Doctors      DoctorStore
	Appointments AppointmentStore
}
