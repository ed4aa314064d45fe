// Package appointment covers the appointment lifecycle and its patient and
// doctor facing read views: filtered lists, prescriptions, payment history,
// booking and doctor-side closing.
package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/heal-clinic/heal_backend/internal/model"
	"github.com/heal-clinic/heal_backend/internal/store"
	"github.com/heal-clinic/heal_backend/pkg/email"
)

// SortOldest asks the payment view for ascending date order; anything else
// means newest first.
const SortOldest = "oldest"

// View is an appointment enriched with the referenced doctor's display
// fields. The join happens at read time; appointments only store the id.
type View struct {
	model.Appointment
	Doctor *model.DoctorRef `json:"doctor,omitempty"`
}

// DoctorView is the doctor-side listing row with the patient's name joined.
type DoctorView struct {
	model.Appointment
	PatientName string `json:"patientName,omitempty"`
}

// BookRequest creates a new Upcoming appointment.
type BookRequest struct {
	SubjectID        string `json:"subjectId"`
	DoctorID         string `json:"doctorId"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConsultationType string `json:"consultationType"`
	ReasonForVisit   string `json:"reasonForVisit"`
}

// CloseRequest finishes an Upcoming appointment from the doctor's side.
type CloseRequest struct {
	Outcome     string             `json:"outcome"`
	DoctorNotes string             `json:"doctorNotes"`
	Medications []model.Medication `json:"medications"`
}

type Service struct {
	patients     store.PatientStore
	doctors      store.DoctorStore
	appointments store.AppointmentStore
	mailer       *email.Client
	logger       *slog.Logger
}

func NewService(stores *store.Stores, mailer *email.Client, logger *slog.Logger) *Service {
	return &Service{
		patients:     stores.Patients,
		doctors:      stores.Doctors,
		appointments: stores.Appointments,
		mailer:       mailer,
		logger:       logger.With("service", "appointment"),
	}
}

// ListForPatient returns the patient's appointments, optionally filtered by
// status. "All" and an absent status both mean unfiltered; "Previous" is
// passed through to the store as an ordinary equality match.
func (s *Service) ListForPatient(ctx context.Context, subjectID, status string) ([]View, error) {
	if !model.ValidFilterStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if status == model.StatusAll {
		status = ""
	}

	patient, err := s.resolvePatient(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointments.ListByPatient(ctx, patient.ID, status)
	if err != nil {
		return nil, err
	}
	return s.joinDoctors(ctx, appointments)
}

// Prescriptions returns the patient's Completed appointments, which carry
// the doctor notes and medication lists attached at close time.
func (s *Service) Prescriptions(ctx context.Context, subjectID string) ([]View, error) {
	patient, err := s.resolvePatient(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	appointments, err := s.appointments.ListByPatient(ctx, patient.ID, model.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return s.joinDoctors(ctx, appointments)
}

// Payments returns the patient's payment-bearing appointments. A non-empty
// search narrows to appointments whose doctor name or transaction id
// contains it, case-insensitively. sort=oldest gives ascending date order.
func (s *Service) Payments(ctx context.Context, subjectID, search, sortOrder string) ([]View, error) {
	patient, err := s.resolvePatient(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	var doctorIDs []bson.ObjectID
	search = strings.TrimSpace(search)
	if search != "" {
		doctorIDs, err = s.doctors.FindIDsByName(ctx, search)
		if err != nil {
			return nil, err
		}
	}

	oldestFirst := sortOrder == SortOldest
	appointments, err := s.appointments.SearchPayments(ctx, patient.ID, doctorIDs, search, oldestFirst)
	if err != nil {
		return nil, err
	}
	return s.joinDoctors(ctx, appointments)
}

// ListForDoctor returns a doctor's appointments with patient names joined,
// upcoming-first by date within equal statuses left as stored.
func (s *Service) ListForDoctor(ctx context.Context, doctorID bson.ObjectID) ([]DoctorView, error) {
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appointments, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	views := make([]DoctorView, 0, len(appointments))
	for _, a := range appointments {
		view := DoctorView{Appointment: *a}
		patient, err := s.patients.GetByID(ctx, a.PatientID)
		switch {
		case err == nil:
			view.PatientName = patient.FullName()
		case errors.Is(err, store.ErrNotFound):
			// Patient profile deleted; the appointment survives on its own.
		default:
			return nil, err
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Date < views[j].Date
	})
	return views, nil
}

// Book creates an Upcoming appointment after validating both references and
// the consultation type. The confirmation email is best-effort.
func (s *Service) Book(ctx context.Context, req BookRequest) (*model.Appointment, error) {
	if req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidBooking)
	}
	if req.ConsultationType != model.ConsultationInPerson && req.ConsultationType != model.ConsultationOnline {
		return nil, fmt.Errorf("%w: unknown consultation type %q", ErrInvalidBooking, req.ConsultationType)
	}

	patient, err := s.resolvePatient(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	doctorID, err := bson.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed doctor id", ErrInvalidBooking)
	}
	doctor, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	appt := &model.Appointment{
		PatientID:        patient.ID,
		DoctorID:         doctor.ID,
		Date:             req.Date,
		Time:             req.Time,
		ConsultationType: req.ConsultationType,
		ReasonForVisit:   req.ReasonForVisit,
		Status:           model.StatusUpcoming,
	}
	id, err := s.appointments.Insert(ctx, appt)
	if err != nil {
		return nil, err
	}
	appt.ID = id

	s.logger.InfoContext(ctx, "appointment booked",
		"appointment_id", id.Hex(),
		"doctor_id", doctor.ID.Hex(),
		"date", req.Date,
	)

	if s.mailer != nil && s.mailer.IsEnabled() {
		msg := email.BuildBookingConfirmationEmail(email.BookingEmailData{
			FirstName:        patient.FirstName,
			Email:            patient.Email,
			DoctorName:       doctor.FullName,
			Date:             req.Date,
			Time:             req.Time,
			ConsultationType: req.ConsultationType,
		})
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.WarnContext(ctx, "booking confirmation email failed",
				"appointment_id", id.Hex(), "error", err)
		}
	}
	return appt, nil
}

// Close moves an Upcoming appointment to Completed or Follow-up, attaching
// the doctor's notes and prescribed medications. Closed appointments stay
// closed.
func (s *Service) Close(ctx context.Context, appointmentID bson.ObjectID, req CloseRequest) (*model.Appointment, error) {
	if req.Outcome != model.StatusCompleted && req.Outcome != model.StatusFollowUp {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, req.Outcome)
	}

	closed, err := s.appointments.Close(ctx, appointmentID, req.Outcome, req.DoctorNotes, req.Medications)
	if err == nil {
		s.logger.InfoContext(ctx, "appointment closed",
			"appointment_id", appointmentID.Hex(),
			"outcome", req.Outcome,
		)
		return closed, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	// No Upcoming appointment matched; tell a missing one apart from an
	// already closed one.
	if _, getErr := s.appointments.GetByID(ctx, appointmentID); getErr == nil {
		return nil, ErrAlreadyClosed
	} else if errors.Is(getErr, store.ErrNotFound) {
		return nil, ErrAppointmentNotFound
	} else {
		return nil, getErr
	}
}

func (s *Service) resolvePatient(ctx context.Context, subjectID string) (*model.Patient, error) {
	patient, err := s.patients.GetBySubjectID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}
	return patient, nil
}

// joinDoctors attaches each appointment's doctor display fields, fetching
// every distinct doctor once.
func (s *Service) joinDoctors(ctx context.Context, appointments []*model.Appointment) ([]View, error) {
	refs := make(map[bson.ObjectID]*model.DoctorRef)
	views := make([]View, 0, len(appointments))
	for _, a := range appointments {
		ref, seen := refs[a.DoctorID]
		if !seen {
			doctor, err := s.doctors.GetByID(ctx, a.DoctorID)
			switch {
			case err == nil:
				ref = &model.DoctorRef{
					ID:             doctor.ID,
					FullName:       doctor.FullName,
					Specialization: doctor.Specialization,
				}
			case errors.Is(err, store.ErrNotFound):
				ref = nil
			default:
				return nil, err
			}
			refs[a.DoctorID] = ref
		}
		views = append(views, View{Appointment: *a, Doctor: ref})
	}
	return views, nil
}
