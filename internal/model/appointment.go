package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Appointment statuses. Created Upcoming; a doctor-side close moves it to
// Completed or Follow-up and it never reverts. "Previous" and "All" are
// filter-only literals, never stored.
const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
	StatusFollowUp  = "Follow-up"

	StatusPrevious = "Previous"
	StatusAll      = "All"
)

// Consultation types.
const (
	ConsultationInPerson = "In-Person"
	ConsultationOnline   = "Online"
)

// ValidFilterStatus reports whether s is accepted by the appointment list
// filter. Empty means "no filter" and is allowed.
func ValidFilterStatus(s string) bool {
	switch s {
	case "", StatusUpcoming, StatusCompleted, StatusFollowUp, StatusPrevious, StatusAll:
		return true
	}
	return false
}

// Medication is a prescribed item embedded in a closed appointment.
type Medication struct {
	Name         string `bson:"name" json:"name"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// PaymentInfo is the payment subdocument served by the payment history view.
type PaymentInfo struct {
	TransactionID     string  `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentStatus     string  `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	PaymentMethod     string  `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	ConsultationFee   float64 `bson:"consultationFee,omitempty" json:"consultationFee,omitempty"`
	MedicationCharges float64 `bson:"medicationCharges,omitempty" json:"medicationCharges,omitempty"`
	TotalAmount       float64 `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
}

// Appointment joins a patient and a doctor at a date/time. PaymentID and
// MedicationID are kept as opaque references; reads serve the embedded
// Payment and Medications copies instead of dereferencing them.
type Appointment struct {
	ID               bson.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientID        bson.ObjectID  `bson:"patientId" json:"patientId"`
	DoctorID         bson.ObjectID  `bson:"doctorId" json:"doctorId"`
	Date             string         `bson:"date" json:"date"`
	Time             string         `bson:"time" json:"time"`
	ConsultationType string         `bson:"consultationType" json:"consultationType"`
	ReasonForVisit   string         `bson:"reasonForVisit,omitempty" json:"reasonForVisit,omitempty"`
	Status           string         `bson:"status" json:"status"`
	DoctorNotes      string         `bson:"doctorNotes,omitempty" json:"doctorNotes,omitempty"`
	Medications      []Medication   `bson:"medications,omitempty" json:"medications,omitempty"`
	Payment          *PaymentInfo   `bson:"payment,omitempty" json:"payment,omitempty"`
	PaymentID        *bson.ObjectID `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	MedicationID     *bson.ObjectID `bson:"medicationId,omitempty" json:"medicationId,omitempty"`
}
