package appointment

import "errors"

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus means the list filter is outside the accepted set.
	ErrInvalidStatus = errors.New("invalid status filter")

	// ErrInvalidBooking means the booking request misses a field or carries
	// an unknown consultation type.
	ErrInvalidBooking = errors.New("invalid booking request")

	// ErrInvalidOutcome means a close asked for a status other than
	// Completed or Follow-up.
	ErrInvalidOutcome = errors.New("invalid appointment outcome")

	// ErrAlreadyClosed means the appointment already left Upcoming; the
	// status never reverts.
	ErrAlreadyClosed = errors.New("appointment already closed")
)
