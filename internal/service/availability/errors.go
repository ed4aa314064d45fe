package availability

import "errors"

var (
	// ErrInvalidBatch means the proposed window list is empty or carries an
	// entry with an unknown weekday or a blank time string.
	ErrInvalidBatch = errors.New("invalid availability batch")

	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInvalidDate means the date did not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrNoAvailability means the doctor has no window on the requested
	// weekday.
	ErrNoAvailability = errors.New("no availability for this day")
)
