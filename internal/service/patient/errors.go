package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")

	// ErrEmptyUpdate means the payload carried no updatable field at all.
	ErrEmptyUpdate = errors.New("no updatable fields in payload")
)
