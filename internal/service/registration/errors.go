package registration

import "errors"

var (
	// ErrMissingFields means one of firstName, lastName, email or password
	// was absent from the request.
	ErrMissingFields = errors.New("missing required registration fields")

	// ErrEmailTaken means the identity provider already holds a user with
	// this login; no local document is written.
	ErrEmailTaken = errors.New("an account with this email already exists")

	// ErrIdentityProvider wraps provider failures. The wrapped detail goes
	// to logs; callers surface only the sentinel.
	ErrIdentityProvider = errors.New("identity provider request failed")
)
