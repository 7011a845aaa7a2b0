package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the generic absence signal returned by repositories.
// Entity-specific sentinels wrap it so errors.Is(err, ErrNotFound) holds.
var ErrNotFound = errors.New("not found")

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrEventNotFound        = fmt.Errorf("event %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
)

var (
	// ErrAlreadyRegistered signals a second registration for the same
	// (user, event) pair, whether caught by the pre-insert check or by
	// the unique constraint on insert.
	ErrAlreadyRegistered = errors.New("user is already registered for this event")

	// ErrDuplicateUser signals a unique-column violation on users
	// (firstname, lastname, and email are each unique).
	ErrDuplicateUser = errors.New("user field value already in use")

	// ErrRelayUnavailable signals that no invitation in a batch could be
	// delivered because the outbound relay rejected every send.
	ErrRelayUnavailable = errors.New("mail relay unavailable")
)
