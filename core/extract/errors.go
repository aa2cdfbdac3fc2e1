package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPayload is returned when the payload is not valid JSON.
	ErrMalformedPayload = errors.New("payload is not valid JSON")
	// ErrUnrecognizedShape is returned when the payload matches neither export shape.
	ErrUnrecognizedShape = errors.New("unrecognized export shape")
	// ErrUnknownRole is returned for a role other than followers or following.
	ErrUnknownRole = errors.New("unknown role")
	// ErrNoUsernames is returned by RequireUsernames when nothing was extracted.
	ErrNoUsernames = errors.New("no usernames found")
)

// ExtractionError describes why a payload could not be turned into a list.
type ExtractionError struct {
	// Role is the list the payload was declared as.
	Role Role
	// Reason is a human readable description of the failure.
	Reason string
	// Err is one of the sentinel errors of this package.
	Err error
}

func (e *ExtractionError) Error() string {
	if e.Role == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Role, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// RequireUsernames turns an empty extraction into an error.
// An empty list almost always means the wrong file was supplied.
func RequireUsernames(role Role, usernames []string) error {
	if len(usernames) > 0 {
		return nil
	}
	return &ExtractionError{
		Role:   role,
		Reason: fmt.Sprintf("No usernames found in %s", role),
		Err:    ErrNoUsernames,
	}
}
