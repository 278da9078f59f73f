package visit

import (
	"errors"
	"fmt"

	"agroconsult/internal/domain"
)

var (
	ErrNotFound         = errors.New("visit not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrPropertyMismatch = errors.New("property does not belong to client")
	ErrInvalidStatus    = errors.New("invalid status transition")
)

// TransitionError is returned when strict transitions reject a status change.
type TransitionError struct {
	From domain.VisitStatus
	To   domain.VisitStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("visit cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidStatus }
