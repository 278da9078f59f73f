package salesorder

import (
	"errors"
	"fmt"

	"agroconsult/internal/domain"
)

var (
	ErrNotFound        = errors.New("sales order not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrVisitNotFound   = errors.New("visit not found")
	ErrProductNotFound = errors.New("product not found")
	ErrVisitMismatch   = errors.New("visit does not belong to client")
	ErrInvalidStatus   = errors.New("invalid status transition")
)

type TransitionError struct {
	From domain.OrderStatus
	To   domain.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("sales order cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidStatus }
