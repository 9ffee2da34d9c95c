package app

import (
	"errors"
	"fmt"

	orderdomain "github.com/TheSamadAzeez/nexus-backend/internal/order/domain"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrPaymentDeclined        = errors.New("payment declined")
)

type InvalidTransitionError struct {
	OrderID   string
	From      orderdomain.Status
	Attempted orderdomain.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot transition from %s to %s", e.OrderID, e.From, e.Attempted)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidStateTransition }

type PaymentDeclinedError struct {
	Reason string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

func (e *PaymentDeclinedError) Is(target error) bool { return target == ErrPaymentDeclined }
