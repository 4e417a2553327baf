package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")

	// Order workflow errors. ErrPaymentUnavailable maps to 503 (gateway not
	// configured); the others are client-side failures.
	ErrPaymentRequired    = errors.New("payment intent id is required")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrPaymentUnavailable = errors.New("payment processing is not configured")
)

// ValidationError carries the user-facing message for a 400-class input
// failure. It unwraps to ErrInvalidInput.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid builds a ValidationError.
func Invalid(msg string) error { return &ValidationError{Msg: msg} }

// NotFoundError carries the user-facing message for a missing entity.
// It unwraps to ErrNotFound.
type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// PaymentFailedError carries the user-facing message for a gateway-rejected
// or unverifiable payment. It unwraps to ErrPaymentFailed.
type PaymentFailedError struct{ Msg string }

func (e *PaymentFailedError) Error() string { return e.Msg }
func (e *PaymentFailedError) Unwrap() error { return ErrPaymentFailed }

// InsufficientStockError names the offending product and the available vs.
// requested quantities so the client can react without a follow-up query.
// It unwraps to ErrInsufficientStock for errors.Is matching.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %q. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
