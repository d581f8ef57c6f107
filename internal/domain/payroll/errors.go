package payroll

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
)

var (
	ErrCycleNotFound          = errors.New("payroll cycle not found")
	ErrCycleOverlap           = errors.New("payroll cycle dates overlap an existing cycle")
	ErrCycleNameExists        = errors.New("payroll cycle name already exists")
	ErrCycleAlreadyCompleted  = errors.New("payroll cycle already completed")
	ErrCycleAlreadyCalculated = errors.New("payroll cycle already calculated")
	ErrCycleNotCalculated     = errors.New("payroll cycle has not been calculated")
	ErrDetailNotFound         = errors.New("payroll detail not found")
	ErrDetailAlreadyExists    = errors.New("payroll detail already exists for this employee")
	ErrNegativeNetPay         = errors.New("net pay would be negative")
	ErrInvalidTransition      = errors.New("invalid payroll cycle transition")
	ErrActorRequired          = errors.New("authenticated actor is required")
)

// ConflictError reports that the request collides with existing data.
type ConflictError struct {
	Err      error
	Entity   string
	EntityID string
	Detail   string
}

func (e *ConflictError) Error() string {
	if e.EntityID == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s (%s %s)", e.Err.Error(), e.Entity, e.EntityID)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// StateError reports an operation that the cycle's current status does not allow.
type StateError struct {
	Err     error
	CycleID string
	Status  CycleStatus
	Event   Event
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s cycle %s in status %s: %s", e.Event, e.CycleID, e.Status, e.Err.Error())
}

func (e *StateError) Unwrap() error { return e.Err }

// IntegrityError reports a mutation or finalization that would leave net pay negative.
type IntegrityError struct {
	Err       error
	Offenders []NegativeNetPay
}

func (e *IntegrityError) Error() string {
	if len(e.Offenders) == 0 {
		return e.Err.Error()
	}
	parts := make([]string, 0, len(e.Offenders))
	for _, o := range e.Offenders {
		parts = append(parts, fmt.Sprintf("%s=%s", o.EmployeeID, o.NetPay.StringFixed(2)))
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(parts, ", "))
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// DependencyError wraps a failure at the storage boundary. Callers may retry the whole operation.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }

// Dependency wraps err as a DependencyError unless it already carries a domain classification.
func Dependency(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		conflict  *ConflictError
		state     *StateError
		integrity *IntegrityError
		dep       *DependencyError
		invalid   validator.ValidationErrors
	)
	if errors.As(err, &conflict) || errors.As(err, &state) || errors.As(err, &integrity) || errors.As(err, &dep) || errors.As(err, &invalid) {
		return err
	}
	if errors.Is(err, ErrCycleNotFound) || errors.Is(err, ErrDetailNotFound) {
		return err
	}
	return &DependencyError{Op: op, Err: err}
}
