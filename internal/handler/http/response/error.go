package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/user"
	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Typed payroll errors
	var (
		conflict   *payroll.ConflictError
		state      *payroll.StateError
		integrity  *payroll.IntegrityError
		dependency *payroll.DependencyError
	)
	switch {
	case errors.As(err, &conflict):
		Conflict(w, conflict.Error(), map[string]interface{}{
			"entity":    conflict.Entity,
			"entity_id": conflict.EntityID,
			"detail":    conflict.Detail,
		})
		return
	case errors.As(err, &state):
		InvalidState(w, state.Error())
		return
	case errors.As(err, &integrity):
		IntegrityViolation(w, integrity.Err.Error(), map[string]interface{}{
			"employees_with_negative_net_pay": integrity.Offenders,
		})
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, payroll.ErrActorRequired), errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCycleNotFound):
		NotFound(w, "Payroll cycle not found")
	case errors.Is(err, payroll.ErrDetailNotFound):
		NotFound(w, "Payroll detail not found")

	case errors.As(err, &dependency):
		slog.Error("Dependency failure", "op", dependency.Op, "error", dependency.Err)
		ServiceUnavailable(w, "A required service is unavailable, please retry")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
