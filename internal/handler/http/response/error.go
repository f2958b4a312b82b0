package response

import (
	"errors"
	"net/http"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrLeaveRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrQuotaNotFound):
		NotFound(w, "Leave quota not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
