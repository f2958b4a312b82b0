package employee

import (
	"time"

	"github.com/worklane/hr-admin-backend-go/internal/pkg/validator"
)

var validStatuses = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusTerminated),
}

type CreateEmployeeRequest struct {
	FullName   string  `json:"full_name"`
	Nickname   *string `json:"nickname,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	HireDate   string  `json:"hire_date"`
	Birthday   *string `json:"birthday,omitempty"`
	Status     string  `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.Birthday != nil && !validator.IsEmpty(*r.Birthday) {
		if _, ok := validator.IsValidDate(*r.Birthday); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birthday",
				Message: "birthday must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"employee_id"`
	FullName   *string `json:"full_name,omitempty"`
	Nickname   *string `json:"nickname,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	Birthday   *string `json:"birthday,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Birthday != nil && !validator.IsEmpty(*r.Birthday) {
		if _, ok := validator.IsValidDate(*r.Birthday); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birthday",
				Message: "birthday must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeFilter filters and paginates the employee list
type EmployeeFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}

type EmployeeResponse struct {
	ID           string  `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Nickname     *string `json:"nickname,omitempty"`
	Email        *string `json:"email,omitempty"`
	Department   *string `json:"department,omitempty"`
	HireDate     string  `json:"hire_date"`
	Birthday     *string `json:"birthday,omitempty"`
	Status       string  `json:"status"`
	TenureYears  int     `json:"tenure_years"`
	TenureMonths int     `json:"tenure_months"`
}

// ToResponse converts an entity into its API shape, computing the
// work-duration display at read time.
func ToResponse(e Employee, now time.Time) EmployeeResponse {
	tenure := e.TenureAt(now)

	resp := EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Nickname:     e.Nickname,
		Email:        e.Email,
		Department:   e.Department,
		HireDate:     e.HireDate.Format("2006-01-02"),
		Status:       string(e.Status),
		TenureYears:  tenure.Years,
		TenureMonths: tenure.Months,
	}
	if e.Birthday != nil {
		birthday := e.Birthday.Format("2006-01-02")
		resp.Birthday = &birthday
	}
	return resp
}
