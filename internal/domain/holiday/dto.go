package holiday

import "github.com/worklane/hr-admin-backend-go/internal/pkg/validator"

type CreateHolidayRequest struct {
	Name        string  `json:"holiday_name"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	IsRecurring bool    `json:"is_recurring"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_name",
			Message: "holiday_name is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"holiday_id"`
	Name        *string `json:"holiday_name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_id",
			Message: "holiday_id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "holiday_name",
			Message: "holiday_name must not be empty",
		})
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID          string  `json:"holiday_id"`
	Name        string  `json:"holiday_name"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	IsRecurring bool    `json:"is_recurring"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Description: h.Description,
		IsRecurring: h.IsRecurring,
	}
}
