package leave

import (
	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/pkg/validator"
)

type CreateLeaveTypeRequest struct {
	Name         string  `json:"leave_type_name"`
	Description  *string `json:"leave_type_description,omitempty"`
	DefaultQuota float64 `json:"default_quota"`
}

func (r *CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_name",
			Message: "leave_type_name must not exceed 255 characters",
		})
	}
	if r.DefaultQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_quota",
			Message: "default_quota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveTypeRequest struct {
	ID           string   `json:"leave_type_id"`
	Name         *string  `json:"leave_type_name,omitempty"`
	Description  *string  `json:"leave_type_description,omitempty"`
	DefaultQuota *float64 `json:"default_quota,omitempty"`
}

func (r *UpdateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type_name",
				Message: "leave_type_name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type_name",
				Message: "leave_type_name must not exceed 255 characters",
			})
		}
	}

	if r.DefaultQuota != nil && *r.DefaultQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "default_quota",
			Message: "default_quota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateLeaveRecordRequest struct {
	EmployeeID  string  `json:"employee_id"`
	LeaveTypeID string  `json:"leave_type_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	DaysCount   float64 `json:"days_count"`
	Reason      *string `json:"reason,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateLeaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if r.DaysCount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days_count",
			Message: "days_count must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveRecordRequest struct {
	ID string `json:"leave_record_id"`
	CreateLeaveRecordRequest
}

func (r *UpdateLeaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_record_id",
			Message: "leave_record_id is required",
		})
	}

	if err := r.CreateLeaveRecordRequest.Validate(); err != nil {
		if inner, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, inner...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordFilter filters and paginates the leave record list
type RecordFilter struct {
	LeaveTypeID string
	Search      string
	Page        int
	Limit       int
}

// OverrideQuotaItem carries absolute values for one ledger row.
type OverrideQuotaItem struct {
	QuotaID   string  `json:"quota_id"`
	TotalDays float64 `json:"total_days"`
	UsedDays  float64 `json:"used_days"`
}

type OverrideQuotasRequest struct {
	Quotas []OverrideQuotaItem `json:"quotas"`
}

func (r *OverrideQuotasRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Quotas) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quotas",
			Message: "quotas must not be empty",
		})
	}
	for _, item := range r.Quotas {
		if validator.IsEmpty(item.QuotaID) {
			errs = append(errs, validator.ValidationError{
				Field:   "quota_id",
				Message: "quota_id is required",
			})
		}
		if item.TotalDays < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "total_days",
				Message: "total_days must not be negative",
			})
		}
		if item.UsedDays < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "used_days",
				Message: "used_days must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveTypeResponse struct {
	ID           string  `json:"leave_type_id"`
	Name         string  `json:"leave_type_name"`
	Description  *string `json:"leave_type_description,omitempty"`
	DefaultQuota float64 `json:"default_quota"`
}

func ToLeaveTypeResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		DefaultQuota: t.DefaultQuota.InexactFloat64(),
	}
}

type LeaveQuotaResponse struct {
	ID                   string  `json:"quota_id"`
	EmployeeID           string  `json:"employee_id"`
	LeaveTypeID          string  `json:"leave_type_id"`
	LeaveTypeName        *string `json:"leave_type_name,omitempty"`
	LeaveTypeDescription *string `json:"leave_type_description,omitempty"`
	Year                 int     `json:"year"`
	TotalDays            float64 `json:"total_days"`
	UsedDays             float64 `json:"used_days"`
	RemainingDays        float64 `json:"remaining_days"`
}

func ToLeaveQuotaResponse(q LeaveQuota) LeaveQuotaResponse {
	return LeaveQuotaResponse{
		ID:                   q.ID,
		EmployeeID:           q.EmployeeID,
		LeaveTypeID:          q.LeaveTypeID,
		LeaveTypeName:        q.LeaveTypeName,
		LeaveTypeDescription: q.LeaveTypeDescription,
		Year:                 q.Year,
		TotalDays:            q.TotalDays.InexactFloat64(),
		UsedDays:             q.UsedDays.InexactFloat64(),
		RemainingDays:        q.RemainingDays().InexactFloat64(),
	}
}

type LeaveRecordResponse struct {
	ID            string  `json:"leave_record_id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveTypeID   string  `json:"leave_type_id"`
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	DaysCount     float64 `json:"days_count"`
	Reason        *string `json:"reason,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func ToLeaveRecordResponse(r LeaveRecord) LeaveRecordResponse {
	return LeaveRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		LeaveTypeID:   r.LeaveTypeID,
		LeaveTypeName: r.LeaveTypeName,
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		DaysCount:     r.DaysCount.InexactFloat64(),
		Reason:        r.Reason,
		Notes:         r.Notes,
	}
}

// Days converts the wire float into the decimal used by the ledger.
func Days(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
