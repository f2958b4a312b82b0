package leave

import "context"

// LeaveService defines business logic for the leave domain: the type
// catalog, leave record lifecycle and quota reads/overrides.
type LeaveService interface {
	// Leave-type catalog
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	// Leave record lifecycle. Each mutation applies its ledger delta
	// inside the same transaction.
	CreateRecord(ctx context.Context, req CreateLeaveRecordRequest) (LeaveRecordResponse, error)
	UpdateRecord(ctx context.Context, req UpdateLeaveRecordRequest) (LeaveRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	GetRecord(ctx context.Context, id string) (LeaveRecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]LeaveRecordResponse, int64, error)

	// Quota ledger reads and administrative override
	ListEmployeeQuotas(ctx context.Context, employeeID string) ([]LeaveQuotaResponse, error)
	OverrideQuotas(ctx context.Context, req OverrideQuotasRequest) error
}
