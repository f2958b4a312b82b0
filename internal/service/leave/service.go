package leave

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// LeaveServiceImpl implements leave.LeaveService by composing the type
// catalog, the record lifecycle and the quota ledger.
type LeaveServiceImpl struct {
	leaveTypeRepository   leave.LeaveTypeRepository
	leaveQuotaRepository  leave.LeaveQuotaRepository
	leaveRecordRepository leave.LeaveRecordRepository
	recordService         *RecordService
	quotaService          *QuotaService
}

func NewLeaveService(
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveQuotaRepository leave.LeaveQuotaRepository,
	leaveRecordRepository leave.LeaveRecordRepository,
	recordService *RecordService,
	quotaService *QuotaService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveTypeRepository:   leaveTypeRepository,
		leaveQuotaRepository:  leaveQuotaRepository,
		leaveRecordRepository: leaveRecordRepository,
		recordService:         recordService,
		quotaService:          quotaService,
	}
}

// CreateType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	created, err := s.leaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:         req.Name,
		Description:  req.Description,
		DefaultQuota: decimal.NewFromFloat(req.DefaultQuota),
	})
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return leave.ToLeaveTypeResponse(created), nil
}

// UpdateType implements leave.LeaveService. Changing a default quota only
// affects future provisioning; existing ledger rows keep their totals.
func (s *LeaveServiceImpl) UpdateType(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	existing, err := s.leaveTypeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveTypeResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.DefaultQuota != nil {
		existing.DefaultQuota = decimal.NewFromFloat(*req.DefaultQuota)
	}

	updated, err := s.leaveTypeRepository.Update(ctx, existing)
	if err != nil {
		return leave.LeaveTypeResponse{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return leave.ToLeaveTypeResponse(updated), nil
}

// ListTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListTypes(ctx context.Context) ([]leave.LeaveTypeResponse, error) {
	leaveTypes, err := s.leaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.LeaveTypeResponse, 0, len(leaveTypes))
	for _, leaveType := range leaveTypes {
		responses = append(responses, leave.ToLeaveTypeResponse(leaveType))
	}
	return responses, nil
}

// DeleteType implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteType(ctx context.Context, id string) error {
	return s.leaveTypeRepository.Delete(ctx, id)
}

// CreateRecord implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRecord(ctx context.Context, req leave.CreateLeaveRecordRequest) (leave.LeaveRecordResponse, error) {
	created, err := s.recordService.Create(ctx, req)
	if err != nil {
		return leave.LeaveRecordResponse{}, err
	}
	return leave.ToLeaveRecordResponse(created), nil
}

// UpdateRecord implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateRecord(ctx context.Context, req leave.UpdateLeaveRecordRequest) (leave.LeaveRecordResponse, error) {
	updated, err := s.recordService.Update(ctx, req)
	if err != nil {
		return leave.LeaveRecordResponse{}, err
	}
	return leave.ToLeaveRecordResponse(updated), nil
}

// DeleteRecord implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.recordService.Delete(ctx, id)
}

// GetRecord implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRecord(ctx context.Context, id string) (leave.LeaveRecordResponse, error) {
	record, err := s.leaveRecordRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRecordResponse{}, err
	}
	return leave.ToLeaveRecordResponse(record), nil
}

// ListRecords implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRecords(ctx context.Context, filter leave.RecordFilter) ([]leave.LeaveRecordResponse, int64, error) {
	records, total, err := s.leaveRecordRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave records: %w", err)
	}

	responses := make([]leave.LeaveRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, leave.ToLeaveRecordResponse(record))
	}
	return responses, total, nil
}

// ListEmployeeQuotas implements leave.LeaveService.
func (s *LeaveServiceImpl) ListEmployeeQuotas(ctx context.Context, employeeID string) ([]leave.LeaveQuotaResponse, error) {
	quotas, err := s.leaveQuotaRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee quotas: %w", err)
	}

	responses := make([]leave.LeaveQuotaResponse, 0, len(quotas))
	for _, quota := range quotas {
		responses = append(responses, leave.ToLeaveQuotaResponse(quota))
	}
	return responses, nil
}

// OverrideQuotas implements leave.LeaveService.
func (s *LeaveServiceImpl) OverrideQuotas(ctx context.Context, req leave.OverrideQuotasRequest) error {
	return s.quotaService.Override(ctx, req)
}
