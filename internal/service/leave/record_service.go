package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

// RecordService handles the leave record lifecycle. Every mutation pairs
// the record write with its ledger delta inside one transaction, so the
// record and the quota row can never disagree on a partial write.
type RecordService struct {
	txManager             database.TxManager
	leaveRecordRepository leave.LeaveRecordRepository
	employeeRepository    employee.EmployeeRepository
	leaveTypeRepository   leave.LeaveTypeRepository
	quotaService          *QuotaService
}

func NewRecordService(
	txManager database.TxManager,
	leaveRecordRepository leave.LeaveRecordRepository,
	employeeRepository employee.EmployeeRepository,
	leaveTypeRepository leave.LeaveTypeRepository,
	quotaService *QuotaService,
) *RecordService {
	return &RecordService{
		txManager:             txManager,
		leaveRecordRepository: leaveRecordRepository,
		employeeRepository:    employeeRepository,
		leaveTypeRepository:   leaveTypeRepository,
		quotaService:          quotaService,
	}
}

func (s *RecordService) Create(ctx context.Context, req leave.CreateLeaveRecordRequest) (leave.LeaveRecord, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRecord{}, err
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRecord{}, err
	}
	if _, err := s.leaveTypeRepository.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveRecord{}, err
	}

	record, err := recordFromRequest(req)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	var created leave.LeaveRecord
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.leaveRecordRepository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to create leave record: %w", err)
		}
		return s.quotaService.ApplyDelta(ctx, created.Key(), created.DaysCount)
	})
	if err != nil {
		return leave.LeaveRecord{}, err
	}
	return created, nil
}

// Update reverses the old booking and applies the new one. When the edit
// moves the record to a different (employee, leave type, year) key the
// old row is decremented and the new row incremented; an in-place edit
// applies the net difference to the single row.
func (s *RecordService) Update(ctx context.Context, req leave.UpdateLeaveRecordRequest) (leave.LeaveRecord, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRecord{}, err
	}

	existing, err := s.leaveRecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRecord{}, err
	}
	if _, err := s.leaveTypeRepository.GetByID(ctx, req.LeaveTypeID); err != nil {
		return leave.LeaveRecord{}, err
	}

	record, err := recordFromRequest(req.CreateLeaveRecordRequest)
	if err != nil {
		return leave.LeaveRecord{}, err
	}
	record.ID = existing.ID

	var updated leave.LeaveRecord
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.leaveRecordRepository.Update(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to update leave record: %w", err)
		}
		if existing.Key() == updated.Key() {
			return s.quotaService.ApplyDelta(ctx, updated.Key(), updated.DaysCount.Sub(existing.DaysCount))
		}
		if err := s.quotaService.ApplyDelta(ctx, existing.Key(), existing.DaysCount.Neg()); err != nil {
			return err
		}
		return s.quotaService.ApplyDelta(ctx, updated.Key(), updated.DaysCount)
	})
	if err != nil {
		return leave.LeaveRecord{}, err
	}
	return updated, nil
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	existing, err := s.leaveRecordRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.leaveRecordRepository.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete leave record: %w", err)
		}
		return s.quotaService.ApplyDelta(ctx, existing.Key(), existing.DaysCount.Neg())
	})
}

func recordFromRequest(req leave.CreateLeaveRecordRequest) (leave.LeaveRecord, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	return leave.LeaveRecord{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		DaysCount:   leave.Days(req.DaysCount),
		Reason:      req.Reason,
		Notes:       req.Notes,
	}, nil
}
