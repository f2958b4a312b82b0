package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// QuotaService owns every write to the quota ledger. Lifecycle deltas go
// through ApplyDelta, onboarding through Provision, and administrative
// absolute writes through Override.
type QuotaService struct {
	leaveTypeRepository  leave.LeaveTypeRepository
	leaveQuotaRepository leave.LeaveQuotaRepository
}

func NewQuotaService(leaveTypeRepository leave.LeaveTypeRepository, leaveQuotaRepository leave.LeaveQuotaRepository) *QuotaService {
	return &QuotaService{
		leaveTypeRepository:  leaveTypeRepository,
		leaveQuotaRepository: leaveQuotaRepository,
	}
}

// ApplyDelta adjusts used_days on the ledger row identified by key. The
// result is clamped at zero so a decrement can never drive usage negative.
// A missing row is skipped silently: the booking proceeds untracked rather
// than failing, matching how un-provisioned employees are handled.
func (s *QuotaService) ApplyDelta(ctx context.Context, key leave.QuotaKey, delta decimal.Decimal) error {
	quota, err := s.leaveQuotaRepository.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, leave.ErrQuotaNotFound) {
			slog.Debug("no quota row for leave delta, skipping",
				"employee_id", key.EmployeeID,
				"leave_type_id", key.LeaveTypeID,
				"year", key.Year,
			)
			return nil
		}
		return fmt.Errorf("failed to get quota by key: %w", err)
	}

	used := quota.UsedDays.Add(delta)
	if used.IsNegative() {
		used = decimal.Zero
	}

	if err := s.leaveQuotaRepository.SetUsedDays(ctx, quota.ID, used); err != nil {
		return fmt.Errorf("failed to update used days: %w", err)
	}
	return nil
}

// Provision creates one ledger row per catalog leave type for the given
// employee and year, seeded with the type's default quota and zero usage.
// Rows that already exist are left untouched, so re-running is safe. It
// returns the number of rows actually inserted; an empty catalog inserts
// nothing and is not an error.
func (s *QuotaService) Provision(ctx context.Context, employeeID string, year int) (int, error) {
	leaveTypes, err := s.leaveTypeRepository.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list leave types: %w", err)
	}

	inserted := 0
	for _, leaveType := range leaveTypes {
		created, err := s.leaveQuotaRepository.CreateIfAbsent(ctx, leave.LeaveQuota{
			EmployeeID:  employeeID,
			LeaveTypeID: leaveType.ID,
			Year:        year,
			TotalDays:   leaveType.DefaultQuota,
			UsedDays:    decimal.Zero,
		})
		if err != nil {
			return inserted, fmt.Errorf("failed to provision quota for leave type %s: %w", leaveType.ID, err)
		}
		if created {
			inserted++
		}
	}
	return inserted, nil
}

// Override writes total_days and used_days as absolute values per row.
// It bypasses the delta path entirely; existing leave records are not
// reconciled against the new numbers.
func (s *QuotaService) Override(ctx context.Context, req leave.OverrideQuotasRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	for _, item := range req.Quotas {
		total := decimal.NewFromFloat(item.TotalDays)
		used := decimal.NewFromFloat(item.UsedDays)
		if err := s.leaveQuotaRepository.SetDays(ctx, item.QuotaID, total, used); err != nil {
			return fmt.Errorf("failed to override quota %s: %w", item.QuotaID, err)
		}
	}
	return nil
}
