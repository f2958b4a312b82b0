package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// LeaveQuotaRepository is an in-memory leave.LeaveQuotaRepository. Rows are
// stored by ID, not by key, so the unguarded Create really does duplicate.
type LeaveQuotaRepository struct {
	mu     sync.RWMutex
	quotas map[string]leave.LeaveQuota

	// leaveTypes, when set, resolves LeaveTypeName on reads the way the
	// postgresql repository's JOIN does.
	leaveTypes *LeaveTypeRepository
}

func NewLeaveQuotaRepository(leaveTypes *LeaveTypeRepository) *LeaveQuotaRepository {
	return &LeaveQuotaRepository{
		quotas:     make(map[string]leave.LeaveQuota),
		leaveTypes: leaveTypes,
	}
}

func (r *LeaveQuotaRepository) Create(_ context.Context, quota leave.LeaveQuota) (leave.LeaveQuota, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(quota), nil
}

func (r *LeaveQuotaRepository) CreateIfAbsent(_ context.Context, quota leave.LeaveQuota) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := leave.QuotaKey{EmployeeID: quota.EmployeeID, LeaveTypeID: quota.LeaveTypeID, Year: quota.Year}
	for _, existing := range r.quotas {
		if quotaKey(existing) == key {
			return false, nil
		}
	}
	r.insert(quota)
	return true, nil
}

func (r *LeaveQuotaRepository) insert(quota leave.LeaveQuota) leave.LeaveQuota {
	quota.ID = uuid.NewString()
	quota.CreatedAt = time.Now()
	quota.UpdatedAt = quota.CreatedAt
	r.quotas[quota.ID] = quota
	return quota
}

func (r *LeaveQuotaRepository) GetByID(_ context.Context, id string) (leave.LeaveQuota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quota, ok := r.quotas[id]
	if !ok {
		return leave.LeaveQuota{}, leave.ErrQuotaNotFound
	}
	return r.withTypeName(quota), nil
}

func (r *LeaveQuotaRepository) GetByKey(_ context.Context, key leave.QuotaKey) (leave.LeaveQuota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, quota := range r.quotas {
		if quotaKey(quota) == key {
			return r.withTypeName(quota), nil
		}
	}
	return leave.LeaveQuota{}, leave.ErrQuotaNotFound
}

func (r *LeaveQuotaRepository) GetByEmployee(_ context.Context, employeeID string) ([]leave.LeaveQuota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(q leave.LeaveQuota) bool {
		return q.EmployeeID == employeeID
	}), nil
}

func (r *LeaveQuotaRepository) GetByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.LeaveQuota, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(q leave.LeaveQuota) bool {
		return q.EmployeeID == employeeID && q.Year == year
	}), nil
}

func (r *LeaveQuotaRepository) SetUsedDays(_ context.Context, quotaID string, used decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	quota, ok := r.quotas[quotaID]
	if !ok {
		return leave.ErrQuotaNotFound
	}
	quota.UsedDays = used
	quota.UpdatedAt = time.Now()
	r.quotas[quotaID] = quota
	return nil
}

func (r *LeaveQuotaRepository) SetDays(_ context.Context, quotaID string, total, used decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	quota, ok := r.quotas[quotaID]
	if !ok {
		return leave.ErrQuotaNotFound
	}
	quota.TotalDays = total
	quota.UsedDays = used
	quota.UpdatedAt = time.Now()
	r.quotas[quotaID] = quota
	return nil
}

func (r *LeaveQuotaRepository) collect(match func(leave.LeaveQuota) bool) []leave.LeaveQuota {
	quotas := make([]leave.LeaveQuota, 0)
	for _, quota := range r.quotas {
		if match(quota) {
			quotas = append(quotas, r.withTypeName(quota))
		}
	}
	sort.Slice(quotas, func(i, j int) bool {
		nameI, nameJ := "", ""
		if quotas[i].LeaveTypeName != nil {
			nameI = *quotas[i].LeaveTypeName
		}
		if quotas[j].LeaveTypeName != nil {
			nameJ = *quotas[j].LeaveTypeName
		}
		if nameI != nameJ {
			return nameI < nameJ
		}
		return quotas[i].Year < quotas[j].Year
	})
	return quotas
}

func (r *LeaveQuotaRepository) withTypeName(quota leave.LeaveQuota) leave.LeaveQuota {
	if r.leaveTypes == nil {
		return quota
	}
	if leaveType, ok := r.leaveTypes.lookup(quota.LeaveTypeID); ok {
		quota.LeaveTypeName = &leaveType.Name
		quota.LeaveTypeDescription = leaveType.Description
	}
	return quota
}

func quotaKey(q leave.LeaveQuota) leave.QuotaKey {
	return leave.QuotaKey{EmployeeID: q.EmployeeID, LeaveTypeID: q.LeaveTypeID, Year: q.Year}
}
