package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// LeaveRecordRepository is an in-memory leave.LeaveRecordRepository.
type LeaveRecordRepository struct {
	mu      sync.RWMutex
	records map[string]leave.LeaveRecord

	employees  *EmployeeRepository
	leaveTypes *LeaveTypeRepository
}

func NewLeaveRecordRepository(employees *EmployeeRepository, leaveTypes *LeaveTypeRepository) *LeaveRecordRepository {
	return &LeaveRecordRepository{
		records:    make(map[string]leave.LeaveRecord),
		employees:  employees,
		leaveTypes: leaveTypes,
	}
}

func (r *LeaveRecordRepository) Create(_ context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = record
	return r.withRelations(record), nil
}

func (r *LeaveRecordRepository) GetByID(_ context.Context, id string) (leave.LeaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return leave.LeaveRecord{}, leave.ErrLeaveRecordNotFound
	}
	return r.withRelations(record), nil
}

func (r *LeaveRecordRepository) List(_ context.Context, filter leave.RecordFilter) ([]leave.LeaveRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]leave.LeaveRecord, 0)
	for _, record := range r.records {
		record = r.withRelations(record)
		if filter.LeaveTypeID != "" && record.LeaveTypeID != filter.LeaveTypeID {
			continue
		}
		if filter.Search != "" && !matchesRecord(record, filter.Search) {
			continue
		}
		matched = append(matched, record)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].StartDate.Equal(matched[j].StartDate) {
			return matched[i].StartDate.After(matched[j].StartDate)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func matchesRecord(record leave.LeaveRecord, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []*string{record.EmployeeName, record.EmployeeEmail, record.LeaveTypeName, record.Reason} {
		if field != nil && strings.Contains(strings.ToLower(*field), search) {
			return true
		}
	}
	return false
}

func (r *LeaveRecordRepository) Update(_ context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[record.ID]
	if !ok {
		return leave.LeaveRecord{}, leave.ErrLeaveRecordNotFound
	}
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return r.withRelations(record), nil
}

func (r *LeaveRecordRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return leave.ErrLeaveRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *LeaveRecordRepository) withRelations(record leave.LeaveRecord) leave.LeaveRecord {
	if r.employees != nil {
		if emp, ok := r.employees.lookup(record.EmployeeID); ok {
			record.EmployeeName = &emp.FullName
			record.EmployeeEmail = emp.Email
		}
	}
	if r.leaveTypes != nil {
		if leaveType, ok := r.leaveTypes.lookup(record.LeaveTypeID); ok {
			record.LeaveTypeName = &leaveType.Name
		}
	}
	return record
}
