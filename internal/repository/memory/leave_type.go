package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// LeaveTypeRepository is an in-memory leave.LeaveTypeRepository.
type LeaveTypeRepository struct {
	mu    sync.RWMutex
	types map[string]leave.LeaveType
}

func NewLeaveTypeRepository() *LeaveTypeRepository {
	return &LeaveTypeRepository{types: make(map[string]leave.LeaveType)}
}

func (r *LeaveTypeRepository) Create(_ context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	leaveType.ID = uuid.NewString()
	leaveType.CreatedAt = time.Now()
	leaveType.UpdatedAt = leaveType.CreatedAt
	r.types[leaveType.ID] = leaveType
	return leaveType, nil
}

func (r *LeaveTypeRepository) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leaveType, ok := r.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return leaveType, nil
}

func (r *LeaveTypeRepository) List(_ context.Context) ([]leave.LeaveType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leaveTypes := make([]leave.LeaveType, 0, len(r.types))
	for _, leaveType := range r.types {
		leaveTypes = append(leaveTypes, leaveType)
	}
	sort.Slice(leaveTypes, func(i, j int) bool {
		return leaveTypes[i].Name < leaveTypes[j].Name
	})
	return leaveTypes, nil
}

func (r *LeaveTypeRepository) Update(_ context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.types[leaveType.ID]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	leaveType.CreatedAt = existing.CreatedAt
	leaveType.UpdatedAt = time.Now()
	r.types[leaveType.ID] = leaveType
	return leaveType, nil
}

func (r *LeaveTypeRepository) lookup(id string) (leave.LeaveType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leaveType, ok := r.types[id]
	return leaveType, ok
}

func (r *LeaveTypeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[id]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	delete(r.types, id)
	return nil
}
