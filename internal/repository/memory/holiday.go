package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
)

// HolidayRepository is an in-memory holiday.HolidayRepository.
type HolidayRepository struct {
	mu       sync.RWMutex
	holidays map[string]holiday.Holiday
}

func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{holidays: make(map[string]holiday.Holiday)}
}

func (r *HolidayRepository) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	r.holidays[h.ID] = h
	return h, nil
}

func (r *HolidayRepository) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (r *HolidayRepository) List(_ context.Context) ([]holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sorted(func(holiday.Holiday) bool { return true }), nil
}

func (r *HolidayRepository) Upcoming(_ context.Context, from time.Time, limit int) ([]holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	upcoming := r.sorted(func(h holiday.Holiday) bool {
		return !h.Date.Before(from)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming, nil
}

func (r *HolidayRepository) Update(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.holidays[h.ID]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now()
	r.holidays[h.ID] = h
	return h, nil
}

func (r *HolidayRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	return nil
}

func (r *HolidayRepository) sorted(match func(holiday.Holiday) bool) []holiday.Holiday {
	holidays := make([]holiday.Holiday, 0, len(r.holidays))
	for _, h := range r.holidays {
		if match(h) {
			holidays = append(holidays, h)
		}
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}
