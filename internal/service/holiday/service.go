package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepository holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepository: holidayRepository}
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.holidayRepository.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return holiday.ToResponse(created), nil
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

// UpdateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) UpdateHoliday(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	existing, err := s.holidayRepository.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return holiday.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		existing.Date = date
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.IsRecurring != nil {
		existing.IsRecurring = *req.IsRecurring
	}

	updated, err := s.holidayRepository.Update(ctx, existing)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}
	return holiday.ToResponse(updated), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepository.Delete(ctx, id)
}
