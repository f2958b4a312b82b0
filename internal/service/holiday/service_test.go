package holiday

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/repository/memory"
)

func newHolidayService() holiday.HolidayService {
	return NewHolidayService(memory.NewHolidayRepository())
}

func TestCreateAndListHolidays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newHolidayService()

	_, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{
		Name:        "Christmas",
		Date:        "2026-12-25",
		IsRecurring: true,
	})
	require.NoError(t, err)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{
		Name: "Company Anniversary",
		Date: "2026-06-10",
	})
	require.NoError(t, err)

	holidays, err := svc.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "Company Anniversary", holidays[0].Name, "list is ordered by date")
	assert.Equal(t, "Christmas", holidays[1].Name)
	assert.True(t, holidays[1].IsRecurring)
}

func TestCreateHolidayValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newHolidayService()

	_, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Name: "No date"})
	assert.Error(t, err)

	_, err = svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{Name: "Bad date", Date: "25-12-2026"})
	assert.Error(t, err)
}

func TestUpdateHoliday(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newHolidayService()

	created, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{
		Name: "Independence Day",
		Date: "2026-08-17",
	})
	require.NoError(t, err)

	newDate := "2026-08-18"
	recurring := true
	updated, err := svc.UpdateHoliday(ctx, holiday.UpdateHolidayRequest{
		ID:          created.ID,
		Date:        &newDate,
		IsRecurring: &recurring,
	})
	require.NoError(t, err)
	assert.Equal(t, "Independence Day", updated.Name)
	assert.Equal(t, newDate, updated.Date)
	assert.True(t, updated.IsRecurring)
}

func TestUpdateUnknownHoliday(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newHolidayService()

	name := "Ghost"
	_, err := svc.UpdateHoliday(ctx, holiday.UpdateHolidayRequest{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestDeleteHoliday(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newHolidayService()

	created, err := svc.CreateHoliday(ctx, holiday.CreateHolidayRequest{
		Name: "Christmas",
		Date: "2026-12-25",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHoliday(ctx, created.ID))

	holidays, err := svc.ListHolidays(ctx)
	require.NoError(t, err)
	assert.Empty(t, holidays)

	assert.ErrorIs(t, svc.DeleteHoliday(ctx, created.ID), holiday.ErrHolidayNotFound)
}
