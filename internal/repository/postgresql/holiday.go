package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO company_holidays (id, name, date, description, is_recurring, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.Name, h.Date, h.Description, h.IsRecurring,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, err
	}

	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, description, is_recurring, created_at, updated_at
		FROM company_holidays
		WHERE id = $1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Date, &h.Description, &h.IsRecurring,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, description, is_recurring, created_at, updated_at
		FROM company_holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidayRows(rows)
}

// Upcoming implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Upcoming(ctx context.Context, from time.Time, limit int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, date, description, is_recurring, created_at, updated_at
		FROM company_holidays
		WHERE date >= $1
		ORDER BY date
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHolidayRows(rows)
}

func scanHolidayRows(rows pgx.Rows) ([]holiday.Holiday, error) {
	holidays := make([]holiday.Holiday, 0)
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Date, &h.Description, &h.IsRecurring,
			&h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE company_holidays
		SET name = $1, date = $2, description = $3, is_recurring = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		h.Name, h.Date, h.Description, h.IsRecurring, h.ID,
	).Scan(&h.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}

	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM company_holidays
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
