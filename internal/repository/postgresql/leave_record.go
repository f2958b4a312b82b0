package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

type leaveRecordRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.LeaveRecordRepository {
	return &leaveRecordRepositoryImpl{db: db}
}

// Create implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_records (
			id, employee_id, leave_type_id, start_date, end_date, days_count,
			reason, notes, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.LeaveTypeID, record.StartDate, record.EndDate,
		record.DaysCount, record.Reason, record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

// GetByID implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, leave_type_id, start_date, end_date, days_count,
			   reason, notes, created_at, updated_at
		FROM leave_records
		WHERE id = $1
	`

	var record leave.LeaveRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.LeaveTypeID,
		&record.StartDate, &record.EndDate, &record.DaysCount,
		&record.Reason, &record.Notes, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRecord{}, leave.ErrLeaveRecordNotFound
		}
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

// List implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) List(ctx context.Context, filter leave.RecordFilter) ([]leave.LeaveRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}

	if filter.LeaveTypeID != "" {
		args = append(args, filter.LeaveTypeID)
		where += fmt.Sprintf(" AND lr.leave_type_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.email ILIKE $%d OR lt.name ILIKE $%d OR lr.reason ILIKE $%d)", n, n, n, n)
	}

	fromClause := `
		FROM leave_records lr
		JOIN employees e ON lr.employee_id = e.id
		JOIN leave_types lt ON lr.leave_type_id = lt.id
	`

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+fromClause+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.days_count, lr.reason, lr.notes, lr.created_at, lr.updated_at,
			   e.full_name AS employee_name, e.email AS employee_email,
			   lt.name AS leave_type_name
	` + fromClause + where + " ORDER BY lr.created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		page := filter.Page
		if page < 1 {
			page = 1
		}
		args = append(args, (page-1)*filter.Limit)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := make([]leave.LeaveRecord, 0)
	for rows.Next() {
		var record leave.LeaveRecord
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.LeaveTypeID,
			&record.StartDate, &record.EndDate, &record.DaysCount,
			&record.Reason, &record.Notes, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName, &record.EmployeeEmail, &record.LeaveTypeName,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	return records, total, nil
}

// Update implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Update(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_records
		SET employee_id = $1, leave_type_id = $2, start_date = $3, end_date = $4,
			days_count = $5, reason = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.LeaveTypeID, record.StartDate, record.EndDate,
		record.DaysCount, record.Reason, record.Notes, record.ID,
	).Scan(&record.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRecord{}, leave.ErrLeaveRecordNotFound
		}
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

// Delete implements leave.LeaveRecordRepository.
func (r *leaveRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM leave_records
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRecordNotFound
	}
	return nil
}
