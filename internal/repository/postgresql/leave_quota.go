package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

type leaveQuotaRepositoryImpl struct {
	db *database.DB
}

func NewLeaveQuotaRepository(db *database.DB) leave.LeaveQuotaRepository {
	return &leaveQuotaRepositoryImpl{db: db}
}

// Create implements leave.LeaveQuotaRepository.
// Unconditional insert; the schema carries no uniqueness on the key, so
// provisioning without the guard duplicates rows.
func (r *leaveQuotaRepositoryImpl) Create(ctx context.Context, quota leave.LeaveQuota) (leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employee_leave_quotas (
			id, employee_id, leave_type_id, year, total_days, used_days,
			created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		quota.EmployeeID, quota.LeaveTypeID, quota.Year,
		quota.TotalDays, quota.UsedDays,
	).Scan(&quota.ID, &quota.CreatedAt, &quota.UpdatedAt)
	if err != nil {
		return leave.LeaveQuota{}, err
	}

	return quota, nil
}

// CreateIfAbsent implements leave.LeaveQuotaRepository.
// Insert-if-absent on the (employee, leave type, year) key so provisioning
// is idempotent. Guarded with NOT EXISTS because the table carries no
// unique constraint on the key.
func (r *leaveQuotaRepositoryImpl) CreateIfAbsent(ctx context.Context, quota leave.LeaveQuota) (bool, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO employee_leave_quotas (
			id, employee_id, leave_type_id, year, total_days, used_days,
			created_at, updated_at
		)
		SELECT gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM employee_leave_quotas
			WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
		)
	`

	commandTag, err := q.Exec(ctx, query,
		quota.EmployeeID, quota.LeaveTypeID, quota.Year,
		quota.TotalDays, quota.UsedDays,
	)
	if err != nil {
		return false, err
	}

	return commandTag.RowsAffected() == 1, nil
}

// GetByID implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, leave_type_id, year, total_days, used_days,
			   created_at, updated_at
		FROM employee_leave_quotas
		WHERE id = $1
	`

	var quota leave.LeaveQuota
	err := q.QueryRow(ctx, query, id).Scan(
		&quota.ID, &quota.EmployeeID, &quota.LeaveTypeID, &quota.Year,
		&quota.TotalDays, &quota.UsedDays,
		&quota.CreatedAt, &quota.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveQuota{}, leave.ErrQuotaNotFound
		}
		return leave.LeaveQuota{}, err
	}

	return quota, nil
}

// GetByKey implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepositoryImpl) GetByKey(ctx context.Context, key leave.QuotaKey) (leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, employee_id, leave_type_id, year, total_days, used_days,
			   created_at, updated_at
		FROM employee_leave_quotas
		WHERE employee_id = $1 AND leave_type_id = $2 AND year = $3
	`

	var quota leave.LeaveQuota
	err := q.QueryRow(ctx, query, key.EmployeeID, key.LeaveTypeID, key.Year).Scan(
		&quota.ID, &quota.EmployeeID, &quota.LeaveTypeID, &quota.Year,
		&quota.TotalDays, &quota.UsedDays,
		&quota.CreatedAt, &quota.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveQuota{}, leave.ErrQuotaNotFound
		}
		return leave.LeaveQuota{}, err
	}

	return quota, nil
}

// GetByEmployee implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lq.id, lq.employee_id, lq.leave_type_id, lq.year,
			   lq.total_days, lq.used_days, lq.created_at, lq.updated_at,
			   lt.name AS leave_type_name, lt.description AS leave_type_description
		FROM employee_leave_quotas lq
		JOIN leave_types lt ON lq.leave_type_id = lt.id
		WHERE lq.employee_id = $1
		ORDER BY lq.year DESC, lt.name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuotaRows(rows)
}

// GetByEmployeeYear implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepositoryImpl) GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveQuota, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lq.id, lq.employee_id, lq.leave_type_id, lq.year,
			   lq.total_days, lq.used_days, lq.created_at, lq.updated_at,
			   lt.name AS leave_type_name, lt.description AS leave_type_description
		FROM employee_leave_quotas lq
		JOIN leave_types lt ON lq.leave_type_id = lt.id
		WHERE lq.employee_id = $1 AND lq.year = $2
		ORDER BY lt.name
	`

	rows, err := q.Query(ctx, query, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuotaRows(rows)
}

func scanQuotaRows(rows pgx.Rows) ([]leave.LeaveQuota, error) {
	quotas := make([]leave.LeaveQuota, 0)
	for rows.Next() {
		var quota leave.LeaveQuota
		if err := rows.Scan(
			&quota.ID, &quota.EmployeeID, &quota.LeaveTypeID, &quota.Year,
			&quota.TotalDays, &quota.UsedDays, &quota.CreatedAt, &quota.UpdatedAt,
			&quota.LeaveTypeName, &quota.LeaveTypeDescription,
		); err != nil {
			return nil, err
		}
		quotas = append(quotas, quota)
	}
	return quotas, nil
}

// SetUsedDays implements leave.LeaveQuotaRepository.
func (r *leaveQuotaRepositoryImpl) SetUsedDays(ctx context.Context, quotaID string, used decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employee_leave_quotas
		SET used_days = $1, updated_at = NOW()
		WHERE id = $2
	`
	commandTag, err := q.Exec(ctx, query, used, quotaID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrQuotaNotFound
	}
	return nil
}

// SetDays implements leave.LeaveQuotaRepository.
// Administrative override: absolute writes, no reconciliation against
// leave records.
func (r *leaveQuotaRepositoryImpl) SetDays(ctx context.Context, quotaID string, total, used decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE employee_leave_quotas
		SET total_days = $1, used_days = $2, updated_at = NOW()
		WHERE id = $3
	`
	commandTag, err := q.Exec(ctx, query, total, used, quotaID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrQuotaNotFound
	}
	return nil
}
