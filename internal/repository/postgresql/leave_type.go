package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

// Create implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO leave_types (id, name, description, default_quota, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.Name, leaveType.Description, leaveType.DefaultQuota,
	).Scan(&leaveType.ID, &leaveType.CreatedAt, &leaveType.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// GetByID implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, description, default_quota, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var leaveType leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&leaveType.ID, &leaveType.Name, &leaveType.Description,
		&leaveType.DefaultQuota, &leaveType.CreatedAt, &leaveType.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// List implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, description, default_quota, created_at, updated_at
		FROM leave_types
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaveTypes := make([]leave.LeaveType, 0)
	for rows.Next() {
		var leaveType leave.LeaveType
		if err := rows.Scan(
			&leaveType.ID, &leaveType.Name, &leaveType.Description,
			&leaveType.DefaultQuota, &leaveType.CreatedAt, &leaveType.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leaveTypes = append(leaveTypes, leaveType)
	}

	return leaveTypes, nil
}

// Update implements leave.LeaveTypeRepository.
// Existing quota rows are not retouched when default_quota changes.
func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, leaveType leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		UPDATE leave_types
		SET name = $1, description = $2, default_quota = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		leaveType.Name, leaveType.Description, leaveType.DefaultQuota, leaveType.ID,
	).Scan(&leaveType.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return leaveType, nil
}

// Delete implements leave.LeaveTypeRepository.
func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		DELETE FROM leave_types
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}
