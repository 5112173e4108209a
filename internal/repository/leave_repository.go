package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayflow/hr-service/internal/domain"
)

// LeaveRepository persists leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) error
	ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]domain.Leave, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Leave, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) error
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository returns a Postgres-backed implementation.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	const query = `
        INSERT INTO leaves (employee_id, type, start_date, end_date, reason, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		leave.EmployeeID,
		leave.Type,
		leave.StartDate,
		leave.EndDate,
		leave.Reason,
		leave.Status,
	).Scan(&leave.ID, &leave.CreatedAt)
}

func (r *leaveRepository) ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]domain.Leave, error) {
	const query = `
        SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason, l.status, l.created_at,
               COALESCE(e.email, '')
        FROM leaves l
        LEFT JOIN employees e ON e.id = l.employee_id
        WHERE l.status=$1
        ORDER BY l.created_at ASC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Leave{}
	for rows.Next() {
		var leave domain.Leave
		if err := rows.Scan(
			&leave.ID,
			&leave.EmployeeID,
			&leave.Type,
			&leave.StartDate,
			&leave.EndDate,
			&leave.Reason,
			&leave.Status,
			&leave.CreatedAt,
			&leave.EmployeeEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, leave)
	}
	return result, rows.Err()
}

func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Leave, error) {
	const query = `
        SELECT id, employee_id, type, start_date, end_date, reason, status, created_at
        FROM leaves WHERE employee_id=$1
        ORDER BY start_date DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Leave{}
	for rows.Next() {
		var leave domain.Leave
		if err := rows.Scan(
			&leave.ID,
			&leave.EmployeeID,
			&leave.Type,
			&leave.StartDate,
			&leave.EndDate,
			&leave.Reason,
			&leave.Status,
			&leave.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, leave)
	}
	return result, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) error {
	const query = `UPDATE leaves SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
