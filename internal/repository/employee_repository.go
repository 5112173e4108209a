package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dayflow/hr-service/internal/domain"
)

// EmployeeRepository is the credential store: accounts with approval status.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error)
	UpdateStatus(ctx context.Context, id int64, status domain.EmployeeStatus) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, email, password, role, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		employee.Name,
		employee.Email,
		employee.PasswordHash,
		employee.Role,
		employee.Status,
	).Scan(&employee.ID, &employee.CreatedAt)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	const query = `
        SELECT id, COALESCE(name, ''), email, password, role, status, created_at
        FROM employees WHERE id=$1`

	return scanEmployee(r.pool.QueryRow(ctx, query, id))
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, COALESCE(name, ''), email, password, role, status, created_at
        FROM employees WHERE lower(email)=lower($1)`

	return scanEmployee(r.pool.QueryRow(ctx, query, email))
}

func (r *employeeRepository) ListByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	const query = `
        SELECT id, COALESCE(name, ''), email, password, role, status, created_at
        FROM employees WHERE status=$1
        ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) UpdateStatus(ctx context.Context, id int64, status domain.EmployeeStatus) error {
	const query = `UPDATE employees SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var employee domain.Employee
	if err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.PasswordHash,
		&employee.Role,
		&employee.Status,
		&employee.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}
