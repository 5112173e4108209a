package http

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dayflow/hr-service/internal/domain"
)

type fakeEmployees struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[int64]domain.Employee
	failWith error
}

func (f *fakeEmployees) Create(_ context.Context, e *domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == e.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Now().UTC()
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEmployees) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (f *fakeEmployees) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, row := range f.rows {
		if row.Email == email {
			found := row
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployees) ListByStatus(_ context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Employee
	for _, row := range f.rows {
		if row.Status == status {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEmployees) UpdateStatus(_ context.Context, id int64, status domain.EmployeeStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	row.Status = status
	f.rows[id] = row
	return nil
}

type fakeLeaves struct {
	mu        sync.Mutex
	nextID    int64
	rows      map[int64]domain.Leave
	employees *fakeEmployees
}

func (f *fakeLeaves) Create(_ context.Context, l *domain.Leave) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	l.ID = f.nextID
	l.CreatedAt = time.Now().UTC()
	f.rows[l.ID] = *l
	return nil
}

func (f *fakeLeaves) ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]domain.Leave, error) {
	f.mu.Lock()
	var out []domain.Leave
	for _, row := range f.rows {
		if row.Status == status {
			out = append(out, row)
		}
	}
	f.mu.Unlock()

	for i := range out {
		if e, err := f.employees.GetByID(ctx, out[i].EmployeeID); err == nil {
			out[i].EmployeeEmail = e.Email
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLeaves) ListByEmployee(_ context.Context, employeeID int64) ([]domain.Leave, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Leave
	for _, row := range f.rows {
		if row.EmployeeID == employeeID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeLeaves) UpdateStatus(_ context.Context, id int64, status domain.LeaveStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	row.Status = status
	f.rows[id] = row
	return nil
}
