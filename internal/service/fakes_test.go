package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dayflow/hr-service/internal/domain"
	"github.com/dayflow/hr-service/internal/events"
)

type memEmployees struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Employee
	err    error
}

func newMemEmployees() *memEmployees {
	return &memEmployees{rows: map[int64]domain.Employee{}}
}

func (m *memEmployees) Create(_ context.Context, e *domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, row := range m.rows {
		if row.Email == e.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	m.nextID++
	e.ID = m.nextID
	e.CreatedAt = time.Now().UTC()
	m.rows[e.ID] = *e
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &row, nil
}

func (m *memEmployees) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, row := range m.rows {
		if row.Email == email {
			found := row
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memEmployees) ListByStatus(_ context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Employee
	for _, row := range m.rows {
		if row.Status == status {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memEmployees) UpdateStatus(_ context.Context, id int64, status domain.EmployeeStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	row.Status = status
	m.rows[id] = row
	return nil
}

type memLeaves struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Leave
}

func newMemLeaves() *memLeaves {
	return &memLeaves{rows: map[int64]domain.Leave{}}
}

func (m *memLeaves) Create(_ context.Context, l *domain.Leave) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	l.ID = m.nextID
	l.CreatedAt = time.Now().UTC()
	m.rows[l.ID] = *l
	return nil
}

func (m *memLeaves) ListByStatus(_ context.Context, status domain.LeaveStatus) ([]domain.Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Leave
	for _, row := range m.rows {
		if row.Status == status {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memLeaves) ListByEmployee(_ context.Context, employeeID int64) ([]domain.Leave, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Leave
	for _, row := range m.rows {
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

func (m *memLeaves) UpdateStatus(_ context.Context, id int64, status domain.LeaveStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	row.Status = status
	m.rows[id] = row
	return nil
}

// recorder captures every event published through a dispatcher.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) attach(d events.Dispatcher, types ...events.EventType) {
	d.Subscribe(func(_ context.Context, e events.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
		return nil
	}, types...)
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
