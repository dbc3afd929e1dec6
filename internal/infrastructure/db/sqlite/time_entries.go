package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

var _ ports.TimeEntryRepository = (*TimeEntryRepository)(nil)

// TimeEntryRepository implements ports.TimeEntryRepository.
type TimeEntryRepository struct {
	db *sql.DB
}

func scanTimeEntry(row rowScanner) (domain.TimeEntry, error) {
	var (
		e    domain.TimeEntry
		date string
	)
	if err := row.Scan(&e.ID, &e.ProjectID, &date, &e.Hours, &e.Description); err != nil {
		return domain.TimeEntry{}, err
	}
	d, err := parseDay(date)
	if err != nil {
		return domain.TimeEntry{}, err
	}
	e.Date = d
	return e, nil
}

// List returns every time entry in insertion order.
func (r *TimeEntryRepository) List(ctx context.Context) ([]domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, date, hours, description FROM time_entries ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.TimeEntry{}
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Append inserts e and assigns a fresh ID.
func (r *TimeEntryRepository) Append(ctx context.Context, e *domain.TimeEntry) error {
	id := uuid.New().String()
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO time_entries (id, project_id, date, hours, description) VALUES (?, ?, ?, ?, ?)",
		id, e.ProjectID, formatDay(e.Date), e.Hours, e.Description,
	); err != nil {
		return fmt.Errorf("failed to append time entry: %w", err)
	}
	e.ID = id
	return nil
}

// FindByID retrieves a time entry by ID.
func (r *TimeEntryRepository) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	e, err := scanTimeEntry(r.db.QueryRowContext(ctx,
		"SELECT id, project_id, date, hours, description FROM time_entries WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTimeEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time entry: %w", err)
	}
	return &e, nil
}
