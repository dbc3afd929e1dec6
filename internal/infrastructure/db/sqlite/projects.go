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

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

// ProjectRepository implements ports.ProjectRepository.
type ProjectRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var (
		p        domain.Project
		status   string
		deadline string
	)
	if err := row.Scan(&p.ID, &p.Name, &status, &deadline, &p.Budget, &p.ClientID); err != nil {
		return domain.Project{}, err
	}
	d, err := parseDay(deadline)
	if err != nil {
		return domain.Project{}, err
	}
	p.Status = domain.ProjectStatus(status)
	p.Deadline = d
	return p, nil
}

// List returns every project in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, status, deadline, budget, client_id FROM projects ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// FindByID retrieves a project by ID.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx,
		"SELECT id, name, status, deadline, budget, client_id FROM projects WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// Create inserts a new project and assigns its ID when unset.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, status, deadline, budget, client_id) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, string(p.Status), formatDay(p.Deadline), p.Budget, p.ClientID,
	); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}
