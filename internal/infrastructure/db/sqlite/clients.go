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

var _ ports.ClientRepository = (*ClientRepository)(nil)

// ClientRepository implements ports.ClientRepository.
type ClientRepository struct {
	db *sql.DB
}

// List returns every client in insertion order.
func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, email FROM clients ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// FindByName retrieves a client by its unique name.
func (r *ClientRepository) FindByName(ctx context.Context, name string) (*domain.Client, error) {
	var c domain.Client
	err := r.db.QueryRowContext(ctx, "SELECT id, name, email FROM clients WHERE name = ?", name).
		Scan(&c.ID, &c.Name, &c.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client by name: %w", err)
	}
	return &c, nil
}

// Create inserts a new client and assigns its ID when unset.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO clients (id, name, email) VALUES (?, ?, ?)",
		c.ID, c.Name, c.Email,
	); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}
