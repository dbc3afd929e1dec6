package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

var _ ports.InvoiceRepository = (*InvoiceRepository)(nil)

// InvoiceRepository implements ports.InvoiceRepository.
type InvoiceRepository struct {
	db *sql.DB
}

// List returns every invoice in insertion order.
func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, project_id, amount, issued_date, status FROM invoices ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		var (
			inv    domain.Invoice
			issued string
			status string
		)
		if err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.Amount, &issued, &status); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		if inv.IssuedDate, err = parseDay(issued); err != nil {
			return nil, err
		}
		inv.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// Create inserts a new invoice and assigns its ID when unset.
func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO invoices (id, project_id, amount, issued_date, status) VALUES (?, ?, ?, ?, ?)",
		inv.ID, inv.ProjectID, inv.Amount, formatDay(inv.IssuedDate), string(inv.Status),
	); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}
