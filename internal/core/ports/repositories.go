package ports

import (
	"context"

	"github.com/freelancehub/dashboard/internal/core/domain"
)

// List methods return the whole collection in insertion order. Scoping is
// applied by the caller, never by the store.

// ClientRepository defines persistence for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	// FindByName returns domain.ErrClientNotFound when no client matches.
	FindByName(ctx context.Context, name string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	// FindByID returns domain.ErrProjectNotFound when no project matches.
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
}

// TimeEntryRepository defines persistence for time entries.
type TimeEntryRepository interface {
	List(ctx context.Context) ([]domain.TimeEntry, error)
	// Append stores e and assigns its ID.
	Append(ctx context.Context, e *domain.TimeEntry) error
	// FindByID returns domain.ErrTimeEntryNotFound when no entry matches.
	FindByID(ctx context.Context, id string) (*domain.TimeEntry, error)
}

// InvoiceRepository defines persistence for invoices.
type InvoiceRepository interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Create(ctx context.Context, inv *domain.Invoice) error
}

// IdempotencyStore remembers which time entry a submission key produced.
// Reserve must claim the key atomically: of several concurrent callers with
// the same key, exactly one gets reserved == true.
type IdempotencyStore interface {
	// Reserve claims key. When another submission already holds it, reserved
	// is false and entryID is the entry it produced, or "" while that write is
	// still in flight.
	Reserve(ctx context.Context, key string) (entryID string, reserved bool, err error)
	// Complete records entryID under a key this caller reserved.
	Complete(ctx context.Context, key, entryID string) error
	// Release drops a reservation whose write failed.
	Release(ctx context.Context, key string) error
}

// Store bundles the repositories of one backing database.
type Store struct {
	Clients     ClientRepository
	Projects    ProjectRepository
	TimeEntries TimeEntryRepository
	Invoices    InvoiceRepository
	Users       UserRepository
}
