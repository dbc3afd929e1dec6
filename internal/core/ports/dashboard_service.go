package ports

import (
	"context"
	"time"

	"github.com/freelancehub/dashboard/internal/core/aggregate"
	"github.com/freelancehub/dashboard/internal/core/domain"
)

// RecordTimeEntryInput is the DTO passed from the transport layer to
// DashboardService.RecordTimeEntry. Date is YYYY-MM-DD.
type RecordTimeEntryInput struct {
	ProjectID      string
	Date           string
	Hours          float64
	Description    string
	IdempotencyKey string
}

// RecordTimeEntryResult is returned after a successful write.
type RecordTimeEntryResult struct {
	Entry domain.TimeEntry
	// AlreadyExisted is true when the Idempotency-Key matched an earlier write.
	AlreadyExisted bool
}

// DashboardService exposes the scoped views and the single write operation.
// Views never fail because of the caller's scope: an actor whose scope cannot
// be resolved gets the empty view.
type DashboardService interface {
	DashboardSummary(ctx context.Context, actor domain.Actor, ref time.Time) (aggregate.DashboardSummary, error)
	TimeLogView(ctx context.Context, actor domain.Actor) (aggregate.TimeLogView, error)
	ReportView(ctx context.Context, actor domain.Actor) (aggregate.ReportView, error)
	Projects(ctx context.Context, actor domain.Actor) ([]aggregate.ProjectRow, error)
	Invoices(ctx context.Context, actor domain.Actor) ([]aggregate.InvoiceRow, error)
	RecordTimeEntry(ctx context.Context, actor domain.Actor, input RecordTimeEntryInput) (*RecordTimeEntryResult, error)
}
