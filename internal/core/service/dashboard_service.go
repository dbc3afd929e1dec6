package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/freelancehub/dashboard/internal/core/aggregate"
	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
	"github.com/freelancehub/dashboard/internal/core/scope"
	"github.com/freelancehub/dashboard/internal/pkg/metrics"
)

const (
	viewDashboard = "dashboard"
	viewTimeLog   = "time_log"
	viewReport    = "report"
	viewProjects  = "projects"
	viewInvoices  = "invoices"
)

type dashboardService struct {
	store ports.Store
	// idem is optional; nil disables Idempotency-Key handling.
	idem ports.IdempotencyStore
	log  zerolog.Logger
}

// NewDashboardService returns a DashboardService over store. idem may be nil.
func NewDashboardService(store ports.Store, idem ports.IdempotencyStore, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{store: store, idem: idem, log: log}
}

// resolve turns the actor into a scope. An actor that cannot be resolved is
// logged and served with the deny-all scope.
func (s *dashboardService) resolve(actor domain.Actor, view string) scope.Scope {
	sc, err := scope.ForActor(actor)
	if err != nil {
		metrics.ScopeIntegrityErrorsTotal.WithLabelValues(view).Inc()
		s.log.Error().Err(err).
			Str("username", actor.Username).
			Str("role", string(actor.Role)).
			Str("view", view).
			Msg("scope integrity violation, serving empty view")
	}
	return sc
}

func observe(view string, sc scope.Scope) func() {
	timer := prometheus.NewTimer(metrics.ViewDuration.WithLabelValues(view))
	return func() {
		timer.ObserveDuration()
		metrics.ViewsServedTotal.WithLabelValues(view, sc.Role()).Inc()
	}
}

func (s *dashboardService) DashboardSummary(ctx context.Context, actor domain.Actor, ref time.Time) (aggregate.DashboardSummary, error) {
	sc := s.resolve(actor, viewDashboard)
	defer observe(viewDashboard, sc)()

	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return aggregate.DashboardSummary{}, fmt.Errorf("dashboard: %w", err)
	}
	entries, err := s.store.TimeEntries.List(ctx)
	if err != nil {
		return aggregate.DashboardSummary{}, fmt.Errorf("dashboard: %w", err)
	}
	invoices, err := s.store.Invoices.List(ctx)
	if err != nil {
		return aggregate.DashboardSummary{}, fmt.Errorf("dashboard: %w", err)
	}

	return aggregate.Dashboard(projects, entries, invoices, sc, ref), nil
}

func (s *dashboardService) TimeLogView(ctx context.Context, actor domain.Actor) (aggregate.TimeLogView, error) {
	sc := s.resolve(actor, viewTimeLog)
	defer observe(viewTimeLog, sc)()

	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return aggregate.TimeLogView{}, fmt.Errorf("time log: %w", err)
	}
	entries, err := s.store.TimeEntries.List(ctx)
	if err != nil {
		return aggregate.TimeLogView{}, fmt.Errorf("time log: %w", err)
	}

	return aggregate.TimeLog(projects, entries, sc), nil
}

func (s *dashboardService) ReportView(ctx context.Context, actor domain.Actor) (aggregate.ReportView, error) {
	sc := s.resolve(actor, viewReport)
	defer observe(viewReport, sc)()

	clients, err := s.store.Clients.List(ctx)
	if err != nil {
		return aggregate.ReportView{}, fmt.Errorf("report: %w", err)
	}
	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return aggregate.ReportView{}, fmt.Errorf("report: %w", err)
	}
	entries, err := s.store.TimeEntries.List(ctx)
	if err != nil {
		return aggregate.ReportView{}, fmt.Errorf("report: %w", err)
	}
	invoices, err := s.store.Invoices.List(ctx)
	if err != nil {
		return aggregate.ReportView{}, fmt.Errorf("report: %w", err)
	}

	return aggregate.Report(clients, projects, entries, invoices, sc), nil
}

func (s *dashboardService) Projects(ctx context.Context, actor domain.Actor) ([]aggregate.ProjectRow, error) {
	sc := s.resolve(actor, viewProjects)
	defer observe(viewProjects, sc)()

	clients, err := s.store.Clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}

	return aggregate.Projects(clients, projects, sc), nil
}

func (s *dashboardService) Invoices(ctx context.Context, actor domain.Actor) ([]aggregate.InvoiceRow, error) {
	sc := s.resolve(actor, viewInvoices)
	defer observe(viewInvoices, sc)()

	projects, err := s.store.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoices: %w", err)
	}
	invoices, err := s.store.Invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoices: %w", err)
	}

	return aggregate.Invoices(projects, invoices, sc), nil
}

// RecordTimeEntry appends a single time entry. Nothing is written unless the
// actor may write and the input is valid. When an idempotency key is provided
// and already seen, the previously recorded entry is returned instead.
func (s *dashboardService) RecordTimeEntry(ctx context.Context, actor domain.Actor, in ports.RecordTimeEntryInput) (*ports.RecordTimeEntryResult, error) {
	sc, err := scope.ForActor(actor)
	if err != nil || !sc.CanWrite() {
		metrics.WriteRejectionsTotal.WithLabelValues("forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	entry, err := buildTimeEntry(in)
	if err != nil {
		metrics.WriteRejectionsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	if _, err := s.store.Projects.FindByID(ctx, entry.ProjectID); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			metrics.WriteRejectionsTotal.WithLabelValues("project_not_found").Inc()
			return nil, domain.NewValidationError("project_id", "does not reference an existing project")
		}
		return nil, fmt.Errorf("record time entry: %w", err)
	}

	key := in.IdempotencyKey
	claimed, existing, err := s.claim(ctx, key)
	if err != nil {
		metrics.WriteRejectionsTotal.WithLabelValues("in_flight").Inc()
		return nil, err
	}
	if existing != nil {
		return &ports.RecordTimeEntryResult{Entry: *existing, AlreadyExisted: true}, nil
	}

	if err := s.store.TimeEntries.Append(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("project_id", entry.ProjectID).Msg("failed to append time entry")
		if claimed {
			if rerr := s.idem.Release(ctx, key); rerr != nil {
				s.log.Warn().Err(rerr).Str("idempotency_key", key).Msg("failed to release idempotency key")
			}
		}
		return nil, fmt.Errorf("record time entry: %w", err)
	}
	metrics.TimeEntriesRecordedTotal.Inc()

	if claimed {
		if err := s.idem.Complete(ctx, key, entry.ID); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", key).Msg("failed to store idempotency key")
		}
	}

	s.log.Info().
		Str("entry_id", entry.ID).
		Str("project_id", entry.ProjectID).
		Str("username", actor.Username).
		Float64("hours", entry.Hours).
		Msg("time entry recorded")

	return &ports.RecordTimeEntryResult{Entry: *entry}, nil
}

// claim reserves key before the write. It reports whether this call holds the
// reservation, or returns the entry an earlier submission with key produced.
// A key held by a write still in flight yields domain.ErrDuplicateSubmission.
// Store failures are logged and the write proceeds unguarded.
func (s *dashboardService) claim(ctx context.Context, key string) (bool, *domain.TimeEntry, error) {
	if s.idem == nil || key == "" {
		return false, nil, nil
	}
	id, reserved, err := s.idem.Reserve(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency reservation failed, recording anyway")
		return false, nil, nil
	}
	if reserved {
		return true, nil, nil
	}
	if id == "" {
		return false, nil, domain.ErrDuplicateSubmission
	}
	existing, err := s.store.TimeEntries.FindByID(ctx, id)
	if err != nil {
		// The key points at nothing; take it over so Complete rewrites it.
		s.log.Warn().Err(err).Str("idempotency_key", key).Str("entry_id", id).Msg("idempotent entry vanished, recording anyway")
		return true, nil, nil
	}
	s.log.Info().Str("idempotency_key", key).Str("entry_id", id).Msg("idempotent replay")
	return false, existing, nil
}

func buildTimeEntry(in ports.RecordTimeEntryInput) (*domain.TimeEntry, error) {
	if strings.TrimSpace(in.ProjectID) == "" {
		return nil, domain.NewValidationError("project_id", "is required")
	}
	if !(in.Hours > 0) {
		return nil, domain.NewValidationError("hours", "must be greater than zero")
	}
	date, err := domain.ParseDay(in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}
	return &domain.TimeEntry{
		ProjectID:   in.ProjectID,
		Date:        date,
		Hours:       in.Hours,
		Description: in.Description,
	}, nil
}
