// Package aggregate computes dashboard, time-log and report summaries.
//
// Every function is a pure reduction over full collections and a scope. Inputs
// are never mutated, and the same inputs always produce the same output.
package aggregate

import (
	"math"
	"time"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/scope"
)

// DashboardSummary is the headline figures of the dashboard.
type DashboardSummary struct {
	ActiveProjectCount  int
	MonthHoursTotal     float64 // unrounded
	PendingInvoiceCount int
	PaidTotal           float64 // for a client this is the amount spent
}

// MonthHoursDisplay returns MonthHoursTotal rounded to one decimal place.
func (d DashboardSummary) MonthHoursDisplay() float64 {
	return math.Round(d.MonthHoursTotal*10) / 10
}

// MonthStart returns the first day of ref's month.
func MonthStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Dashboard computes the summary visible to s as of ref.
//
// Hours count every visible entry dated on or after the first day of ref's
// month; there is no upper bound.
func Dashboard(projects []domain.Project, entries []domain.TimeEntry, invoices []domain.Invoice, s scope.Scope, ref time.Time) DashboardSummary {
	var sum DashboardSummary
	idx := domain.IndexProjects(projects)

	for _, p := range projects {
		if p.Status == domain.ProjectActive && s.Project(p) {
			sum.ActiveProjectCount++
		}
	}

	start := MonthStart(ref)
	for _, e := range entries {
		if !s.TimeEntry(e, idx) {
			continue
		}
		if !domain.Day(e.Date).Before(start) {
			sum.MonthHoursTotal += e.Hours
		}
	}

	for _, inv := range invoices {
		if !s.Invoice(inv, idx) {
			continue
		}
		switch {
		case inv.Status.Pending():
			sum.PendingInvoiceCount++
		case inv.Status == domain.InvoicePaid:
			sum.PaidTotal += inv.Amount
		}
	}

	return sum
}
