package aggregate

import (
	"sort"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/scope"
)

// MonthKeyLayout formats invoice issue dates into earnings buckets.
const MonthKeyLayout = "2006-01"

// ClientTotal is one row of the top-clients ranking.
type ClientTotal struct {
	ClientID string
	Name     string
	Total    float64
}

// ReportView holds the chart data of the reports page.
type ReportView struct {
	// HoursByProject is keyed by project name, so two projects that share a
	// name are merged into a single bucket.
	HoursByProject map[string]float64
	// EarningsByMonth maps "YYYY-MM" of the issue date to paid amounts.
	EarningsByMonth map[string]float64
	// TopClients is empty unless the caller sees every record.
	TopClients []ClientTotal
}

// Report builds the report view for s.
func Report(clients []domain.Client, projects []domain.Project, entries []domain.TimeEntry, invoices []domain.Invoice, s scope.Scope) ReportView {
	idx := domain.IndexProjects(projects)

	view := ReportView{
		HoursByProject:  make(map[string]float64),
		EarningsByMonth: make(map[string]float64),
		TopClients:      []ClientTotal{},
	}

	for _, e := range entries {
		if !s.TimeEntry(e, idx) {
			continue
		}
		view.HoursByProject[idx[e.ProjectID].Name] += e.Hours
	}

	for _, inv := range invoices {
		if inv.Status != domain.InvoicePaid || !s.Invoice(inv, idx) {
			continue
		}
		view.EarningsByMonth[inv.IssuedDate.Format(MonthKeyLayout)] += inv.Amount
	}

	if s.SeesAll() {
		view.TopClients = TopClients(clients, projects, invoices)
	}
	return view
}

// TopClients ranks clients by paid invoice total across all of their
// projects, highest first, ties broken by name. Clients with nothing paid are
// left out.
func TopClients(clients []domain.Client, projects []domain.Project, invoices []domain.Invoice) []ClientTotal {
	idx := domain.IndexProjects(projects)

	paid := make(map[string]float64)
	for _, inv := range invoices {
		if inv.Status != domain.InvoicePaid {
			continue
		}
		p, ok := idx[inv.ProjectID]
		if !ok {
			continue
		}
		paid[p.ClientID] += inv.Amount
	}

	ranking := make([]ClientTotal, 0, len(clients))
	for _, c := range clients {
		total := paid[c.ID]
		if total <= 0 {
			continue
		}
		ranking = append(ranking, ClientTotal{ClientID: c.ID, Name: c.Name, Total: total})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Total != ranking[j].Total {
			return ranking[i].Total > ranking[j].Total
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking
}
