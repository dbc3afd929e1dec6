package scope

import "github.com/freelancehub/dashboard/internal/core/domain"

// VisibleProjects returns the projects s can see, in input order.
func (s Scope) VisibleProjects(projects []domain.Project) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if s.Project(p) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleTimeEntries returns the entries s can see, in input order.
func (s Scope) VisibleTimeEntries(entries []domain.TimeEntry, projects map[string]domain.Project) []domain.TimeEntry {
	out := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if s.TimeEntry(e, projects) {
			out = append(out, e)
		}
	}
	return out
}

// VisibleInvoices returns the invoices s can see, in input order.
func (s Scope) VisibleInvoices(invoices []domain.Invoice, projects map[string]domain.Project) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if s.Invoice(inv, projects) {
			out = append(out, inv)
		}
	}
	return out
}
