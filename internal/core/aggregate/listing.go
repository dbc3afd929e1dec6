package aggregate

import (
	"sort"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/scope"
)

// ProjectRow is a visible project with its owner's name.
type ProjectRow struct {
	domain.Project
	ClientName string
}

// InvoiceRow is a visible invoice with its project's name.
type InvoiceRow struct {
	domain.Invoice
	ProjectName string
}

// Projects lists the projects visible to s in input order.
func Projects(clients []domain.Client, projects []domain.Project, s scope.Scope) []ProjectRow {
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range s.VisibleProjects(projects) {
		rows = append(rows, ProjectRow{Project: p, ClientName: names[p.ClientID]})
	}
	return rows
}

// Invoices lists the invoices visible to s, most recently issued first.
func Invoices(projects []domain.Project, invoices []domain.Invoice, s scope.Scope) []InvoiceRow {
	idx := domain.IndexProjects(projects)

	rows := make([]InvoiceRow, 0, len(invoices))
	for _, inv := range s.VisibleInvoices(invoices, idx) {
		rows = append(rows, InvoiceRow{Invoice: inv, ProjectName: idx[inv.ProjectID].Name})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].IssuedDate.After(rows[j].IssuedDate)
	})
	return rows
}
