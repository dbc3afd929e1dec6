package handler

import (
	"github.com/freelancehub/dashboard/internal/core/aggregate"
	"github.com/freelancehub/dashboard/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type meResponse struct {
	userResponse
	// Scope is the resolved visibility: admin, freelancer, client or none.
	Scope    string `json:"scope"`
	CanWrite bool   `json:"can_write"`
}

// --- Dashboard ---

type dashboardResponse struct {
	Date                string  `json:"date"`
	ActiveProjectCount  int     `json:"active_project_count"`
	MonthHoursTotal     float64 `json:"month_hours_total"`
	PendingInvoiceCount int     `json:"pending_invoice_count"`
	PaidTotal           float64 `json:"paid_total"`
	// PaidLabel is "total_spent" for clients and "total_earned" otherwise.
	PaidLabel string `json:"paid_label"`
}

// --- Time entries ---

type createTimeEntryRequest struct {
	ProjectID   string  `json:"project_id"  validate:"required"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours"       validate:"gt=0"`
	Description string  `json:"description" validate:"max=500"`
}

type timeEntryResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name,omitempty"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
}

type projectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type projectTotal struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
}

type timeLogResponse struct {
	Entries                []timeEntryResponse `json:"entries"`
	RunningTotalPerProject []projectTotal      `json:"running_total_per_project"`
	AddableProjects        []projectRef        `json:"addable_projects"`
	CanRecord              bool                `json:"can_record"`
}

// --- Reports ---

type clientTotalResponse struct {
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Total    float64 `json:"total"`
}

type reportResponse struct {
	HoursByProject  map[string]float64    `json:"hours_by_project"`
	EarningsByMonth map[string]float64    `json:"earnings_by_month"`
	TopClients      []clientTotalResponse `json:"top_clients"`
}

// --- Listings ---

type projectResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Status     string  `json:"status"`
	Deadline   string  `json:"deadline"`
	Budget     float64 `json:"budget"`
	ClientID   string  `json:"client_id"`
	ClientName string  `json:"client_name"`
}

type invoiceResponse struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Amount      float64 `json:"amount"`
	IssuedDate  string  `json:"issued_date"`
	Status      string  `json:"status"`
}

// --- Mappers ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Role: string(u.Role), ClientID: u.ClientID}
}

func toTimeEntryResponse(e domain.TimeEntry, projectName string) timeEntryResponse {
	return timeEntryResponse{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		ProjectName: projectName,
		Date:        e.Date.Format(domain.DateLayout),
		Hours:       e.Hours,
		Description: e.Description,
	}
}

// toTimeLogResponse flattens the view. Totals follow the order in which each
// project first appears in the listing.
func toTimeLogResponse(v aggregate.TimeLogView) timeLogResponse {
	resp := timeLogResponse{
		Entries:                make([]timeEntryResponse, 0, len(v.Entries)),
		RunningTotalPerProject: make([]projectTotal, 0, len(v.RunningTotalPerProject)),
		AddableProjects:        make([]projectRef, 0, len(v.AddableProjects)),
		CanRecord:              v.CanRecord,
	}

	seen := make(map[string]bool, len(v.RunningTotalPerProject))
	for _, e := range v.Entries {
		resp.Entries = append(resp.Entries, toTimeEntryResponse(e, v.ProjectNames[e.ProjectID]))
		if !seen[e.ProjectID] {
			seen[e.ProjectID] = true
			resp.RunningTotalPerProject = append(resp.RunningTotalPerProject, projectTotal{
				ProjectID:   e.ProjectID,
				ProjectName: v.ProjectNames[e.ProjectID],
				Hours:       v.RunningTotalPerProject[e.ProjectID],
			})
		}
	}
	for _, p := range v.AddableProjects {
		resp.AddableProjects = append(resp.AddableProjects, projectRef{ID: p.ID, Name: p.Name})
	}
	return resp
}

func toReportResponse(v aggregate.ReportView) reportResponse {
	resp := reportResponse{
		HoursByProject:  v.HoursByProject,
		EarningsByMonth: v.EarningsByMonth,
		TopClients:      make([]clientTotalResponse, 0, len(v.TopClients)),
	}
	for _, ct := range v.TopClients {
		resp.TopClients = append(resp.TopClients, clientTotalResponse{ClientID: ct.ClientID, Name: ct.Name, Total: ct.Total})
	}
	return resp
}

func toProjectResponse(r aggregate.ProjectRow) projectResponse {
	return projectResponse{
		ID:         r.ID,
		Name:       r.Name,
		Status:     string(r.Status),
		Deadline:   r.Deadline.Format(domain.DateLayout),
		Budget:     r.Budget,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
	}
}

func toInvoiceResponse(r aggregate.InvoiceRow) invoiceResponse {
	return invoiceResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		ProjectName: r.ProjectName,
		Amount:      r.Amount,
		IssuedDate:  r.IssuedDate.Format(domain.DateLayout),
		Status:      string(r.Status),
	}
}
