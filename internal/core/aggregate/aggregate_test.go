package aggregate

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/scope"
)

func day(s string) time.Time {
	t, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

var refDate = day("2026-10-14")

var fixtureClients = []domain.Client{
	{ID: "c1", Name: "TechCorp", Email: "contact@techcorp.com"},
	{ID: "c2", Name: "DesignStudio", Email: "hello@designstudio.com"},
	{ID: "c3", Name: "StartupInc", Email: "founder@startupinc.com"},
}

var fixtureProjects = []domain.Project{
	{ID: "p1", Name: "Website Redesign", Status: domain.ProjectActive, Budget: 5000, ClientID: "c1"},
	{ID: "p2", Name: "Mobile App MVP", Status: domain.ProjectActive, Budget: 12000, ClientID: "c3"},
	{ID: "p3", Name: "Logo Design", Status: domain.ProjectCompleted, Budget: 800, ClientID: "c2"},
	{ID: "p4", Name: "SEO Audit", Status: domain.ProjectOnHold, Budget: 1500, ClientID: "c1"},
	{ID: "p5", Name: "Maintenance", Status: domain.ProjectActive, Budget: 2000, ClientID: "c2"},
}

var fixtureEntries = []domain.TimeEntry{
	{ID: "t1", ProjectID: "p1", Date: day("2026-10-02"), Hours: 3, Description: "Frontend dev"},
	{ID: "t2", ProjectID: "p2", Date: day("2026-10-10"), Hours: 5, Description: "Backend logic"},
	{ID: "t3", ProjectID: "p5", Date: day("2026-09-28"), Hours: 2, Description: "Bug fixing"},
	{ID: "t4", ProjectID: "p3", Date: day("2026-10-10"), Hours: 1.5, Description: "Design review"},
	{ID: "t5", ProjectID: "p4", Date: day("2026-09-15"), Hours: 4, Description: "Meeting"},
}

var fixtureInvoices = []domain.Invoice{
	{ID: "i1", ProjectID: "p3", Amount: 800, IssuedDate: day("2026-10-02"), Status: domain.InvoicePaid},
	{ID: "i2", ProjectID: "p1", Amount: 2500, IssuedDate: day("2026-10-09"), Status: domain.InvoiceSent},
	{ID: "i3", ProjectID: "p2", Amount: 4000, IssuedDate: day("2026-10-14"), Status: domain.InvoiceDraft},
	{ID: "i4", ProjectID: "p5", Amount: 1500, IssuedDate: day("2026-09-24"), Status: domain.InvoicePaid},
	{ID: "i5", ProjectID: "p4", Amount: 1500, IssuedDate: day("2026-09-24"), Status: domain.InvoicePaid},
}

func approx(a, b float64) bool { return math.Abs(a-b) < 0.0001 }

func TestDashboard(t *testing.T) {
	tests := []struct {
		name        string
		scope       scope.Scope
		wantActive  int
		wantHours   float64
		wantPending int
		wantPaid    float64
	}{
		{"admin sees all", scope.Admin(), 3, 9.5, 2, 3800},
		{"freelancer sees all", scope.Freelancer(), 3, 9.5, 2, 3800},
		// TechCorp owns p1 (active) and p4 (on-hold); 3 hours logged this month on p1.
		{"techcorp client", scope.Client("c1"), 1, 3, 1, 1500},
		{"studio client", scope.Client("c2"), 1, 1.5, 0, 2300},
		{"deny all", scope.None(), 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dashboard(fixtureProjects, fixtureEntries, fixtureInvoices, tt.scope, refDate)
			if got.ActiveProjectCount != tt.wantActive {
				t.Errorf("ActiveProjectCount = %d, want %d", got.ActiveProjectCount, tt.wantActive)
			}
			if !approx(got.MonthHoursTotal, tt.wantHours) {
				t.Errorf("MonthHoursTotal = %v, want %v", got.MonthHoursTotal, tt.wantHours)
			}
			if got.PendingInvoiceCount != tt.wantPending {
				t.Errorf("PendingInvoiceCount = %d, want %d", got.PendingInvoiceCount, tt.wantPending)
			}
			if !approx(got.PaidTotal, tt.wantPaid) {
				t.Errorf("PaidTotal = %v, want %v", got.PaidTotal, tt.wantPaid)
			}
		})
	}
}

func TestDashboard_EmptyIsZero(t *testing.T) {
	got := Dashboard(nil, nil, nil, scope.Admin(), refDate)
	if got != (DashboardSummary{}) {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestDashboard_MonthWindow(t *testing.T) {
	projects := []domain.Project{{ID: "p1", ClientID: "c1", Status: domain.ProjectActive}}
	entries := []domain.TimeEntry{
		{ID: "a", ProjectID: "p1", Date: day("2026-09-30"), Hours: 10},
		{ID: "b", ProjectID: "p1", Date: day("2026-10-01"), Hours: 1.25},
		{ID: "c", ProjectID: "p1", Date: day("2026-10-31"), Hours: 1.01},
	}
	got := Dashboard(projects, entries, nil, scope.Admin(), refDate)
	if !approx(got.MonthHoursTotal, 2.26) {
		t.Fatalf("MonthHoursTotal = %v, want 2.26 (first of month inclusive)", got.MonthHoursTotal)
	}
	if got.MonthHoursDisplay() != 2.3 {
		t.Fatalf("MonthHoursDisplay = %v, want 2.3", got.MonthHoursDisplay())
	}
}

func TestTimeLog_OrderAndTotals(t *testing.T) {
	view := TimeLog(fixtureProjects, fixtureEntries, scope.Admin())

	var ids []string
	for _, e := range view.Entries {
		ids = append(ids, e.ID)
	}
	want := []string{"t2", "t4", "t1", "t3", "t5"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("entry order = %v, want %v", ids, want)
	}

	var listed, totalled float64
	for _, e := range view.Entries {
		listed += e.Hours
	}
	for _, h := range view.RunningTotalPerProject {
		totalled += h
	}
	if !approx(listed, totalled) {
		t.Fatalf("running totals %v disagree with listing %v", totalled, listed)
	}
	if !approx(view.RunningTotalPerProject["p1"], 3) {
		t.Errorf("p1 total = %v, want 3", view.RunningTotalPerProject["p1"])
	}
	if !view.CanRecord || len(view.AddableProjects) != 3 {
		t.Errorf("admin should get 3 addable projects, got %d", len(view.AddableProjects))
	}
	if view.ProjectNames["p2"] != "Mobile App MVP" {
		t.Errorf("ProjectNames[p2] = %q", view.ProjectNames["p2"])
	}
}

func TestTimeLog_ClientScope(t *testing.T) {
	view := TimeLog(fixtureProjects, fixtureEntries, scope.Client("c1"))

	if len(view.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(view.Entries))
	}
	idx := domain.IndexProjects(fixtureProjects)
	for _, e := range view.Entries {
		if idx[e.ProjectID].ClientID != "c1" {
			t.Errorf("entry %s belongs to %s", e.ID, idx[e.ProjectID].ClientID)
		}
	}
	for pid := range view.RunningTotalPerProject {
		if idx[pid].ClientID != "c1" {
			t.Errorf("running total leaked project %s", pid)
		}
	}
	if view.CanRecord || len(view.AddableProjects) != 0 {
		t.Errorf("client must not get a write affordance")
	}
}

func TestTimeLog_DoesNotMutateInput(t *testing.T) {
	entries := append([]domain.TimeEntry(nil), fixtureEntries...)
	_ = TimeLog(fixtureProjects, entries, scope.Admin())
	if !reflect.DeepEqual(entries, fixtureEntries) {
		t.Fatal("TimeLog reordered its input")
	}
}

func TestReport_Admin(t *testing.T) {
	view := Report(fixtureClients, fixtureProjects, fixtureEntries, fixtureInvoices, scope.Admin())

	if !approx(view.HoursByProject["Mobile App MVP"], 5) {
		t.Errorf("hours for Mobile App MVP = %v", view.HoursByProject["Mobile App MVP"])
	}
	if !approx(view.EarningsByMonth["2026-10"], 800) || !approx(view.EarningsByMonth["2026-09"], 3000) {
		t.Errorf("EarningsByMonth = %v", view.EarningsByMonth)
	}

	want := []ClientTotal{
		{ClientID: "c2", Name: "DesignStudio", Total: 2300},
		{ClientID: "c1", Name: "TechCorp", Total: 1500},
	}
	if !reflect.DeepEqual(view.TopClients, want) {
		t.Fatalf("TopClients = %+v, want %+v", view.TopClients, want)
	}
}

func TestReport_ClientNeverSeesTopClients(t *testing.T) {
	view := Report(fixtureClients, fixtureProjects, fixtureEntries, fixtureInvoices, scope.Client("c1"))

	if len(view.TopClients) != 0 {
		t.Fatalf("client got top clients: %+v", view.TopClients)
	}
	if len(view.EarningsByMonth) != 1 || !approx(view.EarningsByMonth["2026-09"], 1500) {
		t.Errorf("EarningsByMonth = %v", view.EarningsByMonth)
	}
	for name := range view.HoursByProject {
		if name != "Website Redesign" && name != "SEO Audit" {
			t.Errorf("client saw hours for %q", name)
		}
	}
}

func TestReport_HoursMergeBySharedName(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", Name: "Support", ClientID: "c1"},
		{ID: "b", Name: "Support", ClientID: "c2"},
	}
	entries := []domain.TimeEntry{
		{ID: "1", ProjectID: "a", Hours: 2},
		{ID: "2", ProjectID: "b", Hours: 3},
	}
	view := Report(nil, projects, entries, nil, scope.Admin())
	if len(view.HoursByProject) != 1 || !approx(view.HoursByProject["Support"], 5) {
		t.Fatalf("HoursByProject = %v, want merged Support=5", view.HoursByProject)
	}
}

func TestTopClients_TiesByName(t *testing.T) {
	clients := []domain.Client{{ID: "z", Name: "Zeta"}, {ID: "a", Name: "Alpha"}, {ID: "n", Name: "Nobody"}}
	projects := []domain.Project{{ID: "pz", ClientID: "z"}, {ID: "pa", ClientID: "a"}, {ID: "pn", ClientID: "n"}}
	invoices := []domain.Invoice{
		{ProjectID: "pz", Amount: 100, Status: domain.InvoicePaid},
		{ProjectID: "pa", Amount: 100, Status: domain.InvoicePaid},
		{ProjectID: "pn", Amount: 900, Status: domain.InvoiceSent},
	}
	got := TopClients(clients, projects, invoices)
	if len(got) != 2 || got[0].Name != "Alpha" || got[1].Name != "Zeta" {
		t.Fatalf("TopClients = %+v", got)
	}
}

func TestAggregates_Idempotent(t *testing.T) {
	encode := func() []byte {
		b, err := json.Marshal([]any{
			Dashboard(fixtureProjects, fixtureEntries, fixtureInvoices, scope.Admin(), refDate),
			TimeLog(fixtureProjects, fixtureEntries, scope.Admin()),
			Report(fixtureClients, fixtureProjects, fixtureEntries, fixtureInvoices, scope.Admin()),
		})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}
	if first, second := encode(), encode(); string(first) != string(second) {
		t.Fatal("repeated aggregation produced different output")
	}
}

func TestListings(t *testing.T) {
	rows := Projects(fixtureClients, fixtureProjects, scope.Client("c2"))
	if len(rows) != 2 || rows[0].ClientName != "DesignStudio" {
		t.Fatalf("Projects = %+v", rows)
	}

	invs := Invoices(fixtureProjects, fixtureInvoices, scope.Admin())
	if len(invs) != 5 || invs[0].ID != "i3" || invs[0].ProjectName != "Mobile App MVP" {
		t.Fatalf("Invoices[0] = %+v", invs[0])
	}
	if n := len(Invoices(fixtureProjects, fixtureInvoices, scope.Client("c3"))); n != 1 {
		t.Fatalf("StartupInc should see 1 invoice, got %d", n)
	}
}
