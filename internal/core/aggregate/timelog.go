package aggregate

import (
	"sort"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/scope"
)

// TimeLogView is the time-log listing with lifetime totals.
type TimeLogView struct {
	// Entries are the visible entries, newest date first. Entries sharing a
	// date keep their input order.
	Entries []domain.TimeEntry
	// RunningTotalPerProject maps project id to the lifetime hours of the
	// visible entries for that project.
	RunningTotalPerProject map[string]float64
	// ProjectNames maps each visible project id to its display name.
	ProjectNames map[string]string
	// AddableProjects lists active projects when the caller may record time.
	AddableProjects []domain.Project
	CanRecord       bool
}

// TimeLog builds the time-log view for s. Totals are recomputed on each call.
func TimeLog(projects []domain.Project, entries []domain.TimeEntry, s scope.Scope) TimeLogView {
	idx := domain.IndexProjects(projects)

	visible := s.VisibleTimeEntries(entries, idx)
	sort.SliceStable(visible, func(i, j int) bool {
		return domain.Day(visible[i].Date).After(domain.Day(visible[j].Date))
	})

	totals := make(map[string]float64)
	for _, e := range visible {
		totals[e.ProjectID] += e.Hours
	}

	names := make(map[string]string)
	for _, p := range projects {
		if s.Project(p) {
			names[p.ID] = p.Name
		}
	}

	view := TimeLogView{
		Entries:                visible,
		RunningTotalPerProject: totals,
		ProjectNames:           names,
		AddableProjects:        []domain.Project{},
		CanRecord:              s.CanWrite(),
	}
	if s.CanWrite() {
		for _, p := range projects {
			if p.Status == domain.ProjectActive {
				view.AddableProjects = append(view.AddableProjects, p)
			}
		}
	}
	return view
}
