package domain

import "time"

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Client is a customer that owns projects.
type Client struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Project is a unit of work owned by exactly one client.
type Project struct {
	ID       string        `json:"id" bson:"_id,omitempty"`
	Name     string        `json:"name" bson:"name"`
	Status   ProjectStatus `json:"status" bson:"status"`
	Deadline time.Time     `json:"deadline" bson:"deadline"`
	Budget   float64       `json:"budget" bson:"budget"`
	ClientID string        `json:"client_id" bson:"client_id"`
}

// Day truncates t to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// IndexProjects maps project id to project.
func IndexProjects(projects []Project) map[string]Project {
	idx := make(map[string]Project, len(projects))
	for _, p := range projects {
		idx[p.ID] = p
	}
	return idx
}
