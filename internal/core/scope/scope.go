// Package scope decides which domain records a caller may see.
//
// A Scope is built from the caller's role and linked client. Admins and the
// freelancer see everything (the system models a single freelancer who does
// all the work); a client sees only the projects it owns, and time entries and
// invoices follow their project. The zero Scope denies every record.
package scope

import (
	"fmt"

	"github.com/freelancehub/dashboard/internal/core/domain"
)

type kind uint8

const (
	kindNone kind = iota
	kindAdmin
	kindFreelancer
	kindClient
)

// Scope is a visibility predicate over projects and their children.
type Scope struct {
	kind     kind
	clientID string
}

// Admin returns the see-all scope of an administrator.
func Admin() Scope { return Scope{kind: kindAdmin} }

// Freelancer returns the see-all scope of the freelancer.
func Freelancer() Scope { return Scope{kind: kindFreelancer} }

// Client returns a scope limited to projects owned by clientID.
// An empty clientID yields the deny-all scope.
func Client(clientID string) Scope {
	if clientID == "" {
		return Scope{}
	}
	return Scope{kind: kindClient, clientID: clientID}
}

// None returns the deny-all scope.
func None() Scope { return Scope{} }

// Resolve maps a role and optional client reference to a Scope. A client role
// without a client reference, or an unknown role, fails closed: the returned
// scope denies everything and the error wraps domain.ErrScopeIntegrity.
func Resolve(role domain.Role, clientID string) (Scope, error) {
	switch role {
	case domain.RoleAdmin:
		return Admin(), nil
	case domain.RoleFreelancer:
		return Freelancer(), nil
	case domain.RoleClient:
		if clientID == "" {
			return None(), domain.ErrScopeIntegrity
		}
		return Client(clientID), nil
	default:
		return None(), fmt.Errorf("%w: unknown role %q", domain.ErrScopeIntegrity, role)
	}
}

// ForActor resolves the scope of an authenticated actor.
func ForActor(a domain.Actor) (Scope, error) {
	return Resolve(a.Role, a.ClientID)
}

// SeesAll reports whether every record is visible.
func (s Scope) SeesAll() bool {
	return s.kind == kindAdmin || s.kind == kindFreelancer
}

// CanWrite reports whether the scope may record work.
func (s Scope) CanWrite() bool {
	return s.SeesAll()
}

// ClientID returns the client the scope is limited to, if any.
func (s Scope) ClientID() string {
	return s.clientID
}

// Role returns the role label of the scope, "none" for deny-all.
func (s Scope) Role() string {
	switch s.kind {
	case kindAdmin:
		return string(domain.RoleAdmin)
	case kindFreelancer:
		return string(domain.RoleFreelancer)
	case kindClient:
		return string(domain.RoleClient)
	}
	return "none"
}

// Project reports whether p is visible.
func (s Scope) Project(p domain.Project) bool {
	switch s.kind {
	case kindAdmin, kindFreelancer:
		return true
	case kindClient:
		return p.ClientID == s.clientID
	}
	return false
}

// TimeEntry reports whether e is visible. An entry whose project is not in
// projects is never visible.
func (s Scope) TimeEntry(e domain.TimeEntry, projects map[string]domain.Project) bool {
	p, ok := projects[e.ProjectID]
	return ok && s.Project(p)
}

// Invoice reports whether inv is visible, via its project.
func (s Scope) Invoice(inv domain.Invoice, projects map[string]domain.Project) bool {
	p, ok := projects[inv.ProjectID]
	return ok && s.Project(p)
}
