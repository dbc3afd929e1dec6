package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

// memStore is an in-memory implementation of every repository port. Reads
// return copies so tests can detect unintended writes.
type memStore struct {
	clients  []domain.Client
	projects []domain.Project
	entries  []domain.TimeEntry
	invoices []domain.Invoice
	users    []domain.User

	listErr   error
	appendErr error
	seq       int
	// mu guards entries and seq for concurrent writers.
	mu sync.Mutex
}

func newMemStore() *memStore { return &memStore{} }

func (m *memStore) store() ports.Store {
	return ports.Store{
		Clients:     memClients{m},
		Projects:    memProjects{m},
		TimeEntries: memEntries{m},
		Invoices:    memInvoices{m},
		Users:       memUsers{m},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

type memClients struct{ m *memStore }

func (r memClients) List(context.Context) ([]domain.Client, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return append([]domain.Client(nil), r.m.clients...), nil
}

func (r memClients) FindByName(_ context.Context, name string) (*domain.Client, error) {
	for _, c := range r.m.clients {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r memClients) Create(_ context.Context, c *domain.Client) error {
	if c.ID == "" {
		c.ID = r.m.nextID("client")
	}
	r.m.clients = append(r.m.clients, *c)
	return nil
}

type memProjects struct{ m *memStore }

func (r memProjects) List(context.Context) ([]domain.Project, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return append([]domain.Project(nil), r.m.projects...), nil
}

func (r memProjects) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.m.projects {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r memProjects) Create(_ context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = r.m.nextID("project")
	}
	r.m.projects = append(r.m.projects, *p)
	return nil
}

type memEntries struct{ m *memStore }

func (r memEntries) List(context.Context) ([]domain.TimeEntry, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]domain.TimeEntry(nil), r.m.entries...), nil
}

func (r memEntries) Append(_ context.Context, e *domain.TimeEntry) error {
	if r.m.appendErr != nil {
		return r.m.appendErr
	}
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	e.ID = r.m.nextID("entry")
	r.m.entries = append(r.m.entries, *e)
	return nil
}

func (r memEntries) FindByID(_ context.Context, id string) (*domain.TimeEntry, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, e := range r.m.entries {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, domain.ErrTimeEntryNotFound
}

type memInvoices struct{ m *memStore }

func (r memInvoices) List(context.Context) ([]domain.Invoice, error) {
	if r.m.listErr != nil {
		return nil, r.m.listErr
	}
	return append([]domain.Invoice(nil), r.m.invoices...), nil
}

func (r memInvoices) Create(_ context.Context, inv *domain.Invoice) error {
	if inv.ID == "" {
		inv.ID = r.m.nextID("invoice")
	}
	r.m.invoices = append(r.m.invoices, *inv)
	return nil
}

type memUsers struct{ m *memStore }

func (r memUsers) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.m.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	clone := *u
	if clone.ID == "" {
		clone.ID = r.m.nextID("user")
	}
	u.ID = clone.ID
	r.m.users = append(r.m.users, clone)
	return &clone, nil
}

func (r memUsers) Count(context.Context) (int64, error) {
	return int64(len(r.m.users)), nil
}

const memPending = "pending"

type memIdempotency struct {
	mu         sync.Mutex
	keys       map[string]string
	reserveErr error
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{keys: make(map[string]string)}
}

func (s *memIdempotency) Reserve(_ context.Context, key string) (string, bool, error) {
	if s.reserveErr != nil {
		return "", false, s.reserveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.keys[key]
	if !ok {
		s.keys[key] = memPending
		return "", true, nil
	}
	if id == memPending {
		return "", false, nil
	}
	return id, false, nil
}

func (s *memIdempotency) Complete(_ context.Context, key, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = entryID
	return nil
}

func (s *memIdempotency) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}

func (s *memIdempotency) value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.keys[key]
	return id, ok
}

var errStoreDown = errors.New("store unavailable")
