package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

// DefaultSeedPassword is the password of every seeded user.
const DefaultSeedPassword = "password"

var seedDescriptions = []string{"Frontend dev", "Meeting", "Backend logic", "Bug fixing", "Design review"}

// Seeder fills an empty store with demo data.
type Seeder struct {
	store ports.Store
	rnd   *rand.Rand
	now   func() time.Time
	log   zerolog.Logger
}

// NewSeeder returns a Seeder. rnd drives the generated time entries; pass nil
// for a time-seeded source.
func NewSeeder(store ports.Store, rnd *rand.Rand, log zerolog.Logger) *Seeder {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Seeder{store: store, rnd: rnd, now: time.Now, log: log}
}

// Seed populates the store unless it already holds users. It reports whether
// anything was written.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	n, err := s.store.Users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		s.log.Debug().Int64("users", n).Msg("store already seeded")
		return false, nil
	}

	today := domain.Day(s.now().UTC())

	clients := []*domain.Client{
		{Name: "TechCorp", Email: "contact@techcorp.com"},
		{Name: "DesignStudio", Email: "hello@designstudio.com"},
		{Name: "StartupInc", Email: "founder@startupinc.com"},
	}
	for _, c := range clients {
		if err := s.store.Clients.Create(ctx, c); err != nil {
			return false, fmt.Errorf("seed: client %s: %w", c.Name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultSeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	users := []*domain.User{
		{Username: "admin", Role: domain.RoleAdmin},
		{Username: "freelancer", Role: domain.RoleFreelancer},
		{Username: "client", Role: domain.RoleClient, ClientID: clients[0].ID},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = s.now().UTC()
		if _, err := s.store.Users.Create(ctx, u); err != nil {
			return false, fmt.Errorf("seed: user %s: %w", u.Username, err)
		}
	}

	projects := []*domain.Project{
		{Name: "Website Redesign", Status: domain.ProjectActive, Deadline: today.AddDate(0, 0, 30), Budget: 5000, ClientID: clients[0].ID},
		{Name: "Mobile App MVP", Status: domain.ProjectActive, Deadline: today.AddDate(0, 0, 60), Budget: 12000, ClientID: clients[2].ID},
		{Name: "Logo Design", Status: domain.ProjectCompleted, Deadline: today.AddDate(0, 0, -10), Budget: 800, ClientID: clients[1].ID},
		{Name: "SEO Audit", Status: domain.ProjectOnHold, Deadline: today.AddDate(0, 0, 5), Budget: 1500, ClientID: clients[0].ID},
		{Name: "Maintenance", Status: domain.ProjectActive, Deadline: today.AddDate(0, 0, 365), Budget: 2000, ClientID: clients[1].ID},
	}
	for _, p := range projects {
		if err := s.store.Projects.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seed: project %s: %w", p.Name, err)
		}
	}

	for i := 0; i < 20; i++ {
		e := &domain.TimeEntry{
			ProjectID:   projects[s.rnd.IntN(len(projects))].ID,
			Date:        today.AddDate(0, 0, -s.rnd.IntN(31)),
			Hours:       float64(1 + s.rnd.IntN(8)),
			Description: seedDescriptions[s.rnd.IntN(len(seedDescriptions))],
		}
		if err := s.store.TimeEntries.Append(ctx, e); err != nil {
			return false, fmt.Errorf("seed: time entry: %w", err)
		}
	}

	invoices := []*domain.Invoice{
		{ProjectID: projects[2].ID, Amount: 800, IssuedDate: today.AddDate(0, 0, -12), Status: domain.InvoicePaid},
		{ProjectID: projects[0].ID, Amount: 2500, IssuedDate: today.AddDate(0, 0, -5), Status: domain.InvoiceSent},
		{ProjectID: projects[1].ID, Amount: 4000, IssuedDate: today, Status: domain.InvoiceDraft},
		{ProjectID: projects[3].ID, Amount: 1500, IssuedDate: today.AddDate(0, 0, -20), Status: domain.InvoicePaid},
	}
	for _, inv := range invoices {
		if err := s.store.Invoices.Create(ctx, inv); err != nil {
			return false, fmt.Errorf("seed: invoice: %w", err)
		}
	}

	s.log.Info().
		Int("clients", len(clients)).
		Int("projects", len(projects)).
		Int("invoices", len(invoices)).
		Msg("database seeded")
	return true, nil
}
