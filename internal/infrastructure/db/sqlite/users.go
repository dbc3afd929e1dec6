package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *sql.DB
}

// Create inserts a new user. The username must be unused.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	var clientID sql.NullString
	if created.ClientID != "" {
		clientID = sql.NullString{String: created.ClientID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash, role, client_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		created.ID, created.Username, created.PasswordHash, string(created.Role), clientID, created.CreatedAt.Unix(),
	)
	if isUniqueViolation(err) {
		return nil, domain.ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = created.ID
	return &created, nil
}

// FindByUsername retrieves a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var (
		u         domain.User
		role      string
		clientID  sql.NullString
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, role, client_id, created_at FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &clientID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	u.Role = domain.Role(role)
	u.ClientID = clientID.String
	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &u, nil
}

// Count returns the number of users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
