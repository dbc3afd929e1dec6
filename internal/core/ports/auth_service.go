package ports

import (
	"context"

	"github.com/freelancehub/dashboard/internal/core/domain"
)

// RegisterInput carries the fields needed to create a user. ClientName links a
// client-role user to an existing client.
type RegisterInput struct {
	Username   string
	Password   string
	Role       string
	ClientName string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
