package interfaces

import (
	"context"
	"zap_shift/internal/domain/entities"
)

// IUserRepository abstracts persistence for User.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error)
}
