package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUserRole = errors.New("invalid user role")
	ErrInvalidEmail    = errors.New("invalid email")
)

// IUserUseCase exposes account registration and role management.
//
// Register is create-if-absent: the second call for the same email returns
// the stored user with created=false.
type IUserUseCase interface {
	Register(ctx context.Context, u entities.User) (user entities.User, created bool, err error)
	GetRole(ctx context.Context, email string) (entities.UserRole, error)
	List(ctx context.Context) ([]entities.User, error)
	UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Register(ctx context.Context, user entities.User) (entities.User, bool, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" {
		return entities.User{}, false, ErrInvalidEmail
	}

	existing, err := u.repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return entities.User{}, false, upstreamError("load user", err)
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	user.ID = uuid.NewString()
	user.Role = entities.UserRoleUser
	user.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, user)
	if err != nil {
		return entities.User{}, false, upstreamError("create user", err)
	}
	return created, true, nil
}

// GetRole answers "user" for unknown emails.
func (u *UserUseCase) GetRole(ctx context.Context, email string) (entities.UserRole, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrInvalidEmail
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", upstreamError("load user", err)
	}
	if user.ID == "" || user.Role == "" {
		return entities.UserRoleUser, nil
	}
	return user.Role, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, upstreamError("list users", err)
	}
	return users, nil
}

func (u *UserUseCase) UpdateRole(ctx context.Context, id string, role entities.UserRole) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if !role.Valid() {
		return entities.User{}, ErrInvalidUserRole
	}

	updated, err := u.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return entities.User{}, upstreamError("update user role", err)
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}
