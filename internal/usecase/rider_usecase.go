package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRiderNotFound      = errors.New("rider not found")
	ErrInvalidRiderID     = errors.New("invalid rider id")
	ErrInvalidRider       = errors.New("invalid rider application")
	ErrInvalidRiderStatus = errors.New("invalid rider status")
)

// IRiderUseCase exposes rider onboarding: applications are created pending
// and an admin approves or rejects them.
type IRiderUseCase interface {
	Apply(ctx context.Context, r entities.Rider) (entities.Rider, error)
	List(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error)
	UpdateStatus(ctx context.Context, id string, status entities.RiderStatus) (entities.Rider, error)
}

type RiderUseCase struct {
	repo   interfaces.IRiderRepository
	users  interfaces.IUserRepository
	logger *zap.Logger
}

var _ IRiderUseCase = (*RiderUseCase)(nil)

func NewRiderUseCase(repo interfaces.IRiderRepository, users interfaces.IUserRepository, logger *zap.Logger) *RiderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RiderUseCase{repo: repo, users: users, logger: logger.Named("riders")}
}

func (u *RiderUseCase) Apply(ctx context.Context, r entities.Rider) (entities.Rider, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" || r.Email == "" {
		return entities.Rider{}, ErrInvalidRider
	}

	r.ID = uuid.NewString()
	r.Status = entities.RiderStatusPending
	r.CreatedAt = time.Now().UTC()
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Rider{}, upstreamError("create rider", err)
	}
	return created, nil
}

func (u *RiderUseCase) List(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidRiderStatus
	}
	riders, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, upstreamError("list riders", err)
	}
	return riders, nil
}

// UpdateStatus approves or rejects an application. Approval promotes the
// user with the rider's email to the rider role.
func (u *RiderUseCase) UpdateStatus(ctx context.Context, id string, status entities.RiderStatus) (entities.Rider, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rider{}, ErrInvalidRiderID
	}
	if status != entities.RiderStatusApproved && status != entities.RiderStatusRejected {
		return entities.Rider{}, ErrInvalidRiderStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Rider{}, upstreamError("update rider status", err)
	}
	if updated.ID == "" {
		return entities.Rider{}, ErrRiderNotFound
	}
	if status != entities.RiderStatusApproved {
		return updated, nil
	}

	user, err := u.users.GetByEmail(ctx, updated.Email)
	if err != nil {
		return entities.Rider{}, upstreamError("load rider user", err)
	}
	if user.ID == "" {
		u.logger.Warn("approved rider has no user account", zap.String("rider_id", updated.ID), zap.String("email", updated.Email))
		return updated, nil
	}
	if user.Role == entities.UserRoleAdmin {
		return updated, nil
	}
	if _, err := u.users.UpdateRole(ctx, user.ID, entities.UserRoleRider); err != nil {
		return entities.Rider{}, upstreamError("promote rider user", err)
	}
	return updated, nil
}
