package interfaces

import (
	"context"
	"zap_shift/internal/domain/entities"
)

// IRiderRepository abstracts persistence for Rider applications.

type IRiderRepository interface {
	Create(ctx context.Context, r entities.Rider) (entities.Rider, error)
	GetByID(ctx context.Context, id string) (entities.Rider, error)
	// ListByStatus returns every rider when status is empty.
	ListByStatus(ctx context.Context, status entities.RiderStatus) ([]entities.Rider, error)
	UpdateStatus(ctx context.Context, id string, status entities.RiderStatus) (entities.Rider, error)
}
