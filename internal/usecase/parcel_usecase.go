package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrParcelNotFound      = errors.New("parcel not found")
	ErrParcelAlreadyPaid   = errors.New("parcel already paid")
	ErrInvalidParcelID     = errors.New("invalid parcel id")
	ErrInvalidParcel       = errors.New("invalid parcel")
	ErrInvalidParcelEmail  = errors.New("invalid sender email")
	ErrParcelEmailMismatch = errors.New("token email does not match sender email")
)

// IParcelUseCase exposes parcel booking operations.
type IParcelUseCase interface {
	// Create books a parcel for identityEmail. An empty sender email defaults
	// to identityEmail; any other sender is refused.
	Create(ctx context.Context, p entities.Parcel, identityEmail string) (entities.Parcel, error)
	GetByID(ctx context.Context, id string) (entities.Parcel, error)
	ListBySenderEmail(ctx context.Context, requestedEmail string, identityEmail string) ([]entities.Parcel, error)
	Delete(ctx context.Context, id string) (entities.DeleteResult, error)
}

type ParcelUseCase struct {
	repo interfaces.IParcelRepository
}

var _ IParcelUseCase = (*ParcelUseCase)(nil)

func NewParcelUseCase(repo interfaces.IParcelRepository) *ParcelUseCase {
	return &ParcelUseCase{repo: repo}
}

func (u *ParcelUseCase) Create(ctx context.Context, p entities.Parcel, identityEmail string) (entities.Parcel, error) {
	identityEmail = strings.TrimSpace(identityEmail)
	p.ParcelName = strings.TrimSpace(p.ParcelName)
	p.SenderEmail = strings.TrimSpace(p.SenderEmail)
	if p.SenderEmail == "" {
		p.SenderEmail = identityEmail
	}
	if p.ParcelName == "" || p.SenderEmail == "" || p.Cost <= 0 {
		return entities.Parcel{}, ErrInvalidParcel
	}
	if !strings.EqualFold(p.SenderEmail, identityEmail) {
		return entities.Parcel{}, ErrParcelEmailMismatch
	}
	p.SenderEmail = strings.ToLower(p.SenderEmail)
	if p.ParcelType != "" && p.ParcelType != entities.ParcelTypeDocument && p.ParcelType != entities.ParcelTypeNonDocument {
		return entities.Parcel{}, ErrInvalidParcel
	}

	p.ID = uuid.NewString()
	p.DeliveryStatus = entities.DeliveryStatusCreated
	p.TrackingID = ""
	p.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Parcel{}, upstreamError("create parcel", err)
	}
	return created, nil
}

func (u *ParcelUseCase) GetByID(ctx context.Context, id string) (entities.Parcel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Parcel{}, ErrInvalidParcelID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Parcel{}, upstreamError("load parcel", err)
	}
	if p.ID == "" {
		return entities.Parcel{}, ErrParcelNotFound
	}
	return p, nil
}

func (u *ParcelUseCase) ListBySenderEmail(ctx context.Context, requestedEmail string, identityEmail string) ([]entities.Parcel, error) {
	requestedEmail = strings.TrimSpace(requestedEmail)
	if requestedEmail == "" {
		return nil, ErrInvalidParcelEmail
	}
	if !strings.EqualFold(requestedEmail, strings.TrimSpace(identityEmail)) {
		return nil, ErrParcelEmailMismatch
	}

	parcels, err := u.repo.ListBySenderEmail(ctx, strings.ToLower(requestedEmail))
	if err != nil {
		return nil, upstreamError("list parcels", err)
	}
	sort.SliceStable(parcels, func(i, j int) bool {
		return parcels[i].CreatedAt.After(parcels[j].CreatedAt)
	})
	return parcels, nil
}

// Delete removes an unpaid parcel. Paid parcels are kept because a payment
// record references them.
func (u *ParcelUseCase) Delete(ctx context.Context, id string) (entities.DeleteResult, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.DeleteResult{}, err
	}
	if p.IsPaid() {
		return entities.DeleteResult{}, ErrParcelAlreadyPaid
	}

	res, err := u.repo.Delete(ctx, p.ID)
	if err != nil {
		return entities.DeleteResult{}, upstreamError("delete parcel", err)
	}
	return res, nil
}
