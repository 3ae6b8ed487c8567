package interfaces

import (
	"context"
	"errors"
	"zap_shift/internal/domain/entities"
)

// ErrTrackingIDConflict is returned by MarkPaid when the parcel already
// carries a different tracking id. The stored id is never replaced.
var ErrTrackingIDConflict = errors.New("parcel already has a different tracking id")

// IParcelRepository abstracts persistence for Parcel.
//
// A zero Parcel (ID == "") means "not found".
type IParcelRepository interface {
	Create(ctx context.Context, p entities.Parcel) (entities.Parcel, error)
	GetByID(ctx context.Context, id string) (entities.Parcel, error)
	ListBySenderEmail(ctx context.Context, email string) ([]entities.Parcel, error)
	Delete(ctx context.Context, id string) (entities.DeleteResult, error)
	// MarkPaid sets deliveryStatus=Paid and the tracking id on an existing parcel
	// whose tracking id is unset or already equal to trackingID.
	// A missing parcel yields a zero UpdateResult and no error; a parcel holding
	// another tracking id yields ErrTrackingIDConflict.
	MarkPaid(ctx context.Context, id string, trackingID string) (entities.UpdateResult, error)
}
