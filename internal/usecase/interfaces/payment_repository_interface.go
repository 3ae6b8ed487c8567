package interfaces

import (
	"context"
	"errors"
	"zap_shift/internal/domain/entities"
)

// ErrPaymentAlreadyRecorded is returned by Create when a payment with the
// same transaction id exists. Stores enforce it with a key or unique index.
var ErrPaymentAlreadyRecorded = errors.New("payment already recorded for transaction")

// IPaymentRepository abstracts persistence for Payment.
//
// A zero Payment (TransactionID == "") means "not found".
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.InsertResult, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error)
	// ListByCustomerEmail returns payments newest first (paidAt descending).
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.Payment, error)
}
