package interfaces

import (
	"context"
	"zap_shift/internal/domain/entities"
)

// ICheckoutGateway abstracts hosted-checkout providers (Stripe, Mercado Pago).
//
// CreateSession opens a checkout for one parcel and returns the provider
// session with its redirect URL. RetrieveSession reads the session back after
// the browser is redirected to the success page.
type ICheckoutGateway interface {
	CreateSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error)
}
