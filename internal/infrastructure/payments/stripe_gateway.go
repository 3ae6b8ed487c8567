package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"
	"zap_shift/pkg"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"go.uber.org/zap"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const (
	metadataParcelID   = "parcelId"
	metadataParcelName = "parcelName"
)

// checkoutSessionAPI is the subset of the Stripe checkout session client used here.
type checkoutSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions   checkoutSessionAPI
	successURL string
	cancelURL  string
	currency   string
	logger     *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, siteDomain, currency string, logger *zap.Logger) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	client := &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey}
	return newStripeGateway(client, siteDomain, currency, logger), nil
}

func newStripeGateway(api checkoutSessionAPI, siteDomain, currency string, logger *zap.Logger) *StripeGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StripeGateway{
		sessions:   api,
		successURL: successURL(siteDomain, "{CHECKOUT_SESSION_ID}"),
		cancelURL:  cancelURL(siteDomain),
		currency:   currency,
		logger:     logger.Named("payment.gateway.stripe"),
	}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.currency),
					UnitAmount: stripe.Int64(pkg.ToMinorUnits(req.Cost)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Please pay for: %s", req.ParcelName)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.SenderEmail),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata(metadataParcelID, req.ParcelID)
	params.AddMetadata(metadataParcelName, req.ParcelName)

	s, err := g.sessions.New(params)
	if err != nil {
		g.logger.Error("create checkout session failed", zap.String("parcel_id", req.ParcelID), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.logger.Debug("checkout session created", zap.String("session_id", s.ID), zap.String("parcel_id", req.ParcelID))
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		g.logger.Warn("retrieve checkout session failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripe.CheckoutSession) entities.CheckoutSession {
	out := entities.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      strings.ToLower(string(s.Currency)),
		CustomerEmail: s.CustomerEmail,
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	if out.CustomerEmail == "" && s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.Metadata != nil {
		out.ParcelID = s.Metadata[metadataParcelID]
		out.ParcelName = s.Metadata[metadataParcelName]
	}
	return out
}

func successURL(siteDomain, sessionID string) string {
	return fmt.Sprintf("%s/dashboard/payment-success?session_id=%s", strings.TrimRight(siteDomain, "/"), sessionID)
}

func cancelURL(siteDomain string) string {
	return strings.TrimRight(siteDomain, "/") + "/dashboard/payment-cancelled"
}
