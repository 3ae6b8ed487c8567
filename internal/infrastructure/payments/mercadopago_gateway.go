package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"
	"zap_shift/pkg"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrInvalidMercadoPagoPaymentID   = errors.New("invalid mercado pago payment id")
)

const mercadoPagoStatusApproved = "approved"

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway opens checkouts as Checkout Pro preferences and settles
// from the payment id Mercado Pago appends to the success redirect.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentGetter
	siteDomain  string
	currency    string
	logger      *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, siteDomain, currency string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago sdk config: %w", err)
	}
	return newMercadoPagoGateway(preference.NewClient(cfg), payment.NewClient(cfg), siteDomain, currency, logger), nil
}

func newMercadoPagoGateway(prefs preferenceCreator, pays paymentGetter, siteDomain, currency string, logger *zap.Logger) *MercadoPagoGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MercadoPagoGateway{
		preferences: prefs,
		payments:    pays,
		siteDomain:  strings.TrimRight(siteDomain, "/"),
		currency:    strings.ToUpper(currency),
		logger:      logger.Named("payment.gateway.mercadopago"),
	}
}

func (g *MercadoPagoGateway) CreateSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	// Mercado Pago prices are decimals; round through minor units so both
	// providers charge the same amount.
	unitPrice := pkg.FromMinorUnits(pkg.ToMinorUnits(req.Cost))

	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         req.ParcelID,
				Title:      fmt.Sprintf("Please pay for: %s", req.ParcelName),
				Quantity:   1,
				UnitPrice:  unitPrice,
				CurrencyID: g.currency,
			},
		},
		Payer: &preference.PayerRequest{Email: req.SenderEmail},
		BackURLs: &preference.BackURLsRequest{
			Success: g.siteDomain + "/dashboard/payment-success",
			Failure: cancelURL(g.siteDomain),
			Pending: cancelURL(g.siteDomain),
		},
		AutoReturn:        mercadoPagoStatusApproved,
		ExternalReference: req.ParcelID,
		Metadata: map[string]any{
			metadataParcelID:   req.ParcelID,
			metadataParcelName: req.ParcelName,
		},
	})
	if err != nil {
		g.logger.Error("create preference failed", zap.String("parcel_id", req.ParcelID), zap.Error(err))
		return entities.CheckoutSession{}, err
	}
	g.logger.Debug("preference created", zap.String("preference_id", resp.ID), zap.String("parcel_id", req.ParcelID))

	return entities.CheckoutSession{
		ID:            resp.ID,
		URL:           resp.InitPoint,
		ParcelID:      req.ParcelID,
		ParcelName:    req.ParcelName,
		AmountTotal:   pkg.ToMinorUnits(unitPrice),
		Currency:      strings.ToLower(g.currency),
		CustomerEmail: req.SenderEmail,
	}, nil
}

// RetrieveSession looks up the payment behind a success redirect. The
// session id is the numeric Mercado Pago payment id.
func (g *MercadoPagoGateway) RetrieveSession(ctx context.Context, sessionID string) (entities.CheckoutSession, error) {
	id, err := strconv.Atoi(strings.TrimSpace(sessionID))
	if err != nil || id <= 0 {
		return entities.CheckoutSession{}, ErrInvalidMercadoPagoPaymentID
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.Warn("payment lookup failed", zap.Int("payment_id", id), zap.Error(err))
		return entities.CheckoutSession{}, err
	}

	status := resp.Status
	if status == mercadoPagoStatusApproved {
		status = entities.CheckoutSessionPaymentStatusPaid
	}
	parcelID := resp.ExternalReference
	if v, ok := resp.Metadata[metadataParcelIDSnake].(string); ok && parcelID == "" {
		parcelID = v
	}
	parcelName, _ := resp.Metadata[metadataParcelNameSnake].(string)

	return entities.CheckoutSession{
		ID:            sessionID,
		PaymentStatus: status,
		TransactionID: strconv.Itoa(resp.ID),
		ParcelID:      parcelID,
		ParcelName:    parcelName,
		AmountTotal:   pkg.ToMinorUnits(resp.TransactionAmount),
		Currency:      strings.ToLower(resp.CurrencyID),
		CustomerEmail: resp.Payer.Email,
	}, nil
}

// Mercado Pago returns metadata keys in snake_case regardless of how they were sent.
const (
	metadataParcelIDSnake   = "parcel_id"
	metadataParcelNameSnake = "parcel_name"
)
