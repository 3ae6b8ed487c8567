package payments

import (
	"context"
	"errors"
	"sync"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"
	"zap_shift/pkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMockSessionNotFound = errors.New("mock checkout session not found")

// MockGateway is an in-process provider for local runs. Every session it
// creates is already paid and its URL points straight at the success page.
type MockGateway struct {
	mu         sync.RWMutex
	sessions   map[string]entities.CheckoutSession
	siteDomain string
	currency   string
	logger     *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MockGateway)(nil)

func NewMockGateway(siteDomain, currency string, logger *zap.Logger) *MockGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockGateway{
		sessions:   map[string]entities.CheckoutSession{},
		siteDomain: siteDomain,
		currency:   currency,
		logger:     logger.Named("payment.gateway.mock"),
	}
}

func (g *MockGateway) CreateSession(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	id := uuid.NewString()
	s := entities.CheckoutSession{
		ID:            "cs_mock_" + id,
		PaymentStatus: entities.CheckoutSessionPaymentStatusPaid,
		TransactionID: "pi_mock_" + id,
		ParcelID:      req.ParcelID,
		ParcelName:    req.ParcelName,
		AmountTotal:   pkg.ToMinorUnits(req.Cost),
		Currency:      g.currency,
		CustomerEmail: req.SenderEmail,
	}
	s.URL = successURL(g.siteDomain, s.ID)

	g.mu.Lock()
	g.sessions[s.ID] = s
	g.mu.Unlock()

	g.logger.Info("mock checkout session created", zap.String("session_id", s.ID), zap.String("parcel_id", req.ParcelID))
	return s, nil
}

func (g *MockGateway) RetrieveSession(_ context.Context, sessionID string) (entities.CheckoutSession, error) {
	g.mu.RLock()
	s, ok := g.sessions[sessionID]
	g.mu.RUnlock()
	if !ok {
		return entities.CheckoutSession{}, ErrMockSessionNotFound
	}
	return s, nil
}
