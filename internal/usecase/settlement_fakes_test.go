package usecase

import (
	"context"
	"fmt"
	"sync"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"
)

// memoryParcels mirrors the stores' conditional MarkPaid: the tracking id is
// written once and never replaced. updates counts effective modifications.
type memoryParcels struct {
	mu       sync.Mutex
	parcels  map[string]entities.Parcel
	updates  int
	failNext error
}

func newMemoryParcels(ids ...string) *memoryParcels {
	m := &memoryParcels{parcels: map[string]entities.Parcel{}}
	for _, id := range ids {
		m.parcels[id] = entities.Parcel{ID: id, DeliveryStatus: entities.DeliveryStatusCreated}
	}
	return m
}

func (m *memoryParcels) Create(_ context.Context, p entities.Parcel) (entities.Parcel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parcels[p.ID] = p
	return p, nil
}

func (m *memoryParcels) GetByID(_ context.Context, id string) (entities.Parcel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.parcels[id], nil
}

func (m *memoryParcels) ListBySenderEmail(_ context.Context, email string) ([]entities.Parcel, error) {
	return nil, nil
}

func (m *memoryParcels) Delete(_ context.Context, id string) (entities.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.parcels, id)
	return entities.DeleteResult{DeletedCount: 1}, nil
}

func (m *memoryParcels) MarkPaid(_ context.Context, id string, trackingID string) (entities.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failNext; err != nil {
		m.failNext = nil
		return entities.UpdateResult{}, err
	}
	p, ok := m.parcels[id]
	if !ok {
		return entities.UpdateResult{}, nil
	}
	switch p.TrackingID {
	case trackingID:
		if p.DeliveryStatus == entities.DeliveryStatusPaid {
			return entities.UpdateResult{MatchedCount: 1}, nil
		}
	case "":
	default:
		return entities.UpdateResult{}, interfaces.ErrTrackingIDConflict
	}
	m.updates++
	p.DeliveryStatus = entities.DeliveryStatusPaid
	p.TrackingID = trackingID
	m.parcels[id] = p
	return entities.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type memoryPayments struct {
	mu       sync.Mutex
	payments map[string]entities.Payment
	inserts  int
}

func newMemoryPayments() *memoryPayments {
	return &memoryPayments{payments: map[string]entities.Payment{}}
}

func (m *memoryPayments) Create(_ context.Context, p entities.Payment) (entities.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[p.TransactionID]; ok {
		return entities.InsertResult{}, interfaces.ErrPaymentAlreadyRecorded
	}
	m.inserts++
	m.payments[p.TransactionID] = p
	return entities.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
}

func (m *memoryPayments) GetByTransactionID(_ context.Context, transactionID string) (entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payments[transactionID], nil
}

func (m *memoryPayments) ListByCustomerEmail(_ context.Context, email string) ([]entities.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Payment
	for _, p := range m.payments {
		if p.CustomerEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

// staticGateway serves sessions cs_<n> paid with payment intent pi_<n> for parcel P<n>.
type staticGateway struct {
	sessions map[string]entities.CheckoutSession
}

func newStaticGateway(n int) *staticGateway {
	g := &staticGateway{sessions: map[string]entities.CheckoutSession{}}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("cs_%d", i)
		g.sessions[id] = entities.CheckoutSession{
			ID:            id,
			PaymentStatus: entities.CheckoutSessionPaymentStatusPaid,
			TransactionID: fmt.Sprintf("pi_%d", i),
			ParcelID:      fmt.Sprintf("P%d", i),
			ParcelName:    "Box",
			AmountTotal:   2000,
			Currency:      "usd",
			CustomerEmail: "a@b.com",
		}
	}
	return g
}

func (g *staticGateway) add(s entities.CheckoutSession) {
	g.sessions[s.ID] = s
}

func (g *staticGateway) CreateSession(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	return entities.CheckoutSession{}, fmt.Errorf("not supported")
}

func (g *staticGateway) RetrieveSession(_ context.Context, sessionID string) (entities.CheckoutSession, error) {
	s, ok := g.sessions[sessionID]
	if !ok {
		return entities.CheckoutSession{}, fmt.Errorf("no such checkout session: %s", sessionID)
	}
	return s, nil
}
