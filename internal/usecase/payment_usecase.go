package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"zap_shift/internal/domain/entities"
	"zap_shift/internal/usecase/interfaces"
	"zap_shift/pkg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidSessionID        = errors.New("invalid session_id")
	ErrInvalidCheckoutInput    = errors.New("invalid checkout input")
	ErrInvalidPaymentEmail     = errors.New("invalid payment email")
	ErrPaymentEmailMismatch    = errors.New("token email does not match requested email")
	ErrSessionMissingIntent    = errors.New("paid checkout session has no payment intent")
	ErrPaymentGatewayNotConfig = errors.New("payment gateway not configured")
)

const (
	SettlementOutcomeSettled  = "settled"
	SettlementOutcomeReplayed = "replayed"
	SettlementOutcomeUnpaid   = "unpaid"
	SettlementOutcomeFailed   = "failed"
)

// SettlementObserver is notified of every confirmation outcome.
type SettlementObserver interface {
	ObserveSettlement(outcome string)
}

// IPaymentUseCase covers checkout creation, settlement on redirect and the
// payment history of a customer.
//
// ConfirmPayment is idempotent per transaction id: the first call records the
// payment and marks the parcel paid, later calls return the stored tracking id
// and only re-apply the parcel update, which is a no-op once it has landed.
type IPaymentUseCase interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (string, error)
	ConfirmPayment(ctx context.Context, sessionID string) (entities.SettlementResult, error)
	ListByEmail(ctx context.Context, requestedEmail string, identityEmail string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	parcels    interfaces.IParcelRepository
	payments   interfaces.IPaymentRepository
	gateway    interfaces.ICheckoutGateway
	trackingID TrackingIDFunc
	now        func() time.Time
	observer   SettlementObserver
	logger     *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

type PaymentOption func(*PaymentUseCase)

func WithPaymentLogger(l *zap.Logger) PaymentOption {
	return func(u *PaymentUseCase) {
		if l != nil {
			u.logger = l.Named("settlement")
		}
	}
}

func WithTrackingIDFunc(f TrackingIDFunc) PaymentOption {
	return func(u *PaymentUseCase) { u.trackingID = f }
}

func WithClock(now func() time.Time) PaymentOption {
	return func(u *PaymentUseCase) { u.now = now }
}

func WithSettlementObserver(o SettlementObserver) PaymentOption {
	return func(u *PaymentUseCase) { u.observer = o }
}

func NewPaymentUseCase(parcels interfaces.IParcelRepository, payments interfaces.IPaymentRepository, gateway interfaces.ICheckoutGateway, opts ...PaymentOption) *PaymentUseCase {
	u := &PaymentUseCase{
		parcels:    parcels,
		payments:   payments,
		gateway:    gateway,
		trackingID: defaultTrackingID,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *PaymentUseCase) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (string, error) {
	req.ParcelID = strings.TrimSpace(req.ParcelID)
	req.ParcelName = strings.TrimSpace(req.ParcelName)
	req.SenderEmail = strings.TrimSpace(req.SenderEmail)
	if req.ParcelID == "" || req.ParcelName == "" || req.SenderEmail == "" || req.Cost <= 0 {
		return "", ErrInvalidCheckoutInput
	}
	if u.gateway == nil {
		return "", ErrPaymentGatewayNotConfig
	}

	parcel, err := u.parcels.GetByID(ctx, req.ParcelID)
	if err != nil {
		return "", upstreamError("load parcel", err)
	}
	if parcel.ID == "" {
		return "", ErrParcelNotFound
	}
	if parcel.IsPaid() {
		return "", ErrParcelAlreadyPaid
	}
	// The stored parcel is the source of truth for the amount.
	if parcel.Cost > 0 && parcel.Cost != req.Cost {
		u.logger.Warn("checkout cost differs from stored parcel cost; using stored cost",
			zap.String("parcel_id", req.ParcelID),
			zap.Float64("requested_cost", req.Cost),
			zap.Float64("stored_cost", parcel.Cost))
		req.Cost = parcel.Cost
	}

	session, err := u.gateway.CreateSession(ctx, req)
	if err != nil {
		u.logger.Error("checkout session creation failed", zap.String("parcel_id", req.ParcelID), zap.Error(err))
		return "", upstreamError("create checkout session", err)
	}
	u.logger.Info("checkout session created",
		zap.String("parcel_id", req.ParcelID),
		zap.String("session_id", session.ID),
		zap.Int64("amount_minor", pkg.ToMinorUnits(req.Cost)))
	return session.URL, nil
}

func (u *PaymentUseCase) ConfirmPayment(ctx context.Context, sessionID string) (entities.SettlementResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.SettlementResult{}, ErrInvalidSessionID
	}
	if u.gateway == nil {
		return entities.SettlementResult{}, ErrPaymentGatewayNotConfig
	}
	log := u.logger.With(zap.String("session_id", sessionID))

	session, err := u.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		log.Error("retrieve checkout session failed", zap.Error(err))
		u.observe(SettlementOutcomeFailed)
		return entities.SettlementResult{}, upstreamError("retrieve checkout session", err)
	}
	log = log.With(zap.String("transaction_id", session.TransactionID), zap.String("parcel_id", session.ParcelID))

	if session.TransactionID != "" {
		existing, err := u.payments.GetByTransactionID(ctx, session.TransactionID)
		if err != nil {
			u.observe(SettlementOutcomeFailed)
			return entities.SettlementResult{}, upstreamError("load payment", err)
		}
		if existing.TransactionID != "" {
			log.Info("payment already recorded", zap.String("tracking_id", existing.TrackingID))
			return u.replay(ctx, log, existing)
		}
	}

	if !session.IsPaid() {
		log.Info("checkout session not paid", zap.String("payment_status", session.PaymentStatus))
		u.observe(SettlementOutcomeUnpaid)
		return entities.SettlementResult{
			PaymentStatus: session.PaymentStatus,
			TransactionID: session.TransactionID,
		}, nil
	}
	if session.TransactionID == "" {
		u.observe(SettlementOutcomeFailed)
		return entities.SettlementResult{}, upstreamError("read checkout session", ErrSessionMissingIntent)
	}

	paidAt := u.now().UTC()
	trackingID, err := u.trackingID(paidAt)
	if err != nil {
		u.observe(SettlementOutcomeFailed)
		return entities.SettlementResult{}, err
	}

	payment := entities.Payment{
		ID:            uuid.NewString(),
		Amount:        pkg.FromMinorUnits(session.AmountTotal),
		Currency:      session.Currency,
		CustomerEmail: strings.ToLower(strings.TrimSpace(session.CustomerEmail)),
		ParcelID:      session.ParcelID,
		ParcelName:    session.ParcelName,
		TransactionID: session.TransactionID,
		PaymentStatus: session.PaymentStatus,
		PaidAt:        paidAt,
		TrackingID:    trackingID,
	}

	// Recording the payment first claims the transaction id; a concurrent
	// confirmation of the same session loses here and replays the winner.
	inserted, err := u.payments.Create(ctx, payment)
	if errors.Is(err, interfaces.ErrPaymentAlreadyRecorded) {
		winner, getErr := u.payments.GetByTransactionID(ctx, session.TransactionID)
		if getErr != nil {
			u.observe(SettlementOutcomeFailed)
			return entities.SettlementResult{}, upstreamError("load payment", getErr)
		}
		log.Info("lost settlement race; replaying recorded payment", zap.String("tracking_id", winner.TrackingID))
		return u.replay(ctx, log, winner)
	}
	if err != nil {
		log.Error("record payment failed", zap.Error(err))
		u.observe(SettlementOutcomeFailed)
		return entities.SettlementResult{}, upstreamError("record payment", err)
	}

	modified, err := u.markParcelPaid(ctx, log, session.ParcelID, trackingID)
	if err != nil {
		u.observe(SettlementOutcomeFailed)
		return entities.SettlementResult{}, err
	}

	log.Info("payment settled", zap.String("tracking_id", trackingID), zap.Float64("amount", payment.Amount))
	u.observe(SettlementOutcomeSettled)
	return entities.SettlementResult{
		Settled:       true,
		PaymentStatus: session.PaymentStatus,
		TrackingID:    trackingID,
		TransactionID: session.TransactionID,
		ModifyParcel:  modified,
		PaymentInfo:   inserted,
	}, nil
}

func (u *PaymentUseCase) ListByEmail(ctx context.Context, requestedEmail string, identityEmail string) ([]entities.Payment, error) {
	requestedEmail = strings.TrimSpace(requestedEmail)
	if requestedEmail == "" {
		return nil, ErrInvalidPaymentEmail
	}
	if !strings.EqualFold(requestedEmail, strings.TrimSpace(identityEmail)) {
		return nil, ErrPaymentEmailMismatch
	}

	payments, err := u.payments.ListByCustomerEmail(ctx, strings.ToLower(requestedEmail))
	if err != nil {
		return nil, upstreamError("list payments", err)
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaidAt.After(payments[j].PaidAt)
	})
	return payments, nil
}

func (u *PaymentUseCase) observe(outcome string) {
	if u.observer != nil {
		u.observer.ObserveSettlement(outcome)
	}
}

// replay answers for an already recorded payment. The parcel update is
// applied again so a confirmation that failed after recording the payment
// converges when the caller retries.
func (u *PaymentUseCase) replay(ctx context.Context, log *zap.Logger, p entities.Payment) (entities.SettlementResult, error) {
	modified, err := u.markParcelPaid(ctx, log, p.ParcelID, p.TrackingID)
	if err != nil {
		u.observe(SettlementOutcomeFailed)
		return entities.SettlementResult{}, err
	}
	u.observe(SettlementOutcomeReplayed)
	res := replayResult(p)
	res.ModifyParcel = modified
	return res, nil
}

// markParcelPaid treats a missing parcel and a tracking id conflict as
// best effort: the payment stays recorded and the condition is logged.
func (u *PaymentUseCase) markParcelPaid(ctx context.Context, log *zap.Logger, parcelID, trackingID string) (entities.UpdateResult, error) {
	log = log.With(zap.String("tracking_id", trackingID))
	if parcelID == "" {
		log.Warn("payment has no parcel reference; parcel not updated")
		return entities.UpdateResult{}, nil
	}

	res, err := u.parcels.MarkPaid(ctx, parcelID, trackingID)
	switch {
	case errors.Is(err, interfaces.ErrTrackingIDConflict):
		log.Error("parcel already carries another tracking id; payment needs review")
		return entities.UpdateResult{MatchedCount: 1}, nil
	case err != nil:
		log.Error("payment recorded but parcel update failed", zap.Error(err))
		return entities.UpdateResult{}, upstreamError("mark parcel paid", err)
	}
	if res.MatchedCount == 0 {
		log.Warn("parcel not found while settling; payment kept")
	}
	return res, nil
}

func replayResult(p entities.Payment) entities.SettlementResult {
	return entities.SettlementResult{
		AlreadySettled: true,
		PaymentStatus:  p.PaymentStatus,
		TrackingID:     p.TrackingID,
		TransactionID:  p.TransactionID,
	}
}
