package response

import (
	"time"

	"zap_shift/internal/domain/entities"
)

const (
	MessagePaymentAlreadyExists = "Payment already exists"
	MessagePaymentNotCompleted  = "payment not completed"
)

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// UpdateResultResponse and InsertResultResponse keep the write-result shape
// the web client reads (acknowledged, matchedCount, ...).
type UpdateResultResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type InsertResultResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type PaymentSettledResponse struct {
	Success       bool                 `json:"success"`
	TrackingID    string               `json:"trackingId"`
	TransactionID string               `json:"transactionId"`
	ModifyParcel  UpdateResultResponse `json:"modifyParcel"`
	PaymentInfo   InsertResultResponse `json:"paymentInfo"`
}

type PaymentReplayResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
	TrackingID    string `json:"trackingId"`
}

type PaymentPendingResponse struct {
	Success       bool   `json:"success"`
	PaymentStatus string `json:"paymentStatus"`
	Message       string `json:"message"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customerEmail"`
	ParcelID      string    `json:"parcelId"`
	ParcelName    string    `json:"parcelName"`
	TransactionID string    `json:"transactionId"`
	PaymentStatus string    `json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`
	TrackingID    string    `json:"trackingId"`
}

func FromSettled(res entities.SettlementResult) PaymentSettledResponse {
	return PaymentSettledResponse{
		Success:       true,
		TrackingID:    res.TrackingID,
		TransactionID: res.TransactionID,
		ModifyParcel: UpdateResultResponse{
			Acknowledged:  true,
			MatchedCount:  res.ModifyParcel.MatchedCount,
			ModifiedCount: res.ModifyParcel.ModifiedCount,
		},
		PaymentInfo: InsertResultResponse{
			Acknowledged: res.PaymentInfo.Acknowledged,
			InsertedID:   res.PaymentInfo.InsertedID,
		},
	}
}

func FromReplay(res entities.SettlementResult) PaymentReplayResponse {
	return PaymentReplayResponse{
		Message:       MessagePaymentAlreadyExists,
		TransactionID: res.TransactionID,
		TrackingID:    res.TrackingID,
	}
}

func FromPending(res entities.SettlementResult) PaymentPendingResponse {
	return PaymentPendingResponse{
		Success:       false,
		PaymentStatus: res.PaymentStatus,
		Message:       MessagePaymentNotCompleted,
	}
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		ParcelID:      p.ParcelID,
		ParcelName:    p.ParcelName,
		TransactionID: p.TransactionID,
		PaymentStatus: p.PaymentStatus,
		PaidAt:        p.PaidAt,
		TrackingID:    p.TrackingID,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
