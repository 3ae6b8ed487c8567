package request

import (
	"strings"

	"zap_shift/internal/domain/entities"
)

// CheckoutSessionRequest is the body of POST /payment-checkout-session.
//
// The web client sends the sender email as `sendarEmail`; `senderEmail` is
// accepted as well.
type CheckoutSessionRequest struct {
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	ParcelName  string  `json:"parcelName" binding:"required"`
	ParcelID    string  `json:"parcelId" binding:"required"`
	SendarEmail string  `json:"sendarEmail"`
	SenderEmail string  `json:"senderEmail"`
}

func (r CheckoutSessionRequest) ResolveSenderEmail() string {
	if v := strings.TrimSpace(r.SendarEmail); v != "" {
		return v
	}
	return strings.TrimSpace(r.SenderEmail)
}

func (r CheckoutSessionRequest) ToEntity() entities.CheckoutRequest {
	return entities.CheckoutRequest{
		ParcelID:    strings.TrimSpace(r.ParcelID),
		ParcelName:  strings.TrimSpace(r.ParcelName),
		Cost:        r.Cost,
		SenderEmail: r.ResolveSenderEmail(),
	}
}
