package entities

import "time"

// Payment is the append-only record of a settled checkout.
//
// Storage model (DynamoDB):
//   - PK: transaction_id (one record per payment intent)
//   - GSI1 (customer_email-index): customer_email
type Payment struct {
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
