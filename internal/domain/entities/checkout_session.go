package entities

// CheckoutSessionPaymentStatusPaid is the only provider status that settles a parcel.
const CheckoutSessionPaymentStatusPaid = "paid"

// CheckoutRequest carries what the provider needs to open a hosted checkout.
// Cost is in major units; gateways convert it to minor units.
type CheckoutRequest struct {
	ParcelID    string
	ParcelName  string
	Cost        float64
	SenderEmail string
}

// CheckoutSession is the provider-owned session as seen after the redirect.
// AmountTotal is expressed in minor units (cents).
type CheckoutSession struct {
	ID            string
	URL           string
	PaymentStatus string
	TransactionID string
	ParcelID      string
	ParcelName    string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
}

func (s CheckoutSession) IsPaid() bool {
	return s.PaymentStatus == CheckoutSessionPaymentStatusPaid
}
