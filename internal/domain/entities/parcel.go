package entities

import "time"

// DeliveryStatus is the delivery lifecycle of a parcel.
//
// Only Created and Paid are driven by this service; later states belong to
// the delivery workflow.
type DeliveryStatus string

const (
	DeliveryStatusCreated DeliveryStatus = "Created"
	DeliveryStatusPaid    DeliveryStatus = "Paid"
)

type ParcelType string

const (
	ParcelTypeDocument    ParcelType = "document"
	ParcelTypeNonDocument ParcelType = "non-document"
)

// Parcel is a delivery request booked by a sender.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (sender_email-index): sender_email
//
// TrackingID stays empty until the parcel is paid and never changes after.
type Parcel struct {
	ID              string         `json:"id"`
	ParcelName      string         `json:"parcelName"`
	ParcelType      ParcelType     `json:"parcelType,omitempty"`
	ParcelWeight    float64        `json:"parcelWeight,omitempty"`
	Cost            float64        `json:"cost"`
	SenderName      string         `json:"senderName,omitempty"`
	SenderEmail     string         `json:"sendarEmail"`
	SenderAddress   string         `json:"senderAddress,omitempty"`
	ReceiverName    string         `json:"receiverName,omitempty"`
	ReceiverEmail   string         `json:"receiverEmail,omitempty"`
	ReceiverAddress string         `json:"receiverAddress,omitempty"`
	ReceiverPhone   string         `json:"receiverPhone,omitempty"`
	DeliveryStatus  DeliveryStatus `json:"deliveryStatus"`
	TrackingID      string         `json:"trackingId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (p Parcel) IsPaid() bool {
	return p.DeliveryStatus == DeliveryStatusPaid || p.TrackingID != ""
}
