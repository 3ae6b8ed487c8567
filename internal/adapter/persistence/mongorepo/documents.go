package mongorepo

import (
	"time"

	"zap_shift/internal/domain/entities"
)

// Collection and field names follow the zap_shift_db layout, including the
// sendarEmail spelling the web client already queries by.
const (
	parcelsCollection  = "parcels"
	paymentsCollection = "payments"
	usersCollection    = "users"
	ridersCollection   = "riders"
)

type parcelDocument struct {
	ID              string    `bson:"_id"`
	ParcelName      string    `bson:"parcelName"`
	ParcelType      string    `bson:"parcelType,omitempty"`
	ParcelWeight    float64   `bson:"parcelWeight,omitempty"`
	Cost            float64   `bson:"cost"`
	SenderName      string    `bson:"senderName,omitempty"`
	SenderEmail     string    `bson:"sendarEmail"`
	SenderAddress   string    `bson:"senderAddress,omitempty"`
	ReceiverName    string    `bson:"receiverName,omitempty"`
	ReceiverEmail   string    `bson:"receiverEmail,omitempty"`
	ReceiverAddress string    `bson:"receiverAddress,omitempty"`
	ReceiverPhone   string    `bson:"receiverPhone,omitempty"`
	DeliveryStatus  string    `bson:"deliveryStatus"`
	TrackingID      string    `bson:"trackingId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt"`
}

func toParcelDocument(p entities.Parcel) parcelDocument {
	return parcelDocument{
		ID:              p.ID,
		ParcelName:      p.ParcelName,
		ParcelType:      string(p.ParcelType),
		ParcelWeight:    p.ParcelWeight,
		Cost:            p.Cost,
		SenderName:      p.SenderName,
		SenderEmail:     p.SenderEmail,
		SenderAddress:   p.SenderAddress,
		ReceiverName:    p.ReceiverName,
		ReceiverEmail:   p.ReceiverEmail,
		ReceiverAddress: p.ReceiverAddress,
		ReceiverPhone:   p.ReceiverPhone,
		DeliveryStatus:  string(p.DeliveryStatus),
		TrackingID:      p.TrackingID,
		CreatedAt:       p.CreatedAt,
	}
}

func (d parcelDocument) entity() entities.Parcel {
	return entities.Parcel{
		ID:              d.ID,
		ParcelName:      d.ParcelName,
		ParcelType:      entities.ParcelType(d.ParcelType),
		ParcelWeight:    d.ParcelWeight,
		Cost:            d.Cost,
		SenderName:      d.SenderName,
		SenderEmail:     d.SenderEmail,
		SenderAddress:   d.SenderAddress,
		ReceiverName:    d.ReceiverName,
		ReceiverEmail:   d.ReceiverEmail,
		ReceiverAddress: d.ReceiverAddress,
		ReceiverPhone:   d.ReceiverPhone,
		DeliveryStatus:  entities.DeliveryStatus(d.DeliveryStatus),
		TrackingID:      d.TrackingID,
		CreatedAt:       d.CreatedAt,
	}
}

type paymentDocument struct {
	ID            string    `bson:"_id"`
	Amount        float64   `bson:"amount"`
	Currency      string    `bson:"currency"`
	CustomerEmail string    `bson:"customerEmail"`
	ParcelID      string    `bson:"parcelId"`
	ParcelName    string    `bson:"parcelName"`
	TransactionID string    `bson:"transactionId"`
	PaymentStatus string    `bson:"paymentStatus"`
	PaidAt        time.Time `bson:"paidAt"`
	TrackingID    string    `bson:"trackingId"`
}

func toPaymentDocument(p entities.Payment) paymentDocument {
	return paymentDocument{
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

func (d paymentDocument) entity() entities.Payment {
	return entities.Payment{
		ID:            d.ID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		CustomerEmail: d.CustomerEmail,
		ParcelID:      d.ParcelID,
		ParcelName:    d.ParcelName,
		TransactionID: d.TransactionID,
		PaymentStatus: d.PaymentStatus,
		PaidAt:        d.PaidAt,
		TrackingID:    d.TrackingID,
	}
}

type userDocument struct {
	ID          string    `bson:"_id"`
	Email       string    `bson:"email"`
	DisplayName string    `bson:"displayName,omitempty"`
	PhotoURL    string    `bson:"photoURL,omitempty"`
	Role        string    `bson:"role"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func (d userDocument) entity() entities.User {
	return entities.User{
		ID:          d.ID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		PhotoURL:    d.PhotoURL,
		Role:        entities.UserRole(d.Role),
		CreatedAt:   d.CreatedAt,
	}
}

type riderDocument struct {
	ID               string    `bson:"_id"`
	Name             string    `bson:"name"`
	Email            string    `bson:"email"`
	Age              int       `bson:"age,omitempty"`
	Region           string    `bson:"region,omitempty"`
	District         string    `bson:"district,omitempty"`
	NID              string    `bson:"nid,omitempty"`
	Phone            string    `bson:"phone,omitempty"`
	BikeBrand        string    `bson:"bikeBrand,omitempty"`
	BikeRegistration string    `bson:"bikeRegistration,omitempty"`
	Status           string    `bson:"status"`
	CreatedAt        time.Time `bson:"createdAt"`
}

func toRiderDocument(r entities.Rider) riderDocument {
	return riderDocument{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Age:              r.Age,
		Region:           r.Region,
		District:         r.District,
		NID:              r.NID,
		Phone:            r.Phone,
		BikeBrand:        r.BikeBrand,
		BikeRegistration: r.BikeRegistration,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
	}
}

func (d riderDocument) entity() entities.Rider {
	return entities.Rider{
		ID:               d.ID,
		Name:             d.Name,
		Email:            d.Email,
		Age:              d.Age,
		Region:           d.Region,
		District:         d.District,
		NID:              d.NID,
		Phone:            d.Phone,
		BikeBrand:        d.BikeBrand,
		BikeRegistration: d.BikeRegistration,
		Status:           entities.RiderStatus(d.Status),
		CreatedAt:        d.CreatedAt,
	}
}
