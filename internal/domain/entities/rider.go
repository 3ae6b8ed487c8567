package entities

import "time"

type RiderStatus string

const (
	RiderStatusPending  RiderStatus = "pending"
	RiderStatusApproved RiderStatus = "approved"
	RiderStatusRejected RiderStatus = "rejected"
)

func (s RiderStatus) Valid() bool {
	switch s {
	case RiderStatusPending, RiderStatusApproved, RiderStatusRejected:
		return true
	}
	return false
}

// Rider is an onboarding application. Approval promotes the matching user
// to the rider role.
type Rider struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	Age              int         `json:"age,omitempty"`
	Region           string      `json:"region,omitempty"`
	District         string      `json:"district,omitempty"`
	NID              string      `json:"nid,omitempty"`
	Phone            string      `json:"phone,omitempty"`
	BikeBrand        string      `json:"bikeBrand,omitempty"`
	BikeRegistration string      `json:"bikeRegistration,omitempty"`
	Status           RiderStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}
