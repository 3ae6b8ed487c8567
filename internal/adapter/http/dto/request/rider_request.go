package request

import "zap_shift/internal/domain/entities"

type RiderApplicationRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Age              int    `json:"age" binding:"gte=0"`
	Region           string `json:"region"`
	District         string `json:"district"`
	NID              string `json:"nid"`
	Phone            string `json:"phone"`
	BikeBrand        string `json:"bikeBrand"`
	BikeRegistration string `json:"bikeRegistration"`
}

func (r RiderApplicationRequest) ToEntity() entities.Rider {
	return entities.Rider{
		Name:             r.Name,
		Email:            r.Email,
		Age:              r.Age,
		Region:           r.Region,
		District:         r.District,
		NID:              r.NID,
		Phone:            r.Phone,
		BikeBrand:        r.BikeBrand,
		BikeRegistration: r.BikeRegistration,
	}
}

type RiderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
