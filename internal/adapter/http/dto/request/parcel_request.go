package request

import "zap_shift/internal/domain/entities"

type ParcelCreateRequest struct {
	ParcelName      string  `json:"parcelName" binding:"required"`
	ParcelType      string  `json:"parcelType" binding:"omitempty,oneof=document non-document"`
	ParcelWeight    float64 `json:"parcelWeight" binding:"gte=0"`
	Cost            float64 `json:"cost" binding:"required,gt=0"`
	SenderName      string  `json:"senderName"`
	SendarEmail     string  `json:"sendarEmail" binding:"omitempty,email"`
	SenderAddress   string  `json:"senderAddress"`
	ReceiverName    string  `json:"receiverName"`
	ReceiverEmail   string  `json:"receiverEmail" binding:"omitempty,email"`
	ReceiverAddress string  `json:"receiverAddress"`
	ReceiverPhone   string  `json:"receiverPhone"`
}

func (r ParcelCreateRequest) ToEntity() entities.Parcel {
	return entities.Parcel{
		ParcelName:      r.ParcelName,
		ParcelType:      entities.ParcelType(r.ParcelType),
		ParcelWeight:    r.ParcelWeight,
		Cost:            r.Cost,
		SenderName:      r.SenderName,
		SenderEmail:     r.SendarEmail,
		SenderAddress:   r.SenderAddress,
		ReceiverName:    r.ReceiverName,
		ReceiverEmail:   r.ReceiverEmail,
		ReceiverAddress: r.ReceiverAddress,
		ReceiverPhone:   r.ReceiverPhone,
	}
}
