package request

import (
	"strings"

	"campus-parking/internal/usecase/commands"
)

type CreateReservationRequest struct {
	PermitType   string `json:"permitType" binding:"required,oneof=Student Faculty Visitor Event"`
	LicensePlate string `json:"licensePlate" binding:"required,max=20"`
	ArrivalTime  string `json:"arrivalTime" binding:"required,len=5"`
	UserID       string `json:"userId,omitempty" binding:"omitempty,max=64"`
}

func (r CreateReservationRequest) ToInput(lotID int64) commands.ReserveInput {
	return commands.ReserveInput{
		LotID:        lotID,
		PermitType:   r.PermitType,
		LicensePlate: strings.TrimSpace(r.LicensePlate),
		ArrivalTime:  r.ArrivalTime,
		UserID:       strings.TrimSpace(r.UserID),
	}
}

type ListReservationsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}
