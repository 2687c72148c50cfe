package response

import (
	"time"

	"campus-parking/internal/usecase/commands"
	"campus-parking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              int64     `json:"id"`
	LotID           int64     `json:"lotId"`
	PermitType      string    `json:"permitType"`
	LicensePlate    string    `json:"licensePlate"`
	ArrivalTime     string    `json:"arrivalTime"`
	ReservationTime time.Time `json:"reservationTime"`
	UserID          string    `json:"userId"`
}

type OccupancyResponse struct {
	LotID     int64  `json:"lotId"`
	Capacity  int    `json:"capacity"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
	Status    string `json:"status"`
}

type CreateReservationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Occupancy   *OccupancyResponse   `json:"occupancy"`
}

func FromReserveResult(r *commands.ReserveResult) *CreateReservationResponse {
	var res ReservationResponse
	_ = copier.Copy(&res, r.Reservation)
	return &CreateReservationResponse{
		Reservation: &res,
		Occupancy: &OccupancyResponse{
			LotID:     r.Reservation.LotID,
			Capacity:  r.Capacity,
			Occupied:  r.Occupied,
			Available: r.Available,
			Status:    r.Status.String(),
		},
	}
}

func FromOccupancyResult(r *commands.OccupancyResult) *OccupancyResponse {
	return &OccupancyResponse{
		LotID:     r.LotID,
		Capacity:  r.Capacity,
		Occupied:  r.Occupied,
		Available: r.Available,
		Status:    r.Status.String(),
	}
}

type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Count        int                    `json:"count"`
}

func FromReservationListItems(items []*queries.ReservationListItem) *ReservationListResponse {
	list := make([]*ReservationResponse, len(items))
	for i, item := range items {
		var res ReservationResponse
		_ = copier.Copy(&res, item)
		list[i] = &res
	}
	return &ReservationListResponse{Reservations: list, Count: len(list)}
}
