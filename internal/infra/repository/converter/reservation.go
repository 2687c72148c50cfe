package converter

import (
	"campus-parking/internal/domain/reservation"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
	"campus-parking/internal/usecase/shared"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		LotID:           res.LotID(),
		PermitType:      res.PermitType().String(),
		LicensePlate:    res.LicensePlate().String(),
		ArrivalTime:     res.ArrivalTime().String(),
		ReservationTime: pgconv.TimeToPgtype(res.ReservationTime()),
		UserID:          res.UserID().String(),
	}
}

func ReservationToSnapshot(row sqlc.Reservations, occupied int32) *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:              row.ID,
		LotID:           row.LotID,
		PermitType:      row.PermitType,
		LicensePlate:    row.LicensePlate,
		ArrivalTime:     row.ArrivalTime,
		ReservationTime: pgconv.TimeFromPgtype(row.ReservationTime),
		UserID:          row.UserID,
		Occupied:        int(occupied),
	}
}

func OccupiedToInfra(n int) int32 {
	return toInt32(n)
}
