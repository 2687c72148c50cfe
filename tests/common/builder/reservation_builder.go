//go:build unit || e2e

package builder

import (
	"time"

	"campus-parking/internal/domain/reservation"
	reqdto "campus-parking/internal/handler/dto/request"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/usecase/commands"
	"campus-parking/internal/usecase/queries"
	"campus-parking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID              int64
	LotID           int64
	PermitType      string
	LicensePlate    string
	ArrivalTime     string
	UserID          string
	ReservationTime time.Time
	Occupied        int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              1,
		LotID:           1,
		PermitType:      "Student",
		LicensePlate:    "ABC123",
		ArrivalTime:     "09:30",
		UserID:          "guest",
		ReservationTime: time.Date(2025, 3, 1, 8, 15, 0, 0, time.UTC),
		Occupied:        11,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	permit, err := reservation.NewPermitType(b.PermitType)
	if err != nil {
		return nil, err
	}
	plate, err := reservation.NewLicensePlate(b.LicensePlate)
	if err != nil {
		return nil, err
	}
	arrival, err := reservation.ParseArrivalTime(b.ArrivalTime)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.LotID, permit, plate, arrival, reservation.NewUserID(b.UserID), b.ReservationTime)
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PermitType:   b.PermitType,
		LicensePlate: b.LicensePlate,
		ArrivalTime:  b.ArrivalTime,
		UserID:       b.UserID,
	}
}

func (b *ReservationBuilder) BuildInput() commands.ReserveInput {
	return commands.ReserveInput{
		LotID:        b.LotID,
		PermitType:   b.PermitType,
		LicensePlate: b.LicensePlate,
		ArrivalTime:  b.ArrivalTime,
		UserID:       b.UserID,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:              b.ID,
		LotID:           b.LotID,
		PermitType:      b.PermitType,
		LicensePlate:    b.LicensePlate,
		ArrivalTime:     b.ArrivalTime,
		ReservationTime: b.ReservationTime,
		UserID:          b.UserID,
		Occupied:        b.Occupied,
	}
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		LotID:           b.LotID,
		PermitType:      b.PermitType,
		LicensePlate:    b.LicensePlate,
		ArrivalTime:     b.ArrivalTime,
		ReservationTime: pgtype.Timestamp{Time: b.ReservationTime, Valid: true},
		UserID:          b.UserID,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:              b.ID,
		LotID:           b.LotID,
		PermitType:      b.PermitType,
		LicensePlate:    b.LicensePlate,
		ArrivalTime:     b.ArrivalTime,
		ReservationTime: b.ReservationTime,
		UserID:          b.UserID,
	}
}
