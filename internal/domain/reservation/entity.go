package reservation

import (
	"errors"
	"time"
)

var ErrInvalidLotID = errors.New("invalid lot id")

// Reservation is written once when a spot is claimed and never changes.
type Reservation struct {
	id              int64
	lotID           int64
	permitType      PermitType
	licensePlate    LicensePlate
	arrivalTime     ArrivalTime
	reservationTime time.Time
	userID          UserID
}

func NewReservation(
	lotID int64,
	permitType PermitType,
	licensePlate LicensePlate,
	arrivalTime ArrivalTime,
	userID UserID,
	now time.Time,
) (*Reservation, error) {
	if lotID <= 0 {
		return nil, ErrInvalidLotID
	}
	if !permitType.IsValid() {
		return nil, ErrInvalidPermitType
	}
	if licensePlate.String() == "" {
		return nil, ErrEmptyLicensePlate
	}
	if userID.String() == "" {
		userID = NewUserID("")
	}

	return &Reservation{
		lotID:           lotID,
		permitType:      permitType,
		licensePlate:    licensePlate,
		arrivalTime:     arrivalTime,
		reservationTime: now,
		userID:          userID,
	}, nil
}

func ReconstructReservation(
	id, lotID int64,
	permitType PermitType,
	licensePlate LicensePlate,
	arrivalTime ArrivalTime,
	reservationTime time.Time,
	userID UserID,
) *Reservation {
	return &Reservation{
		id:              id,
		lotID:           lotID,
		permitType:      permitType,
		licensePlate:    licensePlate,
		arrivalTime:     arrivalTime,
		reservationTime: reservationTime,
		userID:          userID,
	}
}

func (r *Reservation) ID() int64 { return r.id }
func (r *Reservation) LotID() int64 { return r.lotID }
func (r *Reservation) PermitType() PermitType { return r.permitType }
func (r *Reservation) LicensePlate() LicensePlate { return r.licensePlate }
func (r *Reservation) ArrivalTime() ArrivalTime { return r.arrivalTime }
func (r *Reservation) ReservationTime() time.Time { return r.reservationTime }
func (r *Reservation) UserID() UserID { return r.userID }
