package shared

import "time"

// Write-side snapshots keep commands independent of read-side view types.
type LotSnapshot struct {
	ID       int64
	Name     string
	Capacity int
	Occupied int
}

type ReservationSnapshot struct {
	ID              int64
	LotID           int64
	PermitType      string
	LicensePlate    string
	ArrivalTime     string
	ReservationTime time.Time
	UserID          string
	// Occupied is the lot's count right after this reservation.
	Occupied int
}
