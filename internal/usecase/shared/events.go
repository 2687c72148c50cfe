package shared

import (
	"context"
	"time"
)

const (
	EventReservationCreated = "reservation.created"
	EventOccupancyUpdated   = "occupancy.updated"
)

// Event is published after a successful commit.
type Event struct {
	Name       string    `json:"name"`
	LotID      int64     `json:"lot_id"`
	Occupied   int       `json:"occupied"`
	Capacity   int       `json:"capacity"`
	OccurredAt time.Time `json:"occurred_at"`
	// Reservation is set for reservation.created only.
	Reservation *ReservationEvent `json:"reservation,omitempty"`
}

type ReservationEvent struct {
	ID           int64  `json:"id"`
	PermitType   string `json:"permit_type"`
	LicensePlate string `json:"license_plate"`
	ArrivalTime  string `json:"arrival_time"`
	UserID       string `json:"user_id"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
