package shared

import (
	"context"
	"time"

	"campus-parking/internal/domain/lot"
	"campus-parking/internal/domain/reservation"
	sqlc "campus-parking/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: one ReadCommitted transaction. Nothing is retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Lots() LotRepository
	Occupancy() OccupancyRepository
	Reservations() ReservationRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	LotByID(ctx context.Context, id int64) (*LotSnapshot, error)
}

// OccupancyFunc picks the initial occupancy of a freshly seeded lot.
type OccupancyFunc func(lotID int64, capacity int) int

type LotRepository interface {
	Count(ctx context.Context, tx sqlc.DBTX) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, l *lot.Lot) (int64, error)
	SeedIfEmpty(ctx context.Context, tx sqlc.DBTX, samples []lot.Sample, occupancy OccupancyFunc, at time.Time) (int, error)
}

type OccupancyRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, lotID int64, occupied int, at time.Time) error
}

type ReservationRepository interface {
	// Insert claims a spot and records the reservation. The caller must pass
	// a transaction so both writes commit together.
	Insert(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*ReservationSnapshot, error)
}
