package repository

import (
	"context"

	"campus-parking/internal/domain/reservation"
	"campus-parking/internal/infra"
	"campus-parking/internal/infra/repository/converter"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
	"campus-parking/internal/usecase/shared"
)

type ReservationWriteQueries interface {
	OccupySpot(ctx context.Context, db sqlc.DBTX, arg sqlc.OccupySpotParams) (int32, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Insert claims a spot with a guarded increment, then records the
// reservation. A full lot matches no row and yields KindCapacityExceeded.
func (r *ReservationRepository) Insert(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (*shared.ReservationSnapshot, error) {
	occupied, err := r.queries.OccupySpot(ctx, tx, sqlc.OccupySpotParams{
		LastUpdated: pgconv.TimeToPgtype(res.ReservationTime()),
		LotID:       res.LotID(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no spot left to claim", err, infra.KindCapacityExceeded)
		}
		return nil, infra.WrapRepoErr("failed to claim spot", err)
	}

	row, err := r.queries.CreateReservation(ctx, tx, converter.ReservationToInfra(res))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return converter.ReservationToSnapshot(row, occupied), nil
}
