package repository

import (
	"context"
	"time"

	"campus-parking/internal/infra"
	"campus-parking/internal/infra/repository/converter"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
)

type OccupancyWriteQueries interface {
	UpsertParkingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertParkingStatusParams) error
}

type OccupancyRepository struct {
	queries OccupancyWriteQueries
	db      sqlc.DBTX
}

func NewOccupancyRepository(queries OccupancyWriteQueries, db sqlc.DBTX) *OccupancyRepository {
	return &OccupancyRepository{
		queries: queries,
		db:      db,
	}
}

// Upsert creates the status row on first write and overwrites it afterwards.
func (r *OccupancyRepository) Upsert(ctx context.Context, tx sqlc.DBTX, lotID int64, occupied int, at time.Time) error {
	err := r.queries.UpsertParkingStatus(ctx, tx, sqlc.UpsertParkingStatusParams{
		LotID:       lotID,
		Occupied:    converter.OccupiedToInfra(occupied),
		LastUpdated: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert parking status", err)
	}
	return nil
}
