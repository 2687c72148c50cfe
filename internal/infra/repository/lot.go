package repository

import (
	"context"
	"time"

	"campus-parking/internal/domain/lot"
	"campus-parking/internal/infra"
	"campus-parking/internal/infra/repository/converter"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
	"campus-parking/internal/usecase/shared"
)

type LotWriteQueries interface {
	CountLots(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateLot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLotParams) (int64, error)
	UpsertParkingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertParkingStatusParams) error
}

type LotRepository struct {
	queries LotWriteQueries
	db      sqlc.DBTX
}

func NewLotRepository(queries LotWriteQueries, db sqlc.DBTX) *LotRepository {
	return &LotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LotRepository) Count(ctx context.Context, tx sqlc.DBTX) (int64, error) {
	n, err := r.queries.CountLots(ctx, tx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count lots", err)
	}
	return n, nil
}

func (r *LotRepository) Create(ctx context.Context, tx sqlc.DBTX, l *lot.Lot) (int64, error) {
	id, err := r.queries.CreateLot(ctx, tx, converter.LotToInfra(l))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create lot", err)
	}
	return id, nil
}

// SeedIfEmpty inserts the samples with their initial occupancy when no lot
// exists yet. It returns how many lots were inserted.
func (r *LotRepository) SeedIfEmpty(
	ctx context.Context,
	tx sqlc.DBTX,
	samples []lot.Sample,
	occupancy shared.OccupancyFunc,
	at time.Time,
) (int, error) {
	count, err := r.Count(ctx, tx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, s := range samples {
		l, err := converter.SampleToDomain(s)
		if err != nil {
			return 0, infra.WrapRepoErr("invalid sample lot "+s.Name, err)
		}

		id, err := r.Create(ctx, tx, l)
		if err != nil {
			return 0, err
		}

		err = r.queries.UpsertParkingStatus(ctx, tx, sqlc.UpsertParkingStatusParams{
			LotID:       id,
			Occupied:    converter.OccupiedToInfra(occupancy(id, l.Capacity())),
			LastUpdated: pgconv.TimeToPgtype(at),
		})
		if err != nil {
			return 0, infra.WrapRepoErr("failed to seed lot status", err)
		}
	}

	return len(samples), nil
}
