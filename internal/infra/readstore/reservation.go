package readstore

import (
	"context"

	"campus-parking/internal/infra"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
	"campus-parking/internal/usecase/queries"
)

type ReservationReadQueries interface {
	ListReservationsByLot(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByLotParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListByLot(ctx context.Context, lotID int64, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByLot(ctx, r.db, sqlc.ListReservationsByLotParams{
		LotID: lotID,
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by lot", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			LotID:           row.LotID,
			PermitType:      row.PermitType,
			LicensePlate:    row.LicensePlate,
			ArrivalTime:     row.ArrivalTime,
			ReservationTime: pgconv.TimeFromPgtype(row.ReservationTime),
			UserID:          row.UserID,
		}
	}
	return result, nil
}
