package queries

import (
	"context"

	"campus-parking/internal/infra"
	"campus-parking/internal/pkg/errs"
)

const (
	DefaultReservationLimit = 50
	MaxReservationLimit     = 500
)

type ReservationReadStore interface {
	ListByLot(ctx context.Context, lotID int64, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	ListByLot(ctx context.Context, lotID int64, limit int) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	lots  LotReadStore
	store ReservationReadStore
}

func NewReservationQueries(lots LotReadStore, store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{lots: lots, store: store}
}

// ListByLot returns the most recent reservations first.
func (q *reservationQueriesImpl) ListByLot(ctx context.Context, lotID int64, limit int) ([]*ReservationListItem, error) {
	if _, err := q.lots.FindByID(ctx, lotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLotNotFound
		}
		return nil, err
	}

	return q.store.ListByLot(ctx, lotID, int32(normalizeLimit(limit)))
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultReservationLimit
	}
	if limit > MaxReservationLimit {
		return MaxReservationLimit
	}
	return limit
}
