package queries

import (
	"context"

	"campus-parking/internal/domain/lot"
	"campus-parking/internal/infra"
	"campus-parking/internal/pkg/clock"
	"campus-parking/internal/pkg/errs"
)

type LotReadStore interface {
	List(ctx context.Context, search string) ([]*LotView, error)
	FindByID(ctx context.Context, id int64) (*LotView, error)
}

type LotQueries interface {
	List(ctx context.Context, search string) ([]*LotView, error)
	Get(ctx context.Context, id int64) (*LotView, error)
	Analytics(ctx context.Context) (*CampusAnalytics, error)
}

type lotQueriesImpl struct {
	store LotReadStore
	clock clock.Clock
}

func NewLotQueries(store LotReadStore, clk clock.Clock) LotQueries {
	return &lotQueriesImpl{store: store, clock: clk}
}

func (q *lotQueriesImpl) List(ctx context.Context, search string) ([]*LotView, error) {
	views, err := q.store.List(ctx, search)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.decorate(v)
	}
	return views, nil
}

func (q *lotQueriesImpl) Get(ctx context.Context, id int64) (*LotView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLotNotFound
		}
		return nil, err
	}
	q.decorate(v)
	return v, nil
}

func (q *lotQueriesImpl) Analytics(ctx context.Context) (*CampusAnalytics, error) {
	views, err := q.store.List(ctx, "")
	if err != nil {
		return nil, err
	}

	result := &CampusAnalytics{
		TotalLots: len(views),
		Lots:      make([]*LotUtilization, len(views)),
	}
	for i, v := range views {
		occ := lot.NewOccupancy(v.Capacity, &v.Occupied)
		result.TotalCapacity += v.Capacity
		result.TotalOccupied += v.Occupied
		result.TotalAvailable += occ.Available()
		result.Lots[i] = &LotUtilization{
			ID:             v.ID,
			Name:           v.Name,
			Capacity:       v.Capacity,
			Occupied:       v.Occupied,
			UtilizationPct: occ.Utilization(),
		}
	}
	if result.TotalCapacity > 0 {
		result.UtilizationPct = float64(result.TotalOccupied) / float64(result.TotalCapacity) * 100
	}
	return result, nil
}

func (q *lotQueriesImpl) decorate(v *LotView) {
	var occupied *int
	if v.HasStatus {
		occupied = &v.Occupied
	}
	occ := lot.NewOccupancy(v.Capacity, occupied)

	v.Occupied = occ.Occupied()
	v.Available = occ.Available()
	v.Status = occ.Status().String()
	v.AvailableRatio = occ.Ratio()
	v.DirectionsURL = lot.DirectionsURL(lot.Coordinates{Latitude: v.Latitude, Longitude: v.Longitude})
	if !occ.Recorded() || v.LastUpdated == nil {
		now := q.clock.Now()
		v.LastUpdated = &now
	}
}
