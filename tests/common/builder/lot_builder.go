//go:build unit || e2e

package builder

import (
	"time"

	"campus-parking/internal/domain/lot"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/usecase/queries"
	"campus-parking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type LotBuilder struct {
	ID          int64
	Name        string
	Capacity    int
	Occupied    int
	HasStatus   bool
	Rate        string
	Location    string
	Latitude    float64
	Longitude   float64
	SpecialInfo *string
	LastUpdated time.Time
}

func NewLotBuilder() *LotBuilder {
	info := "Near the main entrance"
	return &LotBuilder{
		ID:          1,
		Name:        "Great Hall",
		Capacity:    31,
		Occupied:    10,
		HasStatus:   true,
		Rate:        "$2/hour",
		Location:    "Main Campus",
		Latitude:    37.7749,
		Longitude:   -122.4194,
		SpecialInfo: &info,
		LastUpdated: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) WithOccupied(n int) *LotBuilder {
	b.Occupied = n
	b.HasStatus = true
	return b
}

func (b *LotBuilder) WithoutStatus() *LotBuilder {
	b.Occupied = 0
	b.HasStatus = false
	return b
}

// Build methods
func (b *LotBuilder) BuildDomain() (*lot.Lot, error) {
	coords, err := lot.NewCoordinates(b.Latitude, b.Longitude)
	if err != nil {
		return nil, err
	}
	return lot.NewLot(b.Name, b.Capacity, b.Rate, b.Location, coords, b.SpecialInfo)
}

func (b *LotBuilder) BuildSample() lot.Sample {
	info := ""
	if b.SpecialInfo != nil {
		info = *b.SpecialInfo
	}
	return lot.Sample{
		Name:        b.Name,
		Capacity:    b.Capacity,
		Rate:        b.Rate,
		Location:    b.Location,
		Coordinates: lot.Coordinates{Latitude: b.Latitude, Longitude: b.Longitude},
		SpecialInfo: info,
	}
}

// BuildView returns the raw read-store view, before derived fields are filled.
func (b *LotBuilder) BuildView() *queries.LotView {
	v := &queries.LotView{
		ID:          b.ID,
		Name:        b.Name,
		Capacity:    b.Capacity,
		Rate:        b.Rate,
		Location:    b.Location,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		SpecialInfo: b.SpecialInfo,
		HasStatus:   b.HasStatus,
		Occupied:    b.Occupied,
	}
	if b.HasStatus {
		at := b.LastUpdated
		v.LastUpdated = &at
	}
	return v
}

// BuildDecoratedView fills the fields LotQueries derives.
func (b *LotBuilder) BuildDecoratedView() *queries.LotView {
	v := b.BuildView()
	occ := lot.NewOccupancy(b.Capacity, &b.Occupied)
	v.Available = occ.Available()
	v.Status = occ.Status().String()
	v.AvailableRatio = occ.Ratio()
	v.DirectionsURL = lot.DirectionsURL(lot.Coordinates{Latitude: b.Latitude, Longitude: b.Longitude})
	return v
}

func (b *LotBuilder) BuildSnapshot() *shared.LotSnapshot {
	return &shared.LotSnapshot{
		ID:       b.ID,
		Name:     b.Name,
		Capacity: b.Capacity,
		Occupied: b.Occupied,
	}
}

func (b *LotBuilder) BuildInfraRow() sqlc.ListLotsWithStatusRow {
	row := sqlc.ListLotsWithStatusRow{
		ID:        b.ID,
		Name:      b.Name,
		Capacity:  int32(b.Capacity),
		Rate:      b.Rate,
		Location:  b.Location,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
	if b.SpecialInfo != nil {
		row.SpecialInfo = pgtype.Text{String: *b.SpecialInfo, Valid: true}
	}
	if b.HasStatus {
		row.Occupied = pgtype.Int4{Int32: int32(b.Occupied), Valid: true}
		row.LastUpdated = pgtype.Timestamp{Time: b.LastUpdated, Valid: true}
	}
	return row
}
