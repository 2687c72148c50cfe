package converter

import (
	"fmt"
	"math"

	"campus-parking/internal/domain/lot"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
)

func LotToInfra(l *lot.Lot) sqlc.CreateLotParams {
	return sqlc.CreateLotParams{
		Name:        l.Name(),
		Capacity:    toInt32(l.Capacity()),
		Rate:        l.Rate(),
		Location:    l.Location(),
		Latitude:    l.Coordinates().Latitude,
		Longitude:   l.Coordinates().Longitude,
		SpecialInfo: pgconv.StringPtrToPgtype(l.SpecialInfo()),
	}
}

func SampleToDomain(s lot.Sample) (*lot.Lot, error) {
	info := s.SpecialInfo
	return lot.NewLot(s.Name, s.Capacity, s.Rate, s.Location, s.Coordinates, &info)
}

func toInt32(n int) int32 {
	if n > math.MaxInt32 || n < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", n))
	}
	return int32(n)
}
