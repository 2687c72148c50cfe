package response

import (
	"time"

	"campus-parking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type LotResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Capacity       int        `json:"capacity"`
	Occupied       int        `json:"occupied"`
	Available      int        `json:"available"`
	Status         string     `json:"status"`
	AvailableRatio float64    `json:"availableRatio"`
	Rate           string     `json:"rate"`
	Location       string     `json:"location"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	SpecialInfo    *string    `json:"specialInfo,omitempty"`
	LastUpdated    *time.Time `json:"lastUpdated,omitempty"`
	DirectionsURL  string     `json:"directionsUrl"`
}

type LotListResponse struct {
	Lots  []*LotResponse `json:"lots"`
	Count int            `json:"count"`
}

func FromLotView(v *queries.LotView) *LotResponse {
	var res LotResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromLotViews(views []*queries.LotView) *LotListResponse {
	lots := make([]*LotResponse, len(views))
	for i, v := range views {
		lots[i] = FromLotView(v)
	}
	return &LotListResponse{Lots: lots, Count: len(lots)}
}

type LotUtilizationResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Capacity       int     `json:"capacity"`
	Occupied       int     `json:"occupied"`
	UtilizationPct float64 `json:"utilizationPct"`
}

type AnalyticsResponse struct {
	TotalLots      int                       `json:"totalLots"`
	TotalCapacity  int                       `json:"totalCapacity"`
	TotalOccupied  int                       `json:"totalOccupied"`
	TotalAvailable int                       `json:"totalAvailable"`
	UtilizationPct float64                   `json:"utilizationPct"`
	Lots           []*LotUtilizationResponse `json:"lots"`
}

func FromCampusAnalytics(a *queries.CampusAnalytics) *AnalyticsResponse {
	res := AnalyticsResponse{Lots: []*LotUtilizationResponse{}}
	_ = copier.Copy(&res, a)
	return &res
}
