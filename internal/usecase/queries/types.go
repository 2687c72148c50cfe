package queries

import "time"

// LotView is a lot joined with its occupancy. Occupied is 0 when the lot has
// no status row yet (HasStatus == false).
type LotView struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	Rate        string     `json:"rate"`
	Location    string     `json:"location"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	SpecialInfo *string    `json:"special_info,omitempty"`
	HasStatus   bool       `json:"has_status"`
	Occupied    int        `json:"occupied"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`

	// Derived by LotQueries
	Available      int     `json:"available"`
	Status         string  `json:"status"`
	AvailableRatio float64 `json:"available_ratio"`
	DirectionsURL  string  `json:"directions_url"`
}

type ReservationListItem struct {
	ID              int64     `json:"id"`
	LotID           int64     `json:"lot_id"`
	PermitType      string    `json:"permit_type"`
	LicensePlate    string    `json:"license_plate"`
	ArrivalTime     string    `json:"arrival_time"`
	ReservationTime time.Time `json:"reservation_time"`
	UserID          string    `json:"user_id"`
}

type LotUtilization struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Capacity       int     `json:"capacity"`
	Occupied       int     `json:"occupied"`
	UtilizationPct float64 `json:"utilization_pct"`
}

type CampusAnalytics struct {
	TotalLots      int               `json:"total_lots"`
	TotalCapacity  int               `json:"total_capacity"`
	TotalOccupied  int               `json:"total_occupied"`
	TotalAvailable int               `json:"total_available"`
	UtilizationPct float64           `json:"utilization_pct"`
	Lots           []*LotUtilization `json:"lots"`
}
