package lot

import "errors"

var ErrOccupancyOutOfRange = errors.New("occupied must be between 0 and capacity")

// Status is the display classification of a lot's availability.
type Status string

const (
	StatusGood    Status = "Good"
	StatusLimited Status = "Limited"
	StatusFull    Status = "Full"
)

// LimitedThreshold is the largest available count still labelled Limited.
const LimitedThreshold = 20

func (s Status) String() string {
	return string(s)
}

// AvailableSpots never goes below zero, even for rows written before the
// occupancy bound was enforced.
func AvailableSpots(capacity, occupied int) int {
	available := capacity - occupied
	if available < 0 {
		return 0
	}
	return available
}

func ClassifyStatus(capacity, occupied int) Status {
	available := AvailableSpots(capacity, occupied)
	switch {
	case available > LimitedThreshold:
		return StatusGood
	case available > 0:
		return StatusLimited
	default:
		return StatusFull
	}
}

// AvailableRatio is available/capacity in [0,1].
func AvailableRatio(capacity, occupied int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(AvailableSpots(capacity, occupied)) / float64(capacity)
}

func ValidateOccupied(capacity, occupied int) error {
	if occupied < 0 || occupied > capacity {
		return ErrOccupancyOutOfRange
	}
	return nil
}

// Occupancy is a lot's mutable counter. A lot without a status row has
// Recorded() == false and counts as zero occupied.
type Occupancy struct {
	capacity int
	occupied int
	recorded bool
}

func NewOccupancy(capacity int, occupied *int) Occupancy {
	if occupied == nil {
		return Occupancy{capacity: capacity}
	}
	return Occupancy{capacity: capacity, occupied: *occupied, recorded: true}
}

func (o Occupancy) Capacity() int { return o.capacity }
func (o Occupancy) Occupied() int { return o.occupied }
func (o Occupancy) Recorded() bool { return o.recorded }
func (o Occupancy) Available() int { return AvailableSpots(o.capacity, o.occupied) }
func (o Occupancy) Status() Status { return ClassifyStatus(o.capacity, o.occupied) }
func (o Occupancy) IsFull() bool { return o.Available() <= 0 }
func (o Occupancy) Ratio() float64 { return AvailableRatio(o.capacity, o.occupied) }
func (o Occupancy) Utilization() float64 {
	if o.capacity <= 0 {
		return 0
	}
	return float64(o.occupied) / float64(o.capacity) * 100
}
