package lot

import (
	"errors"
	"strings"
)

var (
	ErrEmptyLotName        = errors.New("lot name cannot be empty")
	ErrLotNameTooLong      = errors.New("lot name is too long (max 255 characters)")
	ErrNonPositiveCapacity = errors.New("capacity must be positive")
	ErrInvalidCoordinates  = errors.New("coordinates out of range")
)

const (
	MaxLotNameLength = 255
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, ErrInvalidCoordinates
	}
	return Coordinates{Latitude: lat, Longitude: lng}, nil
}

// Lot is a parking facility. Capacity is fixed once reservations exist.
type Lot struct {
	id          int64
	name        string
	capacity    int
	rate        string
	location    string
	coordinates Coordinates
	specialInfo *string
}

func NewLot(name string, capacity int, rate, location string, coords Coordinates, specialInfo *string) (*Lot, error) {
	if err := validateLotName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrNonPositiveCapacity
	}

	return &Lot{
		name:        strings.TrimSpace(name),
		capacity:    capacity,
		rate:        rate,
		location:    location,
		coordinates: coords,
		specialInfo: specialInfo,
	}, nil
}

func ReconstructLot(id int64, name string, capacity int, rate, location string, coords Coordinates, specialInfo *string) *Lot {
	return &Lot{
		id:          id,
		name:        name,
		capacity:    capacity,
		rate:        rate,
		location:    location,
		coordinates: coords,
		specialInfo: specialInfo,
	}
}

func validateLotName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyLotName
	}
	if len(name) > MaxLotNameLength {
		return ErrLotNameTooLong
	}
	return nil
}

func (l *Lot) ID() int64 { return l.id }
func (l *Lot) Name() string { return l.name }
func (l *Lot) Capacity() int { return l.capacity }
func (l *Lot) Rate() string { return l.rate }
func (l *Lot) Location() string { return l.location }
func (l *Lot) Coordinates() Coordinates { return l.coordinates }
func (l *Lot) SpecialInfo() *string { return l.specialInfo }
