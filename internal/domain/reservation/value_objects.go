package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyLicensePlate   = errors.New("license plate cannot be empty")
	ErrLicensePlateTooLong = errors.New("license plate is too long (max 20 characters)")
	ErrInvalidArrivalTime  = errors.New("arrival time must be HH:MM")
)

const (
	MaxLicensePlateLength = 20
	arrivalTimeLayout     = "15:04"
	// GuestUserID marks a reservation made without a known user.
	GuestUserID = "guest"
)

type LicensePlate struct {
	value string
}

func NewLicensePlate(value string) (LicensePlate, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return LicensePlate{}, ErrEmptyLicensePlate
	}
	if len(value) > MaxLicensePlateLength {
		return LicensePlate{}, ErrLicensePlateTooLong
	}
	return LicensePlate{value: value}, nil
}

func (l LicensePlate) String() string {
	return l.value
}

// ArrivalTime is a time of day with minute precision.
type ArrivalTime struct {
	hour   int
	minute int
}

func NewArrivalTime(hour, minute int) (ArrivalTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ArrivalTime{}, ErrInvalidArrivalTime
	}
	return ArrivalTime{hour: hour, minute: minute}, nil
}

func ParseArrivalTime(s string) (ArrivalTime, error) {
	t, err := time.Parse(arrivalTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return ArrivalTime{}, ErrInvalidArrivalTime
	}
	return ArrivalTime{hour: t.Hour(), minute: t.Minute()}, nil
}

func (a ArrivalTime) Hour() int { return a.hour }
func (a ArrivalTime) Minute() int { return a.minute }

func (a ArrivalTime) String() string {
	return time.Date(0, 1, 1, a.hour, a.minute, 0, 0, time.UTC).Format(arrivalTimeLayout)
}

type UserID struct {
	value string
}

// NewUserID falls back to the guest marker for a blank id.
func NewUserID(value string) UserID {
	value = strings.TrimSpace(value)
	if value == "" {
		return UserID{value: GuestUserID}
	}
	return UserID{value: value}
}

func (u UserID) String() string {
	return u.value
}

func (u UserID) IsGuest() bool {
	return u.value == GuestUserID
}
