//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campus-parking/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(reservation.Reservation{}),
}

func mustPlate(t *testing.T, s string) reservation.LicensePlate {
	t.Helper()
	p, err := reservation.NewLicensePlate(s)
	require.NoError(t, err)
	return p
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
	arrival, err := reservation.ParseArrivalTime("09:15")
	require.NoError(t, err)

	t.Run("valid reservation", func(t *testing.T) {
		r, err := reservation.NewReservation(1, reservation.PermitStudent, mustPlate(t, "abc 123"), arrival, reservation.NewUserID(""), now)
		require.NoError(t, err)

		expected := reservation.ReconstructReservation(0, 1, reservation.PermitStudent, mustPlate(t, "ABC 123"), arrival, now, reservation.NewUserID("guest"))
		if diff := cmp.Diff(expected, r, cmpOpts...); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(1), r.LotID())
		assert.Equal(t, "ABC 123", r.LicensePlate().String())
		assert.Equal(t, "09:15", r.ArrivalTime().String())
		assert.True(t, r.UserID().IsGuest())
		assert.Equal(t, now, r.ReservationTime())
	})

	t.Run("zero value plate is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(1, reservation.PermitVisitor, reservation.LicensePlate{}, arrival, reservation.NewUserID("u1"), now)
		assert.ErrorIs(t, err, reservation.ErrEmptyLicensePlate)
	})

	t.Run("unknown permit is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(1, reservation.PermitType("Staff"), mustPlate(t, "X1"), arrival, reservation.NewUserID("u1"), now)
		assert.ErrorIs(t, err, reservation.ErrInvalidPermitType)
	})

	t.Run("non-positive lot is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(0, reservation.PermitEvent, mustPlate(t, "X1"), arrival, reservation.NewUserID("u1"), now)
		assert.ErrorIs(t, err, reservation.ErrInvalidLotID)
	})
}

func TestNewPermitType(t *testing.T) {
	for _, p := range reservation.PermitTypes() {
		got, err := reservation.NewPermitType(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := reservation.NewPermitType("student")
	assert.ErrorIs(t, err, reservation.ErrInvalidPermitType)
}

func TestLicensePlate(t *testing.T) {
	_, err := reservation.NewLicensePlate("   ")
	assert.ErrorIs(t, err, reservation.ErrEmptyLicensePlate)

	_, err = reservation.NewLicensePlate("ABCDEFGHIJKLMNOPQRSTU")
	assert.ErrorIs(t, err, reservation.ErrLicensePlateTooLong)
}

func TestParseArrivalTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "00:00", want: "00:00"},
		{in: "7:05", want: "07:05"},
		{in: " 23:59 ", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := reservation.ParseArrivalTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, reservation.ErrInvalidArrivalTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
