package commands

import (
	"context"
	"log/slog"
	"math/rand"

	"campus-parking/internal/domain/lot"
	"campus-parking/internal/domain/reservation"
	"campus-parking/internal/infra"
	"campus-parking/internal/pkg/clock"
	"campus-parking/internal/pkg/errs"
	"campus-parking/internal/usecase/shared"
)

type ReserveInput struct {
	LotID        int64
	PermitType   string
	LicensePlate string
	ArrivalTime  string
	UserID       string
}

type ReserveResult struct {
	Reservation *shared.ReservationSnapshot
	Capacity    int
	Occupied    int
	Available   int
	Status      lot.Status
}

type OccupancyResult struct {
	LotID     int64
	Capacity  int
	Occupied  int
	Available int
	Status    lot.Status
}

type OccupancyCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
	SetOccupied(ctx context.Context, lotID int64, occupied int) (*OccupancyResult, error)
	SeedIfEmpty(ctx context.Context) (int, error)
}

type occupancyUseCaseImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	intn      IntN
}

func NewOccupancyUseCase(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) OccupancyCommands {
	return &occupancyUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		intn:      rand.Intn,
	}
}

// NewOccupancyUseCaseWithRand fixes the seed draw, for tests.
func NewOccupancyUseCaseWithRand(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, intn IntN) OccupancyCommands {
	return &occupancyUseCaseImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		intn:      intn,
	}
}

func (uc *occupancyUseCaseImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	res, err := uc.buildReservation(in)
	if err != nil {
		return nil, err
	}

	snap, err := uc.lotSnapshot(ctx, in.LotID)
	if err != nil {
		return nil, err
	}
	if lot.NewOccupancy(snap.Capacity, &snap.Occupied).IsFull() {
		return nil, errs.ErrLotFull
	}

	var created *shared.ReservationSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().Insert(ctx, tx.DB(), res)
		if derr != nil {
			return derr
		}
		created = r
		return nil
	})
	if err != nil {
		// Another request took the last spot between the check and the write.
		if infra.IsKind(err, infra.KindCapacityExceeded) {
			return nil, errs.ErrLotFull
		}
		return nil, err
	}

	occ := lot.NewOccupancy(snap.Capacity, &created.Occupied)
	uc.publish(ctx, shared.Event{
		Name:       shared.EventReservationCreated,
		LotID:      created.LotID,
		Occupied:   occ.Occupied(),
		Capacity:   occ.Capacity(),
		OccurredAt: created.ReservationTime,
		Reservation: &shared.ReservationEvent{
			ID:           created.ID,
			PermitType:   created.PermitType,
			LicensePlate: created.LicensePlate,
			ArrivalTime:  created.ArrivalTime,
			UserID:       created.UserID,
		},
	})
	uc.publish(ctx, shared.Event{
		Name:       shared.EventOccupancyUpdated,
		LotID:      created.LotID,
		Occupied:   occ.Occupied(),
		Capacity:   occ.Capacity(),
		OccurredAt: created.ReservationTime,
	})

	return &ReserveResult{
		Reservation: created,
		Capacity:    occ.Capacity(),
		Occupied:    occ.Occupied(),
		Available:   occ.Available(),
		Status:      occ.Status(),
	}, nil
}

func (uc *occupancyUseCaseImpl) SetOccupied(ctx context.Context, lotID int64, occupied int) (*OccupancyResult, error) {
	snap, err := uc.lotSnapshot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	if err := lot.ValidateOccupied(snap.Capacity, occupied); err != nil {
		return nil, errs.ErrOccupancyOutOfRange
	}

	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Occupancy().Upsert(ctx, tx.DB(), lotID, occupied, now)
	})
	if err != nil {
		return nil, err
	}

	occ := lot.NewOccupancy(snap.Capacity, &occupied)
	uc.publish(ctx, shared.Event{
		Name:       shared.EventOccupancyUpdated,
		LotID:      lotID,
		Occupied:   occ.Occupied(),
		Capacity:   occ.Capacity(),
		OccurredAt: now,
	})

	return &OccupancyResult{
		LotID:     lotID,
		Capacity:  occ.Capacity(),
		Occupied:  occ.Occupied(),
		Available: occ.Available(),
		Status:    occ.Status(),
	}, nil
}

// SeedIfEmpty loads the sample lots into an empty database. Occupancy is
// drawn from [10*id, 20*id] and clamped to capacity.
func (uc *occupancyUseCaseImpl) SeedIfEmpty(ctx context.Context) (int, error) {
	draw := func(lotID int64, capacity int) int {
		return lot.SeedOccupancy(lotID, capacity, uc.intn)
	}

	var inserted int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Lots().SeedIfEmpty(ctx, tx.DB(), lot.SampleLots(), draw, uc.clock.Now())
		if derr != nil {
			return derr
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (uc *occupancyUseCaseImpl) buildReservation(in ReserveInput) (*reservation.Reservation, error) {
	permit, err := reservation.NewPermitType(in.PermitType)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidReservation, err.Error())
	}
	plate, err := reservation.NewLicensePlate(in.LicensePlate)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidReservation, err.Error())
	}
	arrival, err := reservation.ParseArrivalTime(in.ArrivalTime)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidReservation, err.Error())
	}

	res, err := reservation.NewReservation(in.LotID, permit, plate, arrival, reservation.NewUserID(in.UserID), uc.clock.Now())
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidReservation, err.Error())
	}
	return res, nil
}

func (uc *occupancyUseCaseImpl) lotSnapshot(ctx context.Context, lotID int64) (*shared.LotSnapshot, error) {
	snap, err := uc.uow.CommandReads().LotByID(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLotNotFound
		}
		return nil, err
	}
	return snap, nil
}

// publish never fails the caller; the write has already committed.
func (uc *occupancyUseCaseImpl) publish(ctx context.Context, event shared.Event) {
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish event",
			"event", event.Name,
			"lot_id", event.LotID,
			"error", err.Error())
	}
}
