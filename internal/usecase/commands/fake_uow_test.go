//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"campus-parking/internal/domain/lot"
	"campus-parking/internal/domain/reservation"
	"campus-parking/internal/infra"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// memoryUoW serializes transactions on one mutex and rolls back the
// in-memory state when fn fails.
type memoryUoW struct {
	mu           sync.Mutex
	lots         map[int64]*shared.LotSnapshot
	statuses     map[int64]time.Time
	reservations []*shared.ReservationSnapshot
	nextLotID    int64
	nextResID    int64

	// staleReads makes LotByID report an empty lot, as if another request
	// filled it after the read.
	staleReads bool
	failWrites error

	transactions int
}

func newMemoryUoW(lots ...*shared.LotSnapshot) *memoryUoW {
	u := &memoryUoW{
		lots:     map[int64]*shared.LotSnapshot{},
		statuses: map[int64]time.Time{},
	}
	for _, l := range lots {
		cp := *l
		u.lots[l.ID] = &cp
		if l.ID > u.nextLotID {
			u.nextLotID = l.ID
		}
	}
	return u
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.transactions++

	saved := make(map[int64]shared.LotSnapshot, len(u.lots))
	for id, l := range u.lots {
		saved[id] = *l
	}
	savedRes := len(u.reservations)

	if err := fn(ctx, &memoryTx{u: u}); err != nil {
		u.lots = map[int64]*shared.LotSnapshot{}
		for id, l := range saved {
			cp := l
			u.lots[id] = &cp
		}
		u.reservations = u.reservations[:savedRes]
		return err
	}
	return nil
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	return &lockedReads{u: u}
}

func (u *memoryUoW) occupied(id int64) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lots[id].Occupied
}

func (u *memoryUoW) reservationCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.reservations)
}

type lockedReads struct{ u *memoryUoW }

func (r *lockedReads) LotByID(ctx context.Context, id int64) (*shared.LotSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	return (&memoryTx{u: r.u}).LotByID(ctx, id)
}

type memoryTx struct{ u *memoryUoW }

func (t *memoryTx) Lots() shared.LotRepository { return t }
func (t *memoryTx) Occupancy() shared.OccupancyRepository { return t }
func (t *memoryTx) Reservations() shared.ReservationRepository { return t }
func (t *memoryTx) DB() sqlc.DBTX { return nil }

func (t *memoryTx) LotByID(_ context.Context, id int64) (*shared.LotSnapshot, error) {
	l, ok := t.u.lots[id]
	if !ok {
		return nil, infra.WrapRepoErr("lot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	cp := *l
	if t.u.staleReads {
		cp.Occupied = 0
	}
	return &cp, nil
}

func (t *memoryTx) Count(context.Context, sqlc.DBTX) (int64, error) {
	return int64(len(t.u.lots)), nil
}

func (t *memoryTx) Create(_ context.Context, _ sqlc.DBTX, l *lot.Lot) (int64, error) {
	if t.u.failWrites != nil {
		return 0, infra.WrapRepoErr("failed to create lot", t.u.failWrites)
	}
	t.u.nextLotID++
	id := t.u.nextLotID
	t.u.lots[id] = &shared.LotSnapshot{ID: id, Name: l.Name(), Capacity: l.Capacity()}
	return id, nil
}

func (t *memoryTx) SeedIfEmpty(ctx context.Context, tx sqlc.DBTX, samples []lot.Sample, occupancy shared.OccupancyFunc, at time.Time) (int, error) {
	if len(t.u.lots) > 0 {
		return 0, nil
	}
	for _, s := range samples {
		l, err := lot.NewLot(s.Name, s.Capacity, s.Rate, s.Location, s.Coordinates, nil)
		if err != nil {
			return 0, err
		}
		id, err := t.Create(ctx, tx, l)
		if err != nil {
			return 0, err
		}
		if err := t.Upsert(ctx, tx, id, occupancy(id, s.Capacity), at); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func (t *memoryTx) Upsert(_ context.Context, _ sqlc.DBTX, lotID int64, occupied int, at time.Time) error {
	if t.u.failWrites != nil {
		return infra.WrapRepoErr("failed to upsert parking status", t.u.failWrites)
	}
	l, ok := t.u.lots[lotID]
	if !ok {
		return infra.WrapRepoErr("unknown lot", pgx.ErrNoRows, infra.KindForeignKeyViolated)
	}
	l.Occupied = occupied
	t.u.statuses[lotID] = at
	return nil
}

func (t *memoryTx) Insert(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (*shared.ReservationSnapshot, error) {
	l := t.u.lots[res.LotID()]
	if l.Occupied >= l.Capacity {
		return nil, infra.WrapRepoErr("no spot left to claim", pgx.ErrNoRows, infra.KindCapacityExceeded)
	}
	l.Occupied++
	t.u.nextResID++

	snap := &shared.ReservationSnapshot{
		ID:              t.u.nextResID,
		LotID:           res.LotID(),
		PermitType:      res.PermitType().String(),
		LicensePlate:    res.LicensePlate().String(),
		ArrivalTime:     res.ArrivalTime().String(),
		ReservationTime: res.ReservationTime(),
		UserID:          res.UserID().String(),
		Occupied:        l.Occupied,
	}
	if t.u.failWrites != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", t.u.failWrites)
	}
	t.u.reservations = append(t.u.reservations, snap)
	return snap, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Name
	}
	return out
}
