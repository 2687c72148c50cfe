package uow

import (
	"context"
	"errors"
	"log/slog"

	"campus-parking/internal/infra/readstore"
	"campus-parking/internal/infra/repository"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/errs"
	"campus-parking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: the only contended write is a single guarded
// upsert, which PostgreSQL re-evaluates against the latest row version.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStorage)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		slog.Error("commit failed", "error", err.Error())
		return errs.Mark(errs.Mark(err, errTransactionCommit), errs.ErrStorage)
	}
	return nil
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	lotRepo         shared.LotRepository
	occupancyRepo   shared.OccupancyRepository
	reservationRepo shared.ReservationRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewLotRepository(t.uow.q, t.dbtx)
	}
	return t.lotRepo
}

func (t *pgTx) Occupancy() shared.OccupancyRepository {
	if t.occupancyRepo == nil {
		t.occupancyRepo = repository.NewOccupancyRepository(t.uow.q, t.dbtx)
	}
	return t.occupancyRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	lotStore *readstore.LotReadStore
}

func (r *commandReads) LotByID(ctx context.Context, id int64) (*shared.LotSnapshot, error) {
	if r.lotStore == nil {
		r.lotStore = readstore.NewLotReadStore(r.uow.q, r.dbtx)
	}

	view, err := r.lotStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.LotSnapshot{
		ID:       view.ID,
		Name:     view.Name,
		Capacity: view.Capacity,
		Occupied: view.Occupied,
	}, nil
}
