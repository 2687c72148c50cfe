package readstore

import (
	"context"
	"strings"

	"campus-parking/internal/infra"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/internal/pkg/pgconv"
	"campus-parking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// likeEscaper makes a search term match literally inside ILIKE, whose
// default escape character is a backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type LotReadQueries interface {
	ListLotsWithStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListLotsWithStatusRow, error)
	SearchLotsWithStatus(ctx context.Context, db sqlc.DBTX, term string) ([]sqlc.SearchLotsWithStatusRow, error)
	GetLotWithStatus(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetLotWithStatusRow, error)
}

type LotReadStore struct {
	queries LotReadQueries
	db      sqlc.DBTX
}

func NewLotReadStore(queries LotReadQueries, db sqlc.DBTX) *LotReadStore {
	return &LotReadStore{
		queries: queries,
		db:      db,
	}
}

// List returns every lot sorted by name. A blank search returns all lots.
func (r *LotReadStore) List(ctx context.Context, search string) ([]*queries.LotView, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		rows, err := r.queries.ListLotsWithStatus(ctx, r.db)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list lots", err)
		}
		result := make([]*queries.LotView, len(rows))
		for i, row := range rows {
			result[i] = toLotView(lotRow(row))
		}
		return result, nil
	}

	rows, err := r.queries.SearchLotsWithStatus(ctx, r.db, likeEscaper.Replace(search))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search lots", err)
	}
	result := make([]*queries.LotView, len(rows))
	for i, row := range rows {
		result[i] = toLotView(lotRow(row))
	}
	return result, nil
}

func (r *LotReadStore) FindByID(ctx context.Context, id int64) (*queries.LotView, error) {
	row, err := r.queries.GetLotWithStatus(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}
	return toLotView(lotRow(row)), nil
}

// lotRow is the column set shared by the three lot queries.
type lotRow struct {
	ID          int64
	Name        string
	Capacity    int32
	Rate        string
	Location    string
	Latitude    float64
	Longitude   float64
	SpecialInfo pgtype.Text
	Occupied    pgtype.Int4
	LastUpdated pgtype.Timestamp
}

func toLotView(row lotRow) *queries.LotView {
	return &queries.LotView{
		ID:          row.ID,
		Name:        row.Name,
		Capacity:    int(row.Capacity),
		Rate:        row.Rate,
		Location:    row.Location,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		SpecialInfo: pgconv.StringPtrFromPgtype(row.SpecialInfo),
		HasStatus:   row.Occupied.Valid,
		Occupied:    int(pgconv.Int32FromPgtype(row.Occupied, 0)),
		LastUpdated: pgconv.TimePtrFromPgtype(row.LastUpdated),
	}
}
