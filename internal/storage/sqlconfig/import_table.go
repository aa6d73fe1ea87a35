package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IImportTable = (*ImportsTable)(nil)

const importsTable = "imports"

var importColumns = []any{"id", "filename", "start_date", "end_date", "upload_date"}

type ImportsTable struct {
	exec bob.Executor
}

func NewImportsTable(exec bob.Executor) *ImportsTable {
	return &ImportsTable{exec: exec}
}

// Claim relies on the unique filename index so concurrent importers of the
// same file cannot both succeed.
func (t *ImportsTable) Claim(ctx context.Context, create *ImportCreate) (uuid.UUID, bool, error) {
	q := psql.Insert(
		im.Into(importsTable, "filename", "upload_date"),
		im.Values(psql.Arg(create.Filename, create.UploadDate)),
		im.OnConflict("filename").DoNothing(),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

func (t *ImportsTable) FindByFilename(ctx context.Context, filename string) (*Import, error) {
	q := psql.Select(
		sm.Columns(importColumns...),
		sm.From(importsTable),
		sm.Where(psql.Quote("filename").EQ(psql.Arg(filename))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Import]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}

// UpdateSpan records the first and last transaction date of the batch.
func (t *ImportsTable) UpdateSpan(ctx context.Context, id uuid.UUID, start, end time.Time) error {
	q := psql.Update(
		um.Table(importsTable),
		um.SetCol("start_date").ToArg(start),
		um.SetCol("end_date").ToArg(end),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return execAffectingOne(ctx, t.exec, q)
}

// List returns every import, most recent upload first.
func (t *ImportsTable) List(ctx context.Context) ([]*Import, error) {
	q := psql.Select(
		sm.Columns(importColumns...),
		sm.From(importsTable),
		sm.OrderBy(psql.Quote("upload_date")).Desc(),
		sm.OrderBy(psql.Quote("filename")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Import]())
}
