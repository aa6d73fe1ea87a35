package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Import is the ledger record of one ingested statement file.
type Import struct {
	ID         uuid.UUID  `db:"id"`
	Filename   string     `db:"filename"`
	StartDate  *time.Time `db:"start_date"`
	EndDate    *time.Time `db:"end_date"`
	UploadDate time.Time  `db:"upload_date"`
}

type ImportCreate struct {
	Filename   string
	UploadDate time.Time
}

// IImportTable defines the interface for import ledger storage operations.
//
//go:generate mockery --name IImportTable --output . --outpkg sqlconfig --inpackage --with-expecter
type IImportTable interface {
	// Claim inserts the ledger row unless the filename is already recorded.
	// claimed is false, with no error, when another import owns the filename.
	Claim(ctx context.Context, create *ImportCreate) (id uuid.UUID, claimed bool, err error)
	FindByFilename(ctx context.Context, filename string) (*Import, error)
	UpdateSpan(ctx context.Context, id uuid.UUID, start, end time.Time) error
	List(ctx context.Context) ([]*Import, error)
}
