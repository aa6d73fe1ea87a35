package actions

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

func newImportWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockIImportTable, *sqlconfig.MockITransactionTable) {
	t.Helper()
	imports := sqlconfig.NewMockIImportTable(t)
	transactions := sqlconfig.NewMockITransactionTable(t)
	return &storage.Writer{Imports: imports, Transactions: transactions}, imports, transactions
}

func openString(content string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// -- ImportStatement tests --

func TestImportStatement_ImportsRowsAndSpan(t *testing.T) {
	writer, imports, transactions := newImportWriter(t)
	importID := uuid.Must(uuid.NewV4())

	imports.EXPECT().Claim(mock.Anything, mock.MatchedBy(func(c *sqlconfig.ImportCreate) bool {
		return c.Filename == "march.csv"
	})).Return(importID, true, nil)

	var inserted []*sqlconfig.TransactionCreate
	transactions.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *sqlconfig.TransactionCreate) (uuid.UUID, error) {
			inserted = append(inserted, c)
			return uuid.Must(uuid.NewV4()), nil
		}).Times(3)

	imports.EXPECT().UpdateSpan(mock.Anything, importID, day(2024, 3, 1), day(2024, 3, 20)).Return(nil)

	action := &ImportStatement{
		Filename: "march.csv",
		Open: openString("Date,Description,Credit,Debit\n" +
			"05/03/2024,SALARY,2000.00,\n" +
			"20/03/2024,RENT,,950.00\n" +
			"bad date,IGNORED,,1.00\n" +
			"01/03/2024,CAFE,,abc\n" +
			"01/03/2024,REFUND,3.50,\n"),
		UploadDate: time.Now(),
	}

	err := action.Perform(context.Background(), writer)
	require.NoError(t, err)

	assert.Equal(t, importID, action.ImportID)
	assert.Equal(t, 3, action.Imported)
	assert.Equal(t, 2, action.RowsSkipped)
	require.Len(t, inserted, 3)
	assert.True(t, inserted[0].Amount.Equal(decimal.RequireFromString("2000")))
	assert.True(t, inserted[1].Amount.Equal(decimal.RequireFromString("-950")))
	assert.Equal(t, "march.csv", inserted[1].SourceFile)
	assert.Equal(t, importID, inserted[2].ImportID)
}

func TestImportStatement_Duplicate(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Nil, false, nil)

	opened := false
	action := &ImportStatement{
		Filename: "march.csv",
		Open: func() (io.ReadCloser, error) {
			opened = true
			return nil, errors.New("should not open")
		},
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrDuplicateImport)
	assert.False(t, opened)
}

func TestImportStatement_ZeroBytes(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), true, nil)

	action := &ImportStatement{Filename: "empty.csv", Open: openString("")}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestImportStatement_HeaderOnly(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), true, nil)

	action := &ImportStatement{Filename: "header.csv", Open: openString("Date,Description,Amount\n")}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestImportStatement_Unreadable(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), true, nil)

	action := &ImportStatement{
		Filename: "gone.csv",
		Open: func() (io.ReadCloser, error) {
			return nil, errors.New("permission denied")
		},
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestImportStatement_OnlySkippedRowsStillRecorded(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), true, nil)

	action := &ImportStatement{
		Filename: "junk.csv",
		Open:     openString("Date,Description,Amount\n05/03/2024,x,n/a\n"),
	}

	err := action.Perform(context.Background(), writer)
	require.NoError(t, err)
	assert.Equal(t, 0, action.Imported)
	assert.Equal(t, 1, action.RowsSkipped)
	assert.Nil(t, action.StartDate)
}

func TestImportStatement_MissingColumnsFailsBatch(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), true, nil)

	action := &ImportStatement{Filename: "odd.csv", Open: openString("When,What\n1,2\n")}

	err := action.Perform(context.Background(), writer)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}

func TestImportStatement_InsertErrorFailsBatch(t *testing.T) {
	writer, imports, transactions := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Must(uuid.NewV4()), true, nil)
	transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("connection reset"))

	action := &ImportStatement{
		Filename: "march.csv",
		Open:     openString("Date,Description,Amount\n05/03/2024,x,1.00\n06/03/2024,y,2.00\n"),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorContains(t, err, "connection reset")
}

func TestImportStatement_ClaimError(t *testing.T) {
	writer, imports, _ := newImportWriter(t)
	imports.EXPECT().Claim(mock.Anything, mock.Anything).Return(uuid.Nil, false, errors.New("db down"))

	action := &ImportStatement{Filename: "march.csv", Open: openString("")}

	err := action.Perform(context.Background(), writer)
	assert.ErrorContains(t, err, "db down")
	assert.NotErrorIs(t, err, ErrDuplicateImport)
}
