package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "day month year", raw: "05/03/2024", want: "2024-03-05", wantOK: true},
		{name: "no leading zeros", raw: "5/3/2024", want: "2024-03-05", wantOK: true},
		{name: "surrounding spaces", raw: " 31/12/2023 ", want: "2023-12-31", wantOK: true},
		{name: "already iso passes through", raw: "2024-03-05", want: "2024-03-05", wantOK: false},
		{name: "invalid day passes through", raw: "31/02/2024", want: "31/02/2024", wantOK: false},
		{name: "garbage passes through", raw: "yesterday", want: "yesterday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolveAmount(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		want    string
		wantErr error
	}{
		{name: "credit is positive", row: Row{Credit: "50.00"}, want: "50"},
		{name: "negative credit is made positive", row: Row{Credit: "-50.00"}, want: "50"},
		{name: "debit is negated", row: Row{Debit: "50.00"}, want: "-50"},
		{name: "signed debit stays negative", row: Row{Debit: "-50.00"}, want: "-50"},
		{name: "credit wins over debit", row: Row{Credit: "10", Debit: "20"}, want: "10"},
		{name: "blank credit falls to debit", row: Row{Credit: "  ", Debit: "20"}, want: "-20"},
		{name: "amount keeps its sign", row: Row{Amount: "-12.34"}, want: "-12.34"},
		{name: "positive amount", row: Row{Amount: "12.34"}, want: "12.34"},
		{name: "thousands separator", row: Row{Credit: "1,250.00"}, want: "1250"},
		{name: "grouped millions", row: Row{Amount: "-1,234,567.89"}, want: "-1234567.89"},
		{name: "decimal comma is rejected", row: Row{Credit: "12,50"}, wantErr: ErrUnparseableAmount},
		{name: "misplaced commas are rejected", row: Row{Debit: "1,2,3"}, wantErr: ErrUnparseableAmount},
		{name: "too many fractional digits", row: Row{Amount: "12.345"}, wantErr: ErrUnparseableAmount},
		{name: "trailing zeros beyond scale", row: Row{Amount: "12.3400"}, want: "12.34"},
		{name: "unparseable credit", row: Row{Credit: "abc", Amount: "5"}, wantErr: ErrUnparseableAmount},
		{name: "nothing present", row: Row{}, wantErr: ErrUnparseableAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAmount(tt.row)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestNormalize(t *testing.T) {
	record, err := Normalize(Row{
		Date:        "05/03/2024",
		Description: "  TESCO STORES ",
		Debit:       "23.10",
		Category:    "Groceries",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", record.Date.Format(ISODateLayout))
	assert.Equal(t, "TESCO STORES", record.Description)
	assert.True(t, record.Amount.Equal(decimal.RequireFromString("-23.10")))
	require.NotNil(t, record.Category)
	assert.Equal(t, "Groceries", *record.Category)
}

func TestNormalize_AcceptsISODate(t *testing.T) {
	record, err := Normalize(Row{Date: "2024-03-05", Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", record.Date.Format(ISODateLayout))
	assert.Nil(t, record.Category)
}

func TestNormalize_RejectsUnknownDate(t *testing.T) {
	_, err := Normalize(Row{Date: "March 5th", Amount: "1"})
	assert.ErrorIs(t, err, ErrUnparseableDate)
}

func TestNormalize_RejectsMissingAmount(t *testing.T) {
	_, err := Normalize(Row{Date: "05/03/2024"})
	assert.ErrorIs(t, err, ErrUnparseableAmount)
}
