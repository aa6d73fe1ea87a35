package service

import (
	"context"
	"errors"
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

func newTestBillService(t *testing.T) (*BillService, *sqlconfig.MockIRecurringBillTable, *sqlconfig.MockIBillTable, *fakeProcessor) {
	t.Helper()
	recurring := sqlconfig.NewMockIRecurringBillTable(t)
	bills := sqlconfig.NewMockIBillTable(t)
	store := &storage.Storage{RecurringBills: recurring, Bills: bills}
	processor := &fakeProcessor{writer: &storage.Writer{Bills: bills}}
	svc := NewBillService(store, processor, quietLogger())
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC) }
	return svc, recurring, bills, processor
}

// -- DueDate tests --

func TestDueDate(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		dueDay  int
		want    time.Time
		wantErr bool
	}{
		{name: "mid month", year: 2024, month: time.March, dueDay: 15, want: date(2024, 3, 15)},
		{name: "last day exists", year: 2024, month: time.January, dueDay: 31, want: date(2024, 1, 31)},
		{name: "leap february clamps to 29", year: 2024, month: time.February, dueDay: 31, want: date(2024, 2, 29)},
		{name: "february clamps to 28", year: 2023, month: time.February, dueDay: 30, want: date(2023, 2, 28)},
		{name: "thirty day month", year: 2024, month: time.April, dueDay: 31, want: date(2024, 4, 30)},
		{name: "december", year: 2024, month: time.December, dueDay: 31, want: date(2024, 12, 31)},
		{name: "day zero", year: 2024, month: time.March, dueDay: 0, wantErr: true},
		{name: "day 32", year: 2024, month: time.March, dueDay: 32, wantErr: true},
		{name: "month 13", year: 2024, month: 13, dueDay: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DueDate(tt.year, tt.month, tt.dueDay)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// -- Generate tests --

func TestGenerate_IsolatesFailures(t *testing.T) {
	svc, recurring, bills, _ := newTestBillService(t)

	recurring.EXPECT().List(mock.Anything).Return([]*sqlconfig.RecurringBill{
		{ID: uuid.Must(uuid.NewV4()), Name: "Rent", Amount: decimal.NewFromInt(900), DueDay: 31},
		{ID: uuid.Must(uuid.NewV4()), Name: "Broken", Amount: decimal.NewFromInt(1), DueDay: 40},
		{ID: uuid.Must(uuid.NewV4()), Name: "Water", Amount: decimal.NewFromInt(30), DueDay: 10},
		{ID: uuid.Must(uuid.NewV4()), Name: "Power", Amount: decimal.NewFromInt(80), DueDay: 12},
	}, nil)

	bills.EXPECT().LockNameAndMonth(mock.Anything, mock.Anything, 2024, time.February).Return(nil)
	bills.EXPECT().FindByNameAndMonth(mock.Anything, "Rent", 2024, time.February).Return(nil, sqlconfig.ErrNotFound)
	bills.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.BillCreate) bool {
		return c.Name == "Rent" && c.DueDate.Equal(date(2024, 2, 29))
	})).Return(uuid.Must(uuid.NewV4()), nil)

	bills.EXPECT().FindByNameAndMonth(mock.Anything, "Water", 2024, time.February).
		Return(&sqlconfig.Bill{ID: uuid.Must(uuid.NewV4()), Name: "Water"}, nil)

	bills.EXPECT().FindByNameAndMonth(mock.Anything, "Power", 2024, time.February).Return(nil, sqlconfig.ErrNotFound)
	bills.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.BillCreate) bool {
		return c.Name == "Power"
	})).Return(uuid.Nil, errors.New("constraint violation"))

	result, err := svc.Generate(context.Background(), time.February, 2024)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Existing)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "Broken", result.Failures[0].Name)
	assert.ErrorIs(t, result.Failures[0].Err, ErrInvalid)
	assert.Equal(t, "Power", result.Failures[1].Name)
}

func TestGenerate_SecondRunCreatesNothing(t *testing.T) {
	svc, recurring, bills, _ := newTestBillService(t)

	recurring.EXPECT().List(mock.Anything).Return([]*sqlconfig.RecurringBill{
		{Name: "Rent", Amount: decimal.NewFromInt(900), DueDay: 1},
	}, nil).Times(2)

	var created *sqlconfig.Bill
	bills.EXPECT().LockNameAndMonth(mock.Anything, "Rent", 2024, time.May).Return(nil).Times(2)
	bills.EXPECT().FindByNameAndMonth(mock.Anything, "Rent", 2024, time.May).
		RunAndReturn(func(context.Context, string, int, time.Month) (*sqlconfig.Bill, error) {
			if created == nil {
				return nil, sqlconfig.ErrNotFound
			}
			return created, nil
		}).Times(2)
	bills.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *sqlconfig.BillCreate) (uuid.UUID, error) {
			created = &sqlconfig.Bill{ID: uuid.Must(uuid.NewV4()), Name: c.Name, DueDate: c.DueDate}
			return created.ID, nil
		}).Once()

	first, err := svc.Generate(context.Background(), time.May, 2024)
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), time.May, 2024)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Created)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Existing)
}

func TestGenerate_InvalidMonth(t *testing.T) {
	svc, _, _, _ := newTestBillService(t)

	_, err := svc.Generate(context.Background(), 0, 2024)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestGenerate_ListError(t *testing.T) {
	svc, recurring, _, _ := newTestBillService(t)
	recurring.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Generate(context.Background(), time.May, 2024)
	assert.EqualError(t, err, "db down")
}

// -- TogglePaid tests --

func TestTogglePaid_UsesToday(t *testing.T) {
	svc, _, bills, _ := newTestBillService(t)
	billID := uuid.Must(uuid.NewV4())

	bills.EXPECT().FindByID(mock.Anything, billID).Return(&sqlconfig.Bill{ID: billID, Name: "Rent"}, nil)
	bills.EXPECT().SetPaid(mock.Anything, billID, mock.MatchedBy(func(u *sqlconfig.BillPaidUpdate) bool {
		return u.IsPaid && u.PaidDate.Equal(date(2024, 3, 10)) && u.TransactionID == nil
	})).Return(nil)

	bill, err := svc.TogglePaid(context.Background(), billID, nil)
	require.NoError(t, err)
	assert.True(t, bill.IsPaid)
	assert.Equal(t, "Rent", bill.Name)
}

func TestTogglePaid_NotFound(t *testing.T) {
	svc, _, bills, _ := newTestBillService(t)
	bills.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.TogglePaid(context.Background(), uuid.Must(uuid.NewV4()), nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

// -- CreateBill / ListBills tests --

func TestCreateBill_Validation(t *testing.T) {
	svc, _, _, processor := newTestBillService(t)

	_, err := svc.CreateBill(context.Background(), Bill{Name: "  ", DueDate: date(2024, 1, 1)})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.CreateBill(context.Background(), Bill{Name: "Gas"})
	assert.ErrorIs(t, err, ErrInvalid)

	assert.Empty(t, processor.actions)
}

func TestCreateBill_Success(t *testing.T) {
	svc, _, bills, _ := newTestBillService(t)
	id := uuid.Must(uuid.NewV4())

	bills.EXPECT().Insert(mock.Anything, &sqlconfig.BillCreate{
		Name:    "Gas",
		DueDate: date(2024, 1, 20),
		Amount:  decimal.NewFromInt(45),
	}).Return(id, nil)

	got, err := svc.CreateBill(context.Background(), Bill{Name: " Gas ", DueDate: date(2024, 1, 20), Amount: decimal.NewFromInt(45)})
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestListBills(t *testing.T) {
	svc, _, bills, _ := newTestBillService(t)

	bills.EXPECT().List(mock.Anything, &sqlconfig.BillFilter{}).Return([]*sqlconfig.Bill{
		{Name: "Rent", DueDate: date(2024, 1, 1)},
		{Name: "Gas", DueDate: date(2024, 1, 20)},
	}, nil)

	got, err := svc.ListBills(context.Background(), TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Gas", got[1].Name)
}
