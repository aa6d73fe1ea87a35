package bills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type mockBillService struct {
	mock.Mock
}

func (m *mockBillService) CreateBill(ctx context.Context, bill service.Bill) (uuid.UUID, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBillService) ListBills(ctx context.Context, filter service.TransactionFilter) ([]service.Bill, error) {
	args := m.Called(ctx, filter)
	bills, _ := args.Get(0).([]service.Bill)
	return bills, args.Error(1)
}

func (m *mockBillService) TogglePaid(ctx context.Context, id uuid.UUID, transactionID *uuid.UUID) (*service.Bill, error) {
	args := m.Called(ctx, id, transactionID)
	bill, _ := args.Get(0).(*service.Bill)
	return bill, args.Error(1)
}

func (m *mockBillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBillService) Generate(ctx context.Context, month time.Month, year int) (*service.GenerationResult, error) {
	args := m.Called(ctx, month, year)
	result, _ := args.Get(0).(*service.GenerationResult)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockBillService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewBillHandler(svc).Register(api)
	NewGenerateBillsHandler(svc).Register(api)
	return api
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// -- parse unit tests --

func TestParseListBillsInput(t *testing.T) {
	filter := parseListBillsInput(&ListBillsInput{})
	assert.Nil(t, filter.Month)
	assert.Nil(t, filter.Year)

	filter = parseListBillsInput(&ListBillsInput{Month: 2, Year: 2024})
	require.NotNil(t, filter.Month)
	assert.Equal(t, time.February, *filter.Month)
	assert.Equal(t, 2024, *filter.Year)

	filter = parseListBillsInput(&ListBillsInput{Month: 2})
	assert.Nil(t, filter.Month)
	assert.Nil(t, filter.Year)
}

func TestParseCreateBillInput(t *testing.T) {
	bill, err := parseCreateBillInput(&CreateBillInput{Body: CreateBillBody{
		Name:    "Dentist",
		DueDate: "2024-02-29",
		Amount:  "85.50",
	}})
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 29), bill.DueDate)
	assert.True(t, bill.Amount.Equal(decimal.RequireFromString("85.5")))

	_, err = parseCreateBillInput(&CreateBillInput{Body: CreateBillBody{Name: "x", DueDate: "29/02/2024", Amount: "1"}})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListBills(t *testing.T) {
	billID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	paid := date(2024, time.March, 2)
	month := time.March
	year := 2024

	svc := new(mockBillService)
	svc.On("ListBills", mock.Anything, service.TransactionFilter{Month: &month, Year: &year}).
		Return([]service.Bill{{
			ID:            billID,
			Name:          "Rent",
			DueDate:       date(2024, time.March, 1),
			Amount:        decimal.RequireFromString("1200"),
			IsPaid:        true,
			PaidDate:      &paid,
			TransactionID: &txID,
		}}, nil)

	resp := newTestAPI(t, svc).Get("/v1/bills?month=3&year=2024")

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Bills []Bill `json:"bills"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Bills, 1)
	assert.Equal(t, Bill{
		ID:            billID.String(),
		Name:          "Rent",
		DueDate:       "2024-03-01",
		Amount:        "1200.00",
		IsPaid:        true,
		PaidDate:      "2024-03-02",
		TransactionID: txID.String(),
	}, body.Bills[0])
	svc.AssertExpectations(t)
}

func TestHTTP_CreateBill(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockBillService)
	svc.On("CreateBill", mock.Anything, mock.MatchedBy(func(b service.Bill) bool {
		return b.Name == "Dentist" && b.DueDate.Equal(date(2024, time.April, 10))
	})).Return(id, nil)

	resp := newTestAPI(t, svc).Post("/v1/bills", CreateBillBody{
		Name:    "Dentist",
		DueDate: "2024-04-10",
		Amount:  "85.50",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), id.String())
}

func TestHTTP_CreateBill_ServiceValidation(t *testing.T) {
	svc := new(mockBillService)
	svc.On("CreateBill", mock.Anything, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("%w: bill name is required", service.ErrInvalid))

	resp := newTestAPI(t, svc).Post("/v1/bills", CreateBillBody{
		Name:    " ",
		DueDate: "2024-04-10",
		Amount:  "1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_TogglePaid_WithTransaction(t *testing.T) {
	billID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	paid := date(2024, time.March, 5)

	svc := new(mockBillService)
	svc.On("TogglePaid", mock.Anything, billID, &txID).Return(&service.Bill{
		ID:            billID,
		Name:          "Rent",
		DueDate:       date(2024, time.March, 1),
		Amount:        decimal.RequireFromString("1200"),
		IsPaid:        true,
		PaidDate:      &paid,
		TransactionID: &txID,
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/bills/"+billID.String()+"/toggle-paid",
		TogglePaidBody{TransactionID: txID.String()})

	require.Equal(t, http.StatusOK, resp.Code)
	var body Bill
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsPaid)
	assert.Equal(t, "2024-03-05", body.PaidDate)
	assert.Equal(t, txID.String(), body.TransactionID)
	svc.AssertExpectations(t)
}

func TestHTTP_TogglePaid_NoBody(t *testing.T) {
	billID := uuid.Must(uuid.NewV4())
	svc := new(mockBillService)
	svc.On("TogglePaid", mock.Anything, billID, (*uuid.UUID)(nil)).Return(&service.Bill{
		ID:      billID,
		Name:    "Rent",
		DueDate: date(2024, time.March, 1),
		Amount:  decimal.RequireFromString("1200"),
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/bills/" + billID.String() + "/toggle-paid")

	require.Equal(t, http.StatusOK, resp.Code)
	var body Bill
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.IsPaid)
	assert.Empty(t, body.PaidDate)
}

func TestHTTP_TogglePaid_NotFound(t *testing.T) {
	billID := uuid.Must(uuid.NewV4())
	svc := new(mockBillService)
	svc.On("TogglePaid", mock.Anything, billID, (*uuid.UUID)(nil)).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Post("/v1/bills/" + billID.String() + "/toggle-paid")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_TogglePaid_BadTransactionID(t *testing.T) {
	svc := new(mockBillService)

	resp := newTestAPI(t, svc).Post("/v1/bills/"+uuid.Must(uuid.NewV4()).String()+"/toggle-paid",
		TogglePaidBody{TransactionID: "nope"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "TogglePaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_DeleteBill(t *testing.T) {
	billID := uuid.Must(uuid.NewV4())
	svc := new(mockBillService)
	svc.On("DeleteBill", mock.Anything, billID).Return(nil)

	resp := newTestAPI(t, svc).Delete("/v1/bills/" + billID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_GenerateBills(t *testing.T) {
	templateID := uuid.Must(uuid.NewV4())
	svc := new(mockBillService)
	svc.On("Generate", mock.Anything, time.February, 2024).Return(&service.GenerationResult{
		Month:    time.February,
		Year:     2024,
		Created:  2,
		Existing: 1,
		Failures: []service.GenerationFailure{{
			TemplateID: templateID,
			Name:       "Broken",
			Err:        errors.New("due day 0 is outside 1..31"),
		}},
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/bills/generate", GenerateBillsBody{Month: 2, Year: 2024})

	require.Equal(t, http.StatusOK, resp.Code)
	var body GenerateBillsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Created)
	assert.Equal(t, 1, body.Existing)
	require.Len(t, body.Failures, 1)
	assert.Equal(t, templateID.String(), body.Failures[0].TemplateID)
	assert.Contains(t, body.Failures[0].Error, "outside 1..31")
}

func TestHTTP_GenerateBills_RejectsBadMonth(t *testing.T) {
	svc := new(mockBillService)

	resp := newTestAPI(t, svc).Post("/v1/bills/generate", GenerateBillsBody{Month: 13, Year: 2024})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}
