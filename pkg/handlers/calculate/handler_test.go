package calculate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/re-tools/property-atlas/pkg/services/engine"
	"github.com/re-tools/property-atlas/pkg/store/cache"
)

type mockFeeStore struct {
	mock.Mock
}

func (m *mockFeeStore) GetFeeSchedule(ctx context.Context) domain.FeeSchedule {
	args := m.Called(ctx)
	return args.Get(0).(domain.FeeSchedule)
}

func newTestHandler() (*Handler, *mockFeeStore) {
	feeStore := new(mockFeeStore)
	return NewHandler(feeStore, cache.NewMemoryCache()), feeStore
}

func postCalculate(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/calculate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calculate(rec, req)
	return rec
}

func TestCalculate_SellerFinancing(t *testing.T) {
	h, _ := newTestHandler()

	body := `{
		"type": "seller_financing",
		"original_price": 190000,
		"current_rate": 3,
		"original_term_years": 30,
		"years_remaining": 26,
		"sale_price": 420000,
		"down_payment": 50000,
		"new_rate": 1.5,
		"loan_term_years": 30,
		"balloon_years": 11
	}`
	rec := postCalculate(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var response api.SellerFinancingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.InDelta(t, 801.05, response.CurrentPayment, 0.01)
	assert.InDelta(t, 173394.00, response.CurrentBalance, 0.01)
	assert.InDelta(t, 1276.94, response.NewMonthlyPayment, 0.01)
	assert.InDelta(t, 253194.54, response.BalloonBalance, 0.01)
}

func TestCalculate_ClosingCosts(t *testing.T) {
	h, feeStore := newTestHandler()
	feeStore.On("GetFeeSchedule", mock.Anything).Return(engine.DefaultFeeSchedule())

	body := `{
		"type": "closing_costs",
		"purchase_price": 420000,
		"loan_amount": 370000,
		"prepaid_insurance_months": 12,
		"prepaid_tax_months": 6,
		"title_rate": 0.5
	}`
	rec := postCalculate(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var response api.ClosingCostsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.InDelta(t, 3700, response.LoanOrigination, 0.01)
	assert.InDelta(t, 2100, response.TitleInsurance, 0.01)
	assert.InDelta(t, 6700, response.TotalBuyerClosing, 0.01)
	assert.InDelta(t, 23880, response.NetProceeds, 0.01)

	feeStore.AssertExpectations(t)
}

func TestCalculate_Investment(t *testing.T) {
	h, _ := newTestHandler()

	body := `{
		"type": "investment",
		"purchase_price": 200000,
		"down_payment": 40000,
		"rate": 5,
		"loan_term_years": 30,
		"monthly_rent": 2000,
		"vacancy_rate": 5
	}`
	rec := postCalculate(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var response api.InvestmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))

	assert.InDelta(t, 160000, response.LoanAmount, 0.01)
	assert.InDelta(t, 858.91, response.MonthlyPayment, 0.01)
	assert.InDelta(t, 11.4, response.CapRate, 0.01)
	assert.Len(t, response.Projections, 5)
}

func TestCalculate_Comparison(t *testing.T) {
	h, _ := newTestHandler()

	body := `{
		"type": "comparison",
		"purchase_price": 420000,
		"points_paid": 1,
		"tax_rate": 24,
		"extra_payment": 0
	}`
	rec := postCalculate(t, h, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var response api.ComparisonResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response.Scenarios, 9)
	assert.Equal(t, 360, response.Scenarios[0].MonthsToPayoff)
}

func TestCalculate_CachesIdenticalRequests(t *testing.T) {
	h, feeStore := newTestHandler()
	// a second identical request must not hit the fee store again
	feeStore.On("GetFeeSchedule", mock.Anything).Return(engine.DefaultFeeSchedule()).Once()

	body := `{"type": "closing_costs", "purchase_price": 420000, "loan_amount": 370000,
		"prepaid_insurance_months": 12, "prepaid_tax_months": 6, "title_rate": 0.5}`

	first := postCalculate(t, h, body)
	require.Equal(t, http.StatusOK, first.Code)
	second := postCalculate(t, h, body)
	require.Equal(t, http.StatusOK, second.Code)

	assert.JSONEq(t, first.Body.String(), second.Body.String())
	feeStore.AssertExpectations(t)
}

func TestCalculate_InvalidInput(t *testing.T) {
	h, _ := newTestHandler()

	body := `{"type": "investment", "purchase_price": -1, "down_payment": 0,
		"rate": 2.5, "loan_term_years": 30, "monthly_rent": 2600}`
	rec := postCalculate(t, h, body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response api.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Contains(t, response.Error, "purchase_price")
}

func TestCalculate_UnknownType(t *testing.T) {
	h, _ := newTestHandler()

	rec := postCalculate(t, h, `{"type": "mystery"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response api.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "invalid calculation type", response.Error)
}

func TestCalculate_MalformedBody(t *testing.T) {
	h, _ := newTestHandler()

	rec := postCalculate(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
