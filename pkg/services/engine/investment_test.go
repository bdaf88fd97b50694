package engine

import (
	"testing"

	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInvestmentInputs() domain.InvestmentInputs {
	return domain.InvestmentInputs{
		PurchasePrice: 200000,
		DownPayment:   40000,
		AnnualRate:    0.05,
		LoanTermYears: 30,
		MonthlyRent:   2000,
		VacancyRate:   0.05,
	}
}

func TestAnalyzeInvestment_CoreMetrics(t *testing.T) {
	report, err := AnalyzeInvestment(baseInvestmentInputs())
	require.NoError(t, err)

	assert.InDelta(t, 160000, report.LoanAmount, 1e-9)
	assert.InDelta(t, 22800, report.EffectiveGrossIncome, 1e-9)
	assert.InDelta(t, 858.91, report.MonthlyPayment, 0.01)
	assert.InDelta(t, 10306.98, report.AnnualDebtService, 0.01)
	assert.InDelta(t, 22800, report.NOI, 1e-9)
	assert.InDelta(t, 12493.02, report.AnnualCashFlow, 0.01)
	assert.InDelta(t, 11.4, report.CapRate, 1e-9)
	assert.InDelta(t, 31.23, report.CashOnCash, 0.01)
	assert.InDelta(t, 2.2121, report.DSCR, 0.0001)
	assert.InDelta(t, 105.26, report.BreakEvenMonths, 0.01)
	assert.Zero(t, report.ExpenseRatio)
}

func TestAnalyzeInvestment_ManagementFeeOnEffectiveIncome(t *testing.T) {
	in := baseInvestmentInputs()
	in.ManagementRate = 0.10
	in.PropertyTax = 3000
	in.Insurance = 1200
	in.Maintenance = 1800

	report, err := AnalyzeInvestment(in)
	require.NoError(t, err)

	// 10% of 22800 effective gross income, not of 24000 gross rent.
	assert.InDelta(t, 2280, report.ManagementFee, 1e-9)
	assert.InDelta(t, 3000+1200+1800+2280, report.TotalExpenses, 1e-9)
	assert.InDelta(t, 22800-report.TotalExpenses, report.NOI, 1e-9)
	assert.InDelta(t, report.TotalExpenses/22800*100, report.ExpenseRatio, 1e-9)
}

func TestAnalyzeInvestment_AncillaryIncome(t *testing.T) {
	in := baseInvestmentInputs()
	in.OtherIncome = 150

	report, err := AnalyzeInvestment(in)
	require.NoError(t, err)

	// Ancillary income is not subject to the vacancy discount.
	assert.InDelta(t, 22800+150*12, report.EffectiveGrossIncome, 1e-9)
}

func TestAnalyzeInvestment_Projection(t *testing.T) {
	in := baseInvestmentInputs()
	in.AppreciationRate = 0.03
	in.RentGrowthRate = 0.02

	report, err := AnalyzeInvestment(in)
	require.NoError(t, err)
	require.Len(t, report.Projections, DefaultProjectionYears)

	value := in.PurchasePrice
	rent := in.MonthlyRent
	for i, proj := range report.Projections {
		value *= 1.03
		rent *= 1.02
		assert.Equal(t, i+1, proj.Year)
		assert.InDelta(t, value, proj.PropertyValue, 1e-6, "year %d compounds from the prior year", proj.Year)
		assert.InDelta(t, rent, proj.MonthlyRent, 1e-6)
		assert.InDelta(t, value-report.LoanAmount, proj.Equity, 1e-6)
		assert.InDelta(t, report.AnnualCashFlow/proj.Equity*100, proj.ReturnOnEquity, 1e-6)
	}
}

func TestAnalyzeInvestment_CustomHorizon(t *testing.T) {
	in := baseInvestmentInputs()
	in.ProjectionYears = 10

	report, err := AnalyzeInvestment(in)
	require.NoError(t, err)
	assert.Len(t, report.Projections, 10)
}

func TestAnalyzeInvestment_AllCashPurchase(t *testing.T) {
	in := baseInvestmentInputs()
	in.DownPayment = in.PurchasePrice

	report, err := AnalyzeInvestment(in)
	require.NoError(t, err)

	assert.Zero(t, report.LoanAmount)
	assert.Zero(t, report.MonthlyPayment)
	assert.Zero(t, report.DSCR, "no debt service means the ratio is reported as zero")
	// Cash-on-cash still computes normally against the (nonzero) down payment.
	assert.InDelta(t, report.AnnualCashFlow/in.PurchasePrice*100, report.CashOnCash, 1e-9)
}

func TestAnalyzeInvestment_ZeroDownPaymentGuard(t *testing.T) {
	in := baseInvestmentInputs()
	in.DownPayment = 0

	report, err := AnalyzeInvestment(in)
	require.NoError(t, err)
	assert.Zero(t, report.CashOnCash)
}

func TestAnalyzeInvestment_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.InvestmentInputs)
		field  string
	}{
		{"down payment exceeds price", func(in *domain.InvestmentInputs) { in.DownPayment = in.PurchasePrice + 1 }, "down_payment"},
		{"negative rent", func(in *domain.InvestmentInputs) { in.MonthlyRent = -1 }, "monthly_rent"},
		{"vacancy above one", func(in *domain.InvestmentInputs) { in.VacancyRate = 1.5 }, "vacancy_rate"},
		{"management above one", func(in *domain.InvestmentInputs) { in.ManagementRate = 1.01 }, "management_rate"},
		{"negative tax", func(in *domain.InvestmentInputs) { in.PropertyTax = -100 }, "property_tax"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInvestmentInputs()
			tc.mutate(&in)

			_, err := AnalyzeInvestment(in)
			require.ErrorIs(t, err, ErrInvalidInput)

			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tc.field, inputErr.Field)
		})
	}
}
