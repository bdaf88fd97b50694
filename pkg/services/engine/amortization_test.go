package engine

import (
	"testing"

	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingBalance_ZeroPeriodsIsPrincipal(t *testing.T) {
	loan := domain.LoanTerms{Principal: 300000, AnnualRate: 0.06, TermYears: 30}

	balance, err := RemainingBalance(loan, 0)
	require.NoError(t, err)
	assert.Equal(t, loan.Principal, balance)
}

func TestRemainingBalance_AfterFiveYears(t *testing.T) {
	loan := domain.LoanTerms{Principal: 300000, AnnualRate: 0.06, TermYears: 30}

	balance, err := RemainingBalance(loan, 60)
	require.NoError(t, err)
	assert.InDelta(t, 279163.07, balance, 0.01)
}

func TestRemainingBalance_FullTermAmortizesToZero(t *testing.T) {
	loans := []domain.LoanTerms{
		{Principal: 100000, AnnualRate: 0.05, TermYears: 30},
		{Principal: 300000, AnnualRate: 0.06, TermYears: 30},
		{Principal: 190000, AnnualRate: 0.03, TermYears: 30},
		{Principal: 50000, AnnualRate: 0, TermYears: 10},
	}

	for _, loan := range loans {
		balance, err := RemainingBalance(loan, loan.Periods())
		require.NoError(t, err)
		// Floating drift over 360 iterations stays well under a cent.
		assert.InDelta(t, 0, balance, 0.01)
	}
}

func TestRemainingBalance_ElapsedBeyondTerm(t *testing.T) {
	loan := domain.LoanTerms{Principal: 100000, AnnualRate: 0.05, TermYears: 15}

	_, err := RemainingBalance(loan, loan.Periods()+1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = RemainingBalance(loan, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSchedule_RowInvariants(t *testing.T) {
	loan := domain.LoanTerms{Principal: 250000, AnnualRate: 0.045, TermYears: 30}

	records, err := Schedule(loan, 120)
	require.NoError(t, err)
	require.Len(t, records, 120)

	payment, err := MonthlyPayment(loan.Principal, loan.AnnualRate, loan.TermYears)
	require.NoError(t, err)

	prevBalance := loan.Principal
	for _, rec := range records {
		assert.InDelta(t, payment, rec.Interest+rec.Principal, 1e-8,
			"period %d: interest + principal must equal the payment", rec.Period)
		assert.InDelta(t, prevBalance-rec.Principal, rec.RemainingBalance, 1e-8,
			"period %d: balance must follow the recurrence", rec.Period)
		prevBalance = rec.RemainingBalance
	}

	// Principal portion grows while interest shrinks.
	assert.Greater(t, records[119].Principal, records[0].Principal)
	assert.Less(t, records[119].Interest, records[0].Interest)
}

func TestSchedule_ZeroRateRows(t *testing.T) {
	loan := domain.LoanTerms{Principal: 36000, AnnualRate: 0, TermYears: 3}

	records, err := Schedule(loan, loan.Periods())
	require.NoError(t, err)
	require.Len(t, records, 36)

	for _, rec := range records {
		assert.Zero(t, rec.Interest)
		assert.InDelta(t, 1000, rec.Principal, 1e-9)
	}
	assert.InDelta(t, 0, records[35].RemainingBalance, 1e-6)
}
