package engine

import (
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// RemainingBalance projects the loan balance after periodsElapsed monthly
// payments by splitting each payment into its interest and principal parts.
// At full term the result is approximately zero; floating drift stays below
// a cent per $100k over a 360-period loan.
func RemainingBalance(loan domain.LoanTerms, periodsElapsed int) (float64, error) {
	if periodsElapsed < 0 {
		return 0, invalidInput("periods_elapsed", "must not be negative")
	}
	if periodsElapsed > loan.Periods() {
		return 0, invalidInput("periods_elapsed", "exceeds the loan term")
	}

	payment, err := MonthlyPayment(loan.Principal, loan.AnnualRate, loan.TermYears)
	if err != nil {
		return 0, err
	}

	r := loan.PeriodRate()
	balance := loan.Principal
	for period := 0; period < periodsElapsed; period++ {
		interest := balance * r
		balance -= payment - interest
	}
	return balance, nil
}

// Schedule materializes the first periods rows of the amortization table.
// Zero-rate loans still loop so callers get correct zero-interest rows.
func Schedule(loan domain.LoanTerms, periods int) ([]domain.PeriodRecord, error) {
	if periods < 0 {
		return nil, invalidInput("periods", "must not be negative")
	}
	if periods > loan.Periods() {
		return nil, invalidInput("periods", "exceeds the loan term")
	}

	payment, err := MonthlyPayment(loan.Principal, loan.AnnualRate, loan.TermYears)
	if err != nil {
		return nil, err
	}

	r := loan.PeriodRate()
	balance := loan.Principal
	records := make([]domain.PeriodRecord, 0, periods)
	for period := 1; period <= periods; period++ {
		interest := balance * r
		principal := payment - interest
		balance -= principal

		records = append(records, domain.PeriodRecord{
			Period:           period,
			Payment:          payment,
			Interest:         interest,
			Principal:        principal,
			RemainingBalance: balance,
		})
	}
	return records, nil
}
