package domain

// LoanTerms describes an amortizing loan. AnnualRate is a decimal fraction
// (0.065 for 6.5%), never a whole-number percentage.
type LoanTerms struct {
	Principal  float64
	AnnualRate float64
	TermYears  int
}

// PeriodRate returns the effective monthly rate.
func (l LoanTerms) PeriodRate() float64 {
	return l.AnnualRate / 12
}

// Periods returns the total number of monthly payments over the full term.
func (l LoanTerms) Periods() int {
	return l.TermYears * 12
}

// PeriodRecord is a single row of an amortization schedule.
// Interest + Principal equals the level payment up to floating drift, and
// RemainingBalance carries forward as balance_n = balance_{n-1} - principal_n.
type PeriodRecord struct {
	Period           int
	Payment          float64
	Interest         float64
	Principal        float64
	RemainingBalance float64
}
