package engine

import "math"

// MonthlyPayment returns the level monthly payment that fully amortizes
// principal over termYears at the given annual rate (decimal fraction).
// A zero rate degrades to straight-line repayment. The result is unrounded;
// rounding belongs to presentation boundaries so iterative callers do not
// compound rounding error.
func MonthlyPayment(principal, annualRate float64, termYears int) (float64, error) {
	if principal < 0 {
		return 0, invalidInput("principal", "must not be negative")
	}
	if annualRate < 0 {
		return 0, invalidInput("annual_rate", "must not be negative")
	}
	if termYears <= 0 {
		return 0, invalidInput("term_years", "must be positive")
	}

	r := annualRate / 12
	n := float64(termYears * 12)

	if r == 0 {
		return principal / n, nil
	}

	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1), nil
}
