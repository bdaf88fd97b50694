package engine

import (
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// AnalyzeSellerFinancing reports the payoff state of the seller's current
// mortgage next to the projected cost of the new balloon note. A balloon
// date at or past the note's full term is valid: the note simply amortizes
// to (approximately) zero before the balloon comes due.
func AnalyzeSellerFinancing(in domain.SellerFinancingInputs) (*domain.SellerFinancingReport, error) {
	if in.YearsElapsed < 0 {
		return nil, invalidInput("years_elapsed", "must not be negative")
	}
	if in.DownPayment < 0 {
		return nil, invalidInput("down_payment", "must not be negative")
	}
	if in.BalloonYears <= 0 {
		return nil, invalidInput("balloon_years", "must be positive")
	}

	currentPayment, err := MonthlyPayment(in.Current.Principal, in.Current.AnnualRate, in.Current.TermYears)
	if err != nil {
		return nil, err
	}
	currentBalance, err := RemainingBalance(in.Current, in.YearsElapsed*12)
	if err != nil {
		return nil, err
	}

	paidToDate := currentPayment * float64(in.YearsElapsed*12)
	principalPaid := in.Current.Principal - currentBalance
	interestPaid := paidToDate - principalPaid

	newPayment, err := MonthlyPayment(in.NewNote.Principal, in.NewNote.AnnualRate, in.NewNote.TermYears)
	if err != nil {
		return nil, err
	}

	// Project the new note up to the balloon date, capped at full
	// amortization so a late balloon does not drive the balance negative.
	balloonPeriods := in.BalloonYears * 12
	if balloonPeriods > in.NewNote.Periods() {
		balloonPeriods = in.NewNote.Periods()
	}

	r := in.NewNote.PeriodRate()
	balance := in.NewNote.Principal
	var totalInterest, totalPrincipal float64
	for period := 0; period < balloonPeriods; period++ {
		interest := balance * r
		principal := newPayment - interest
		balance -= principal
		totalInterest += interest
		totalPrincipal += principal
	}

	totalPayments := newPayment * float64(balloonPeriods)

	return &domain.SellerFinancingReport{
		CurrentPayment: currentPayment,
		CurrentBalance: currentBalance,
		PaidToDate:     paidToDate,
		PrincipalPaid:  principalPaid,
		InterestPaid:   interestPaid,

		NewMonthlyPayment: newPayment,
		TotalPayments:     totalPayments,
		TotalPrincipal:    totalPrincipal,
		TotalInterest:     totalInterest,
		BalloonBalance:    balance,
		TotalCost:         totalPayments + in.DownPayment + balance,
	}, nil
}
