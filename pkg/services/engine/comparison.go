package engine

import (
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

const defaultComparisonTermYears = 30

// pmiAnnualRate is the annual PMI charge as a fraction of the loan amount,
// applied when the down payment is under 20% of the price.
const pmiAnnualRate = 0.005

var (
	defaultDownPaymentRates = []float64{0.12, 0.20, 0.30}
	defaultInterestRates    = []float64{0.015, 0.02, 0.025}
)

// CompareLoans evaluates a down-payment x interest-rate grid of financing
// scenarios, including early payoff under an extra monthly payment, PMI,
// points cost and first-year interest tax savings.
func CompareLoans(in domain.ComparisonInputs) (*domain.ComparisonReport, error) {
	switch {
	case in.PurchasePrice <= 0:
		return nil, invalidInput("purchase_price", "must be positive")
	case in.PointsPaid < 0:
		return nil, invalidInput("points_paid", "must not be negative")
	case in.TaxRate < 0 || in.TaxRate > 1:
		return nil, invalidInput("tax_rate", "must be between 0 and 1")
	case in.ExtraPayment < 0:
		return nil, invalidInput("extra_payment", "must not be negative")
	case in.TermYears < 0:
		return nil, invalidInput("term_years", "must not be negative")
	}

	term := in.TermYears
	if term == 0 {
		term = defaultComparisonTermYears
	}
	downRates := in.DownPaymentRates
	if len(downRates) == 0 {
		downRates = defaultDownPaymentRates
	}
	rates := in.InterestRates
	if len(rates) == 0 {
		rates = defaultInterestRates
	}

	report := &domain.ComparisonReport{}
	for _, downRate := range downRates {
		downPayment := in.PurchasePrice * downRate
		for _, rate := range rates {
			if rate < 0 {
				return nil, invalidInput("interest_rates", "must not be negative")
			}

			loanAmount := in.PurchasePrice - downPayment
			basePayment, err := MonthlyPayment(loanAmount, rate, term)
			if err != nil {
				return nil, err
			}

			totalMonthly := basePayment + in.ExtraPayment
			months, totalInterest := payoff(loanAmount, rate, totalMonthly, term*12)

			var monthlyPMI float64
			if downPayment < in.PurchasePrice*0.2 {
				monthlyPMI = loanAmount * pmiAnnualRate / 12
			}

			report.Scenarios = append(report.Scenarios, domain.ComparisonScenario{
				DownPayment:         downPayment,
				DownPaymentPercent:  downRate * 100,
				AnnualRate:          rate,
				LoanAmount:          loanAmount,
				MonthlyPayment:      basePayment,
				TotalMonthly:        totalMonthly,
				TotalInterest:       totalInterest,
				MonthsToPayoff:      months,
				YearsToPayoff:       float64(months) / 12,
				FirstYearTaxSavings: loanAmount * rate * in.TaxRate,
				PointsCost:          loanAmount * in.PointsPaid / 100,
				MonthlyPMI:          monthlyPMI,
			})
		}
	}
	return report, nil
}

// payoff runs the balance-decay loop with a fixed total monthly payment,
// capped at maxMonths so a payment below the accruing interest terminates.
func payoff(loanAmount, annualRate, payment float64, maxMonths int) (int, float64) {
	balance := loanAmount
	r := annualRate / 12
	months := 0
	var totalInterest float64
	for balance > 0 && months < maxMonths {
		interest := balance * r
		totalInterest += interest
		balance -= payment - interest
		months++
	}
	return months, totalInterest
}
