package engine

import (
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// DefaultProjectionYears is the appreciation forecast horizon used when
// InvestmentInputs does not request one.
const DefaultProjectionYears = 5

// AnalyzeInvestment derives the standard rental metrics (NOI, cap rate,
// cash-on-cash, DSCR) and a compounding multi-year projection from the
// caller's inputs. The management fee is charged on effective gross income,
// not gross rent.
func AnalyzeInvestment(in domain.InvestmentInputs) (*domain.InvestmentReport, error) {
	if err := validateInvestment(in); err != nil {
		return nil, err
	}

	loanAmount := in.PurchasePrice - in.DownPayment

	effectiveGross := in.MonthlyRent*12*(1-in.VacancyRate) + in.OtherIncome*12
	managementFee := in.ManagementRate * effectiveGross
	totalExpenses := in.PropertyTax + in.Insurance + in.Maintenance + in.Utilities + managementFee

	payment, err := MonthlyPayment(loanAmount, in.AnnualRate, in.LoanTermYears)
	if err != nil {
		return nil, err
	}
	annualDebtService := payment * 12

	noi := effectiveGross - totalExpenses
	cashFlow := noi - annualDebtService

	var capRate float64
	if in.PurchasePrice > 0 {
		capRate = noi / in.PurchasePrice * 100
	}
	var cashOnCash float64
	if in.DownPayment > 0 {
		cashOnCash = cashFlow / in.DownPayment * 100
	}
	var dscr float64
	if annualDebtService > 0 {
		dscr = noi / annualDebtService
	}
	var expenseRatio float64
	if effectiveGross > 0 {
		expenseRatio = totalExpenses / effectiveGross * 100
	}
	var breakEven float64
	if noi > 0 {
		breakEven = in.PurchasePrice / (noi / 12)
	}

	horizon := in.ProjectionYears
	if horizon <= 0 {
		horizon = DefaultProjectionYears
	}

	value := in.PurchasePrice
	rent := in.MonthlyRent
	projections := make([]domain.YearlyProjection, 0, horizon)
	for year := 1; year <= horizon; year++ {
		value *= 1 + in.AppreciationRate
		rent *= 1 + in.RentGrowthRate
		equity := value - loanAmount

		var returnOnEquity float64
		if equity != 0 {
			returnOnEquity = cashFlow / equity * 100
		}
		projections = append(projections, domain.YearlyProjection{
			Year:           year,
			PropertyValue:  value,
			MonthlyRent:    rent,
			Equity:         equity,
			ReturnOnEquity: returnOnEquity,
		})
	}

	return &domain.InvestmentReport{
		LoanAmount:           loanAmount,
		MonthlyPayment:       payment,
		AnnualDebtService:    annualDebtService,
		EffectiveGrossIncome: effectiveGross,
		ManagementFee:        managementFee,
		TotalExpenses:        totalExpenses,
		NOI:                  noi,
		AnnualCashFlow:       cashFlow,
		MonthlyCashFlow:      cashFlow / 12,
		CapRate:              capRate,
		CashOnCash:           cashOnCash,
		DSCR:                 dscr,
		ExpenseRatio:         expenseRatio,
		BreakEvenMonths:      breakEven,
		Projections:          projections,
	}, nil
}

func validateInvestment(in domain.InvestmentInputs) error {
	switch {
	case in.PurchasePrice < 0:
		return invalidInput("purchase_price", "must not be negative")
	case in.DownPayment < 0:
		return invalidInput("down_payment", "must not be negative")
	case in.DownPayment > in.PurchasePrice:
		return invalidInput("down_payment", "exceeds the purchase price")
	case in.MonthlyRent < 0:
		return invalidInput("monthly_rent", "must not be negative")
	case in.OtherIncome < 0:
		return invalidInput("other_income", "must not be negative")
	case in.VacancyRate < 0 || in.VacancyRate > 1:
		return invalidInput("vacancy_rate", "must be between 0 and 1")
	case in.ManagementRate < 0 || in.ManagementRate > 1:
		return invalidInput("management_rate", "must be between 0 and 1")
	case in.PropertyTax < 0:
		return invalidInput("property_tax", "must not be negative")
	case in.Insurance < 0:
		return invalidInput("insurance", "must not be negative")
	case in.Maintenance < 0:
		return invalidInput("maintenance", "must not be negative")
	case in.Utilities < 0:
		return invalidInput("utilities", "must not be negative")
	case in.AppreciationRate < 0:
		return invalidInput("appreciation_rate", "must not be negative")
	case in.RentGrowthRate < 0:
		return invalidInput("rent_growth_rate", "must not be negative")
	}
	return nil
}
