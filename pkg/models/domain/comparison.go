package domain

// ComparisonInputs drives the loan comparison grid. Leaving DownPaymentRates
// or InterestRates empty selects the default grid.
type ComparisonInputs struct {
	PurchasePrice    float64
	PointsPaid       float64 // points as percent of the loan amount
	TaxRate          float64 // marginal tax rate as a fraction
	ExtraPayment     float64 // extra monthly principal payment
	TermYears        int
	DownPaymentRates []float64
	InterestRates    []float64
}

// ComparisonScenario is one cell of the down-payment x rate grid.
type ComparisonScenario struct {
	DownPayment         float64
	DownPaymentPercent  float64
	AnnualRate          float64
	LoanAmount          float64
	MonthlyPayment      float64
	TotalMonthly        float64
	TotalInterest       float64
	MonthsToPayoff      int
	YearsToPayoff       float64
	FirstYearTaxSavings float64
	PointsCost          float64
	MonthlyPMI          float64
}

type ComparisonReport struct {
	Scenarios []ComparisonScenario
}
