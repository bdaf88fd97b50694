package domain

// InvestmentInputs collects everything needed to analyze a rental purchase.
// All rates are decimal fractions; monetary amounts are annual unless the
// field name says otherwise.
type InvestmentInputs struct {
	PurchasePrice    float64
	DownPayment      float64
	AnnualRate       float64
	LoanTermYears    int
	MonthlyRent      float64
	OtherIncome      float64 // monthly ancillary income (parking, laundry, storage)
	VacancyRate      float64
	PropertyTax      float64
	Insurance        float64
	Maintenance      float64
	Utilities        float64
	ManagementRate   float64 // fraction of effective gross income
	AppreciationRate float64
	RentGrowthRate   float64
	ProjectionYears  int // 0 means the default horizon
}

// YearlyProjection is one year of the compounding appreciation forecast.
type YearlyProjection struct {
	Year           int
	PropertyValue  float64
	MonthlyRent    float64
	Equity         float64
	ReturnOnEquity float64 // percent
}

// InvestmentReport is the derived, read-only result of an investment
// analysis. Ratio fields are percentages; DSCR is a plain ratio.
type InvestmentReport struct {
	LoanAmount           float64
	MonthlyPayment       float64
	AnnualDebtService    float64
	EffectiveGrossIncome float64
	ManagementFee        float64
	TotalExpenses        float64
	NOI                  float64
	AnnualCashFlow       float64
	MonthlyCashFlow      float64
	CapRate              float64
	CashOnCash           float64
	DSCR                 float64
	ExpenseRatio         float64
	BreakEvenMonths      float64
	Projections          []YearlyProjection
}
