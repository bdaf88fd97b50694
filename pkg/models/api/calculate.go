package api

// CalculationType discriminates calculate requests.
type CalculationType string

const (
	TypeSellerFinancing CalculationType = "seller_financing"
	TypeInvestment      CalculationType = "investment"
	TypeClosingCosts    CalculationType = "closing_costs"
	TypeComparison      CalculationType = "comparison"
)

// All rate fields on request types are whole-number percentages as entered
// by a user (6.5 means 6.5%). Adapters normalize them to fractions before
// anything reaches the engine.

type SellerFinancingRequest struct {
	Type CalculationType `json:"type"`

	OriginalPrice     float64 `json:"original_price"`
	CurrentRate       float64 `json:"current_rate"`
	OriginalTermYears int     `json:"original_term_years"`
	YearsRemaining    int     `json:"years_remaining"`

	SalePrice     float64 `json:"sale_price"`
	DownPayment   float64 `json:"down_payment"`
	NewRate       float64 `json:"new_rate"`
	LoanTermYears int     `json:"loan_term_years"`
	BalloonYears  int     `json:"balloon_years"`
}

type InvestmentRequest struct {
	Type CalculationType `json:"type"`

	PurchasePrice   float64 `json:"purchase_price"`
	DownPayment     float64 `json:"down_payment"`
	Rate            float64 `json:"rate"`
	LoanTermYears   int     `json:"loan_term_years"`
	MonthlyRent     float64 `json:"monthly_rent"`
	OtherIncome     float64 `json:"other_income"`
	VacancyRate     float64 `json:"vacancy_rate"`
	PropertyTax     float64 `json:"property_tax"`
	Insurance       float64 `json:"insurance"`
	Maintenance     float64 `json:"maintenance"`
	Utilities       float64 `json:"utilities"`
	ManagementFee   float64 `json:"management_fee"`
	Appreciation    float64 `json:"appreciation_rate"`
	RentIncrease    float64 `json:"rent_increase_rate"`
	ProjectionYears int     `json:"projection_years,omitempty"`
}

type ClosingCostsRequest struct {
	Type CalculationType `json:"type"`

	PurchasePrice          float64 `json:"purchase_price"`
	LoanAmount             float64 `json:"loan_amount"`
	PrepaidInsuranceMonths float64 `json:"prepaid_insurance_months"`
	PrepaidTaxMonths       float64 `json:"prepaid_tax_months"`
	TitleRate              float64 `json:"title_rate"`
}

type ComparisonRequest struct {
	Type CalculationType `json:"type"`

	PurchasePrice float64 `json:"purchase_price"`
	PointsPaid    float64 `json:"points_paid"`
	TaxRate       float64 `json:"tax_rate"`
	ExtraPayment  float64 `json:"extra_payment"`
	TermYears     int     `json:"term_years,omitempty"`
}

// Responses carry 2-decimal rounded values; break_even_months is rounded to
// whole months.

type SellerFinancingResponse struct {
	CurrentPayment float64 `json:"current_payment"`
	CurrentBalance float64 `json:"current_balance"`
	PaidToDate     float64 `json:"paid_to_date"`
	PrincipalPaid  float64 `json:"principal_paid"`
	InterestPaid   float64 `json:"interest_paid"`

	NewMonthlyPayment float64 `json:"new_monthly_payment"`
	TotalPayments     float64 `json:"total_payments"`
	TotalPrincipal    float64 `json:"total_principal"`
	TotalInterest     float64 `json:"total_interest"`
	BalloonBalance    float64 `json:"balloon_balance"`
	TotalCost         float64 `json:"total_cost"`
}

type YearlyProjection struct {
	Year           int     `json:"year"`
	PropertyValue  float64 `json:"property_value"`
	MonthlyRent    float64 `json:"monthly_rent"`
	Equity         float64 `json:"equity"`
	ReturnOnEquity float64 `json:"return_on_equity"`
}

type InvestmentResponse struct {
	LoanAmount           float64            `json:"loan_amount"`
	MonthlyPayment       float64            `json:"monthly_payment"`
	AnnualDebtService    float64            `json:"annual_debt_service"`
	EffectiveGrossIncome float64            `json:"effective_gross_income"`
	ManagementFee        float64            `json:"management_fee"`
	TotalExpenses        float64            `json:"total_expenses"`
	NOI                  float64            `json:"noi"`
	AnnualCashFlow       float64            `json:"annual_cash_flow"`
	MonthlyCashFlow      float64            `json:"monthly_cash_flow"`
	CapRate              float64            `json:"cap_rate"`
	CashOnCash           float64            `json:"cash_on_cash"`
	DSCR                 float64            `json:"dscr"`
	ExpenseRatio         float64            `json:"expense_ratio"`
	BreakEvenMonths      float64            `json:"break_even_months"`
	Projections          []YearlyProjection `json:"projections"`
}

type ClosingCostsResponse struct {
	LoanOrigination   float64 `json:"loan_origination"`
	Appraisal         float64 `json:"appraisal"`
	CreditReport      float64 `json:"credit_report"`
	TaxService        float64 `json:"tax_service"`
	FloodCert         float64 `json:"flood_certification"`
	TitleInsurance    float64 `json:"title_insurance"`
	RecordingFees     float64 `json:"recording_fees"`
	TotalBuyerClosing float64 `json:"total_buyer_closing"`

	PrepaidInsurance float64 `json:"prepaid_insurance"`
	PrepaidTax       float64 `json:"prepaid_tax"`
	TotalPrepaids    float64 `json:"total_prepaids"`
	EscrowInsurance  float64 `json:"escrow_insurance"`
	EscrowTax        float64 `json:"escrow_tax"`
	TotalEscrow      float64 `json:"total_escrow"`
	TotalBuyerFunds  float64 `json:"total_buyer_funds"`

	RealtorFees      float64 `json:"realtor_fees"`
	TransferTax      float64 `json:"transfer_tax"`
	SellerOtherFees  float64 `json:"seller_other_fees"`
	TotalSellerCosts float64 `json:"total_seller_costs"`
	NetProceeds      float64 `json:"net_proceeds"`
}

type ComparisonScenario struct {
	DownPayment         float64 `json:"down_payment"`
	DownPaymentPercent  float64 `json:"down_payment_percent"`
	Rate                float64 `json:"rate"`
	LoanAmount          float64 `json:"loan_amount"`
	MonthlyPayment      float64 `json:"monthly_payment"`
	TotalMonthly        float64 `json:"total_monthly"`
	TotalInterest       float64 `json:"total_interest"`
	MonthsToPayoff      int     `json:"months_to_payoff"`
	YearsToPayoff       float64 `json:"years_to_payoff"`
	FirstYearTaxSavings float64 `json:"first_year_tax_savings"`
	PointsCost          float64 `json:"points_cost"`
	MonthlyPMI          float64 `json:"monthly_pmi"`
}

type ComparisonResponse struct {
	Scenarios []ComparisonScenario `json:"scenarios"`
}

// Error is the uniform error envelope of the calculate API.
type Error struct {
	Error string `json:"error"`
}
