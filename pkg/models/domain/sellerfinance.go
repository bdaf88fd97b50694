package domain

// SellerFinancingInputs describes a seller-financing deal: the seller's
// existing mortgage and the new note carried for the buyer. NewNote.Principal
// and DownPayment are both caller-supplied; the engine does not infer one
// from the sale price.
type SellerFinancingInputs struct {
	Current      LoanTerms
	YearsElapsed int
	NewNote      LoanTerms
	DownPayment  float64
	BalloonYears int
}

// SellerFinancingReport pairs the payoff state of the current mortgage with
// the projected cost of the new balloon note.
type SellerFinancingReport struct {
	CurrentPayment float64
	CurrentBalance float64
	PaidToDate     float64
	PrincipalPaid  float64
	InterestPaid   float64

	NewMonthlyPayment float64
	TotalPayments     float64
	TotalPrincipal    float64
	TotalInterest     float64
	BalloonBalance    float64
	TotalCost         float64
}
