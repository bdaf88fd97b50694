package domain

// ClosingCostInputs are the caller-supplied numbers for a closing estimate.
// TitleRate is a decimal fraction of the purchase price.
type ClosingCostInputs struct {
	PurchasePrice          float64
	LoanAmount             float64
	PrepaidInsuranceMonths float64
	PrepaidTaxMonths       float64
	TitleRate              float64
}

// FeeSchedule holds the rate- and fixed-fee constants used by the closing
// cost estimate. Callers override individual entries through the fees store;
// the engine itself hardcodes nothing.
type FeeSchedule struct {
	OriginationRate       float64
	RealtorRate           float64
	TransferTaxRate       float64
	InsuranceAnnualRate   float64 // estimated annual insurance as fraction of price
	PropertyTaxAnnualRate float64 // estimated annual tax as fraction of price
	EscrowCushionMonths   float64

	AppraisalFee    float64
	CreditReportFee float64
	TaxServiceFee   float64
	FloodCertFee    float64
	RecordingFee    float64
	SellerOtherFees float64
}

// ClosingCostReport itemizes buyer and seller sides of a closing.
type ClosingCostReport struct {
	LoanOrigination   float64
	Appraisal         float64
	CreditReport      float64
	TaxService        float64
	FloodCert         float64
	TitleInsurance    float64
	RecordingFees     float64
	TotalBuyerClosing float64

	PrepaidInsurance float64
	PrepaidTax       float64
	TotalPrepaids    float64
	EscrowInsurance  float64
	EscrowTax        float64
	TotalEscrow      float64
	TotalBuyerFunds  float64

	RealtorFees      float64
	TransferTax      float64
	SellerOtherFees  float64
	TotalSellerCosts float64
	NetProceeds      float64
}
