package engine

import (
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// DefaultFeeSchedule returns the illustrative fee constants used when no
// override is configured. Callers and tests substitute their own schedule.
func DefaultFeeSchedule() domain.FeeSchedule {
	return domain.FeeSchedule{
		OriginationRate:       0.01,
		RealtorRate:           0.06,
		TransferTaxRate:       0.001,
		InsuranceAnnualRate:   0.003,
		PropertyTaxAnnualRate: 0.015,
		EscrowCushionMonths:   2,

		AppraisalFee:    500,
		CreditReportFee: 50,
		TaxServiceFee:   75,
		FloodCertFee:    25,
		RecordingFee:    250,
		SellerOtherFees: 500,
	}
}

// EstimateClosingCosts aggregates rate-based and fixed closing fees into
// buyer and seller totals. Pure arithmetic; every constant comes from the
// fee schedule.
func EstimateClosingCosts(in domain.ClosingCostInputs, fees domain.FeeSchedule) (*domain.ClosingCostReport, error) {
	switch {
	case in.PurchasePrice < 0:
		return nil, invalidInput("purchase_price", "must not be negative")
	case in.LoanAmount < 0:
		return nil, invalidInput("loan_amount", "must not be negative")
	case in.LoanAmount > in.PurchasePrice:
		return nil, invalidInput("loan_amount", "exceeds the purchase price")
	case in.PrepaidInsuranceMonths < 0:
		return nil, invalidInput("prepaid_insurance_months", "must not be negative")
	case in.PrepaidTaxMonths < 0:
		return nil, invalidInput("prepaid_tax_months", "must not be negative")
	case in.TitleRate < 0:
		return nil, invalidInput("title_rate", "must not be negative")
	}

	loanOrigination := in.LoanAmount * fees.OriginationRate
	titleInsurance := in.PurchasePrice * in.TitleRate
	totalBuyerClosing := loanOrigination + fees.AppraisalFee + fees.CreditReportFee +
		fees.TaxServiceFee + fees.FloodCertFee + titleInsurance + fees.RecordingFee

	insuranceAnnual := in.PurchasePrice * fees.InsuranceAnnualRate
	taxAnnual := in.PurchasePrice * fees.PropertyTaxAnnualRate
	prepaidInsurance := insuranceAnnual / 12 * in.PrepaidInsuranceMonths
	prepaidTax := taxAnnual / 12 * in.PrepaidTaxMonths
	escrowInsurance := insuranceAnnual / 12 * fees.EscrowCushionMonths
	escrowTax := taxAnnual / 12 * fees.EscrowCushionMonths

	realtorFees := in.PurchasePrice * fees.RealtorRate
	transferTax := in.PurchasePrice * fees.TransferTaxRate
	totalSellerCosts := realtorFees + transferTax + fees.SellerOtherFees

	return &domain.ClosingCostReport{
		LoanOrigination:   loanOrigination,
		Appraisal:         fees.AppraisalFee,
		CreditReport:      fees.CreditReportFee,
		TaxService:        fees.TaxServiceFee,
		FloodCert:         fees.FloodCertFee,
		TitleInsurance:    titleInsurance,
		RecordingFees:     fees.RecordingFee,
		TotalBuyerClosing: totalBuyerClosing,

		PrepaidInsurance: prepaidInsurance,
		PrepaidTax:       prepaidTax,
		TotalPrepaids:    prepaidInsurance + prepaidTax,
		EscrowInsurance:  escrowInsurance,
		EscrowTax:        escrowTax,
		TotalEscrow:      escrowInsurance + escrowTax,
		TotalBuyerFunds:  totalBuyerClosing + prepaidInsurance + prepaidTax + escrowInsurance + escrowTax,

		RealtorFees:      realtorFees,
		TransferTax:      transferTax,
		SellerOtherFees:  fees.SellerOtherFees,
		TotalSellerCosts: totalSellerCosts,
		NetProceeds:      in.PurchasePrice - totalSellerCosts - in.LoanAmount,
	}, nil
}
