package adapters

import (
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

func MapClosingCostsRequestToDomainInputs(req api.ClosingCostsRequest) domain.ClosingCostInputs {
	return domain.ClosingCostInputs{
		PurchasePrice:          req.PurchasePrice,
		LoanAmount:             req.LoanAmount,
		PrepaidInsuranceMonths: req.PrepaidInsuranceMonths,
		PrepaidTaxMonths:       req.PrepaidTaxMonths,
		TitleRate:              fromPercent(req.TitleRate),
	}
}

func MapClosingCostReportToAPI(report *domain.ClosingCostReport) api.ClosingCostsResponse {
	return api.ClosingCostsResponse{
		LoanOrigination:   round2(report.LoanOrigination),
		Appraisal:         round2(report.Appraisal),
		CreditReport:      round2(report.CreditReport),
		TaxService:        round2(report.TaxService),
		FloodCert:         round2(report.FloodCert),
		TitleInsurance:    round2(report.TitleInsurance),
		RecordingFees:     round2(report.RecordingFees),
		TotalBuyerClosing: round2(report.TotalBuyerClosing),

		PrepaidInsurance: round2(report.PrepaidInsurance),
		PrepaidTax:       round2(report.PrepaidTax),
		TotalPrepaids:    round2(report.TotalPrepaids),
		EscrowInsurance:  round2(report.EscrowInsurance),
		EscrowTax:        round2(report.EscrowTax),
		TotalEscrow:      round2(report.TotalEscrow),
		TotalBuyerFunds:  round2(report.TotalBuyerFunds),

		RealtorFees:      round2(report.RealtorFees),
		TransferTax:      round2(report.TransferTax),
		SellerOtherFees:  round2(report.SellerOtherFees),
		TotalSellerCosts: round2(report.TotalSellerCosts),
		NetProceeds:      round2(report.NetProceeds),
	}
}
