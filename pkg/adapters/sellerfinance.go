package adapters

import (
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// MapSellerFinancingRequestToDomainInputs derives elapsed years from the
// user-facing "years remaining" field and normalizes both rates.
func MapSellerFinancingRequestToDomainInputs(req api.SellerFinancingRequest) domain.SellerFinancingInputs {
	return domain.SellerFinancingInputs{
		Current: domain.LoanTerms{
			Principal:  req.OriginalPrice,
			AnnualRate: fromPercent(req.CurrentRate),
			TermYears:  req.OriginalTermYears,
		},
		YearsElapsed: req.OriginalTermYears - req.YearsRemaining,
		NewNote: domain.LoanTerms{
			Principal:  req.SalePrice - req.DownPayment,
			AnnualRate: fromPercent(req.NewRate),
			TermYears:  req.LoanTermYears,
		},
		DownPayment:  req.DownPayment,
		BalloonYears: req.BalloonYears,
	}
}

func MapSellerFinancingReportToAPI(report *domain.SellerFinancingReport) api.SellerFinancingResponse {
	return api.SellerFinancingResponse{
		CurrentPayment: round2(report.CurrentPayment),
		CurrentBalance: round2(report.CurrentBalance),
		PaidToDate:     round2(report.PaidToDate),
		PrincipalPaid:  round2(report.PrincipalPaid),
		InterestPaid:   round2(report.InterestPaid),

		NewMonthlyPayment: round2(report.NewMonthlyPayment),
		TotalPayments:     round2(report.TotalPayments),
		TotalPrincipal:    round2(report.TotalPrincipal),
		TotalInterest:     round2(report.TotalInterest),
		BalloonBalance:    round2(report.BalloonBalance),
		TotalCost:         round2(report.TotalCost),
	}
}
