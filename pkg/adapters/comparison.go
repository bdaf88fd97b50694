package adapters

import (
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

func MapComparisonRequestToDomainInputs(req api.ComparisonRequest) domain.ComparisonInputs {
	return domain.ComparisonInputs{
		PurchasePrice: req.PurchasePrice,
		PointsPaid:    req.PointsPaid,
		TaxRate:       fromPercent(req.TaxRate),
		ExtraPayment:  req.ExtraPayment,
		TermYears:     req.TermYears,
	}
}

func MapComparisonReportToAPI(report *domain.ComparisonReport) api.ComparisonResponse {
	scenarios := make([]api.ComparisonScenario, 0, len(report.Scenarios))
	for _, sc := range report.Scenarios {
		scenarios = append(scenarios, api.ComparisonScenario{
			DownPayment:         round2(sc.DownPayment),
			DownPaymentPercent:  round2(sc.DownPaymentPercent),
			Rate:                round2(sc.AnnualRate * 100),
			LoanAmount:          round2(sc.LoanAmount),
			MonthlyPayment:      round2(sc.MonthlyPayment),
			TotalMonthly:        round2(sc.TotalMonthly),
			TotalInterest:       round2(sc.TotalInterest),
			MonthsToPayoff:      sc.MonthsToPayoff,
			YearsToPayoff:       round2(sc.YearsToPayoff),
			FirstYearTaxSavings: round2(sc.FirstYearTaxSavings),
			PointsCost:          round2(sc.PointsCost),
			MonthlyPMI:          round2(sc.MonthlyPMI),
		})
	}
	return api.ComparisonResponse{Scenarios: scenarios}
}
