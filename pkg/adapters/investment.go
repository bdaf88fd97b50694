package adapters

import (
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

func MapInvestmentRequestToDomainInputs(req api.InvestmentRequest) domain.InvestmentInputs {
	return domain.InvestmentInputs{
		PurchasePrice:    req.PurchasePrice,
		DownPayment:      req.DownPayment,
		AnnualRate:       fromPercent(req.Rate),
		LoanTermYears:    req.LoanTermYears,
		MonthlyRent:      req.MonthlyRent,
		OtherIncome:      req.OtherIncome,
		VacancyRate:      fromPercent(req.VacancyRate),
		PropertyTax:      req.PropertyTax,
		Insurance:        req.Insurance,
		Maintenance:      req.Maintenance,
		Utilities:        req.Utilities,
		ManagementRate:   fromPercent(req.ManagementFee),
		AppreciationRate: fromPercent(req.Appreciation),
		RentGrowthRate:   fromPercent(req.RentIncrease),
		ProjectionYears:  req.ProjectionYears,
	}
}

func MapInvestmentReportToAPI(report *domain.InvestmentReport) api.InvestmentResponse {
	projections := make([]api.YearlyProjection, 0, len(report.Projections))
	for _, proj := range report.Projections {
		projections = append(projections, api.YearlyProjection{
			Year:           proj.Year,
			PropertyValue:  round2(proj.PropertyValue),
			MonthlyRent:    round2(proj.MonthlyRent),
			Equity:         round2(proj.Equity),
			ReturnOnEquity: round2(proj.ReturnOnEquity),
		})
	}

	return api.InvestmentResponse{
		LoanAmount:           round2(report.LoanAmount),
		MonthlyPayment:       round2(report.MonthlyPayment),
		AnnualDebtService:    round2(report.AnnualDebtService),
		EffectiveGrossIncome: round2(report.EffectiveGrossIncome),
		ManagementFee:        round2(report.ManagementFee),
		TotalExpenses:        round2(report.TotalExpenses),
		NOI:                  round2(report.NOI),
		AnnualCashFlow:       round2(report.AnnualCashFlow),
		MonthlyCashFlow:      round2(report.MonthlyCashFlow),
		CapRate:              round2(report.CapRate),
		CashOnCash:           round2(report.CashOnCash),
		DSCR:                 round2(report.DSCR),
		ExpenseRatio:         round2(report.ExpenseRatio),
		BreakEvenMonths:      round0(report.BreakEvenMonths),
		Projections:          projections,
	}
}
