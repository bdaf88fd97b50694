package adapters

import (
	"fmt"
	"time"

	"github.com/re-tools/property-atlas/pkg/format"
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

// Report builders translate engine results into the renderable
// domain.Report consumed by the terminal reporters.

func MapInvestmentReportToReport(report *domain.InvestmentReport, fmtCfg format.Config) *domain.Report {
	metrics := domain.ReportSection{
		Title: "Financial Metrics",
		Summary: map[string]interface{}{
			"Monthly Cash Flow": format.Currency(fmtCfg, report.MonthlyCashFlow),
			"Cap Rate":          format.Percent(fmtCfg, report.CapRate),
			"Cash on Cash":      format.Percent(fmtCfg, report.CashOnCash),
			"DSCR":              fmt.Sprintf("%.2f", report.DSCR),
		},
		Details: []domain.ReportDetail{
			{Name: "Loan Amount", Value: round2(report.LoanAmount), Unit: "USD"},
			{Name: "Monthly Payment", Value: round2(report.MonthlyPayment), Unit: "USD"},
			{Name: "Annual Debt Service", Value: round2(report.AnnualDebtService), Unit: "USD"},
			{Name: "Effective Gross Income", Value: round2(report.EffectiveGrossIncome), Unit: "USD"},
			{Name: "Total Operating Expenses", Value: round2(report.TotalExpenses), Unit: "USD"},
			{Name: "Net Operating Income", Value: round2(report.NOI), Unit: "USD"},
			{Name: "Annual Cash Flow", Value: round2(report.AnnualCashFlow), Unit: "USD"},
			{Name: "Operating Expense Ratio", Value: round2(report.ExpenseRatio), Unit: "%"},
			{Name: "Break Even", Value: round0(report.BreakEvenMonths), Unit: "months"},
		},
	}

	projection := domain.ReportSection{Title: "Appreciation Projection"}
	for _, proj := range report.Projections {
		projection.Details = append(projection.Details,
			domain.ReportDetail{
				Name:        fmt.Sprintf("Year %d", proj.Year),
				Value:       round2(proj.PropertyValue),
				Unit:        "USD",
				Description: fmt.Sprintf("rent %s, equity %s, return on equity %s",
					format.Currency(fmtCfg, proj.MonthlyRent),
					format.Currency(fmtCfg, proj.Equity),
					format.Percent(fmtCfg, proj.ReturnOnEquity)),
			},
		)
	}

	return &domain.Report{
		Title:       "Investment Property Analysis",
		GeneratedAt: time.Now(),
		Currency:    "USD",
		Sections:    []domain.ReportSection{metrics, projection},
	}
}

func MapSellerFinancingReportToReport(report *domain.SellerFinancingReport, fmtCfg format.Config) *domain.Report {
	return &domain.Report{
		Title:       "Seller Financing Analysis",
		GeneratedAt: time.Now(),
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Current Mortgage",
				Summary: map[string]interface{}{
					"Current Balance": format.Currency(fmtCfg, report.CurrentBalance),
				},
				Details: []domain.ReportDetail{
					{Name: "Monthly Payment", Value: round2(report.CurrentPayment), Unit: "USD"},
					{Name: "Total Paid to Date", Value: round2(report.PaidToDate), Unit: "USD"},
					{Name: "Principal Paid", Value: round2(report.PrincipalPaid), Unit: "USD"},
					{Name: "Interest Paid", Value: round2(report.InterestPaid), Unit: "USD"},
				},
			},
			{
				Title: "New Financing",
				Summary: map[string]interface{}{
					"Monthly Payment": format.Currency(fmtCfg, report.NewMonthlyPayment),
					"Total Cost":      format.Currency(fmtCfg, report.TotalCost),
				},
				Details: []domain.ReportDetail{
					{Name: "Total Payments", Value: round2(report.TotalPayments), Unit: "USD"},
					{Name: "Total Principal Paid", Value: round2(report.TotalPrincipal), Unit: "USD"},
					{Name: "Total Interest Paid", Value: round2(report.TotalInterest), Unit: "USD"},
					{Name: "Balloon Payment", Value: round2(report.BalloonBalance), Unit: "USD",
						Description: "remaining principal due in full at the balloon date"},
				},
			},
		},
	}
}

func MapClosingCostReportToReport(report *domain.ClosingCostReport, fmtCfg format.Config) *domain.Report {
	return &domain.Report{
		Title:       "Closing Costs Analysis",
		GeneratedAt: time.Now(),
		Currency:    "USD",
		Sections: []domain.ReportSection{
			{
				Title: "Buyer's Closing Costs",
				Summary: map[string]interface{}{
					"Total Funds Needed": format.Currency(fmtCfg, report.TotalBuyerFunds),
				},
				Details: []domain.ReportDetail{
					{Name: "Loan Origination", Value: round2(report.LoanOrigination), Unit: "USD"},
					{Name: "Appraisal", Value: round2(report.Appraisal), Unit: "USD"},
					{Name: "Credit Report", Value: round2(report.CreditReport), Unit: "USD"},
					{Name: "Tax Service", Value: round2(report.TaxService), Unit: "USD"},
					{Name: "Flood Certification", Value: round2(report.FloodCert), Unit: "USD"},
					{Name: "Title Insurance", Value: round2(report.TitleInsurance), Unit: "USD"},
					{Name: "Recording Fees", Value: round2(report.RecordingFees), Unit: "USD"},
					{Name: "Prepaids", Value: round2(report.TotalPrepaids), Unit: "USD"},
					{Name: "Escrow Reserves", Value: round2(report.TotalEscrow), Unit: "USD"},
				},
			},
			{
				Title: "Seller's Costs",
				Summary: map[string]interface{}{
					"Net Proceeds": format.Currency(fmtCfg, report.NetProceeds),
				},
				Details: []domain.ReportDetail{
					{Name: "Realtor Fees", Value: round2(report.RealtorFees), Unit: "USD"},
					{Name: "Transfer Tax", Value: round2(report.TransferTax), Unit: "USD"},
					{Name: "Other Fees", Value: round2(report.SellerOtherFees), Unit: "USD"},
					{Name: "Total Seller Costs", Value: round2(report.TotalSellerCosts), Unit: "USD"},
				},
			},
		},
	}
}

func MapComparisonReportToReport(report *domain.ComparisonReport, fmtCfg format.Config) *domain.Report {
	section := domain.ReportSection{Title: "Loan Scenarios"}
	for _, sc := range report.Scenarios {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  fmt.Sprintf("%s down at %s", format.Currency(fmtCfg, sc.DownPayment), format.Percent(fmtCfg, sc.AnnualRate*100)),
			Value: round2(sc.MonthlyPayment),
			Unit:  "USD",
			Description: fmt.Sprintf("total interest %s, paid off in %.1f years",
				format.Currency(fmtCfg, sc.TotalInterest), sc.YearsToPayoff),
		})
	}

	return &domain.Report{
		Title:       "Loan Comparison",
		GeneratedAt: time.Now(),
		Currency:    "USD",
		Sections:    []domain.ReportSection{section},
	}
}

func MapScheduleToReport(records []domain.PeriodRecord, fmtCfg format.Config) *domain.Report {
	section := domain.ReportSection{Title: "Amortization Schedule"}
	for _, rec := range records {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  fmt.Sprintf("Period %d", rec.Period),
			Value: round2(rec.RemainingBalance),
			Unit:  "USD",
			Description: fmt.Sprintf("payment %s (interest %s, principal %s)",
				format.Currency(fmtCfg, rec.Payment),
				format.Currency(fmtCfg, rec.Interest),
				format.Currency(fmtCfg, rec.Principal)),
		})
	}

	return &domain.Report{
		Title:       "Amortization Schedule",
		GeneratedAt: time.Now(),
		Currency:    "USD",
		Sections:    []domain.ReportSection{section},
	}
}
