package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/format"
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/services/engine"
)

type InvestmentCmd struct {
	request  api.InvestmentRequest
	emailTo  string
	reporter Reporter
}

func NewInvestmentCmd(reporter Reporter) *cobra.Command {
	ic := &InvestmentCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "investment",
		Short: "Analyze a rental property purchase",
		RunE:  ic.run,
	}

	cmd.Flags().Float64Var(&ic.request.PurchasePrice, "price", 0, "Purchase price")
	cmd.Flags().Float64Var(&ic.request.DownPayment, "down", 0, "Down payment")
	cmd.Flags().Float64Var(&ic.request.Rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().IntVar(&ic.request.LoanTermYears, "term", 30, "Loan term in years")
	cmd.Flags().Float64Var(&ic.request.MonthlyRent, "rent", 0, "Expected monthly rent")
	cmd.Flags().Float64Var(&ic.request.OtherIncome, "other-income", 0, "Other monthly income")
	cmd.Flags().Float64Var(&ic.request.VacancyRate, "vacancy", 5, "Vacancy rate in percent")
	cmd.Flags().Float64Var(&ic.request.PropertyTax, "tax", 0, "Annual property tax")
	cmd.Flags().Float64Var(&ic.request.Insurance, "insurance", 0, "Annual insurance")
	cmd.Flags().Float64Var(&ic.request.Maintenance, "maintenance", 0, "Annual maintenance")
	cmd.Flags().Float64Var(&ic.request.Utilities, "utilities", 0, "Annual utilities")
	cmd.Flags().Float64Var(&ic.request.ManagementFee, "management", 0, "Management fee in percent of effective income")
	cmd.Flags().Float64Var(&ic.request.Appreciation, "appreciation", 0, "Annual appreciation rate in percent")
	cmd.Flags().Float64Var(&ic.request.RentIncrease, "rent-growth", 0, "Annual rent growth rate in percent")
	cmd.Flags().IntVar(&ic.request.ProjectionYears, "years", 0, "Projection horizon in years")
	addEmailFlag(cmd, &ic.emailTo)

	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("down")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("rent")

	return cmd
}

func (ic *InvestmentCmd) run(cmd *cobra.Command, _ []string) error {
	result, err := engine.AnalyzeInvestment(adapters.MapInvestmentRequestToDomainInputs(ic.request))
	if err != nil {
		return fmt.Errorf("failed to analyze investment: %w", err)
	}

	report := adapters.MapInvestmentReportToReport(result, format.DefaultConfig())
	if err := ic.reporter.Handle(report); err != nil {
		return err
	}
	printEmailLinks(cmd, ic.emailTo, report)
	return nil
}
