package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/format"
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/services/engine"
)

type CompareCmd struct {
	request  api.ComparisonRequest
	emailTo  string
	reporter Reporter
}

func NewCompareCmd(reporter Reporter) *cobra.Command {
	cc := &CompareCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "comparison",
		Short: "Compare loan scenarios across down payments and rates",
		RunE:  cc.run,
	}

	cmd.Flags().Float64Var(&cc.request.PurchasePrice, "price", 0, "Purchase price")
	cmd.Flags().Float64Var(&cc.request.PointsPaid, "points", 0, "Points paid in percent of the loan amount")
	cmd.Flags().Float64Var(&cc.request.TaxRate, "tax-rate", 0, "Marginal tax rate in percent")
	cmd.Flags().Float64Var(&cc.request.ExtraPayment, "extra", 0, "Extra monthly principal payment")
	cmd.Flags().IntVar(&cc.request.TermYears, "term", 30, "Loan term in years")
	addEmailFlag(cmd, &cc.emailTo)

	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, _ []string) error {
	result, err := engine.CompareLoans(adapters.MapComparisonRequestToDomainInputs(cc.request))
	if err != nil {
		return fmt.Errorf("failed to compare loans: %w", err)
	}

	report := adapters.MapComparisonReportToReport(result, format.DefaultConfig())
	if err := cc.reporter.Handle(report); err != nil {
		return err
	}
	printEmailLinks(cmd, cc.emailTo, report)
	return nil
}
