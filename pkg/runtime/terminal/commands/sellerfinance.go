package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/format"
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/services/engine"
)

type SellerFinancingCmd struct {
	request  api.SellerFinancingRequest
	emailTo  string
	reporter Reporter
}

func NewSellerFinancingCmd(reporter Reporter) *cobra.Command {
	sc := &SellerFinancingCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "seller-financing",
		Short: "Evaluate selling with owner financing and a balloon note",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.request.OriginalPrice, "original-price", 0, "Original loan principal")
	cmd.Flags().Float64Var(&sc.request.CurrentRate, "current-rate", 0, "Current loan rate in percent")
	cmd.Flags().IntVar(&sc.request.OriginalTermYears, "original-term", 30, "Original loan term in years")
	cmd.Flags().IntVar(&sc.request.YearsRemaining, "years-remaining", 0, "Years remaining on the current loan")
	cmd.Flags().Float64Var(&sc.request.SalePrice, "sale-price", 0, "Sale price to the buyer")
	cmd.Flags().Float64Var(&sc.request.DownPayment, "down", 0, "Buyer down payment")
	cmd.Flags().Float64Var(&sc.request.NewRate, "new-rate", 0, "Rate on the new note in percent")
	cmd.Flags().IntVar(&sc.request.LoanTermYears, "term", 30, "Amortization term of the new note in years")
	cmd.Flags().IntVar(&sc.request.BalloonYears, "balloon", 0, "Years until the balloon payment")
	addEmailFlag(cmd, &sc.emailTo)

	_ = cmd.MarkFlagRequired("original-price")
	_ = cmd.MarkFlagRequired("sale-price")
	_ = cmd.MarkFlagRequired("balloon")

	return cmd
}

func (sc *SellerFinancingCmd) run(cmd *cobra.Command, _ []string) error {
	result, err := engine.AnalyzeSellerFinancing(adapters.MapSellerFinancingRequestToDomainInputs(sc.request))
	if err != nil {
		return fmt.Errorf("failed to analyze seller financing: %w", err)
	}

	report := adapters.MapSellerFinancingReportToReport(result, format.DefaultConfig())
	if err := sc.reporter.Handle(report); err != nil {
		return err
	}
	printEmailLinks(cmd, sc.emailTo, report)
	return nil
}
