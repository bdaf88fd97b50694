package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/format"
	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/re-tools/property-atlas/pkg/services/engine"
)

type ScheduleCmd struct {
	principal float64
	rate      float64
	termYears int
	months    int
	reporter  Reporter
}

func NewScheduleCmd(reporter Reporter) *cobra.Command {
	sc := &ScheduleCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print an amortization schedule",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.principal, "principal", 0, "Loan principal")
	cmd.Flags().Float64Var(&sc.rate, "rate", 0, "Annual interest rate in percent")
	cmd.Flags().IntVar(&sc.termYears, "term", 30, "Loan term in years")
	cmd.Flags().IntVar(&sc.months, "months", 0, "Months to print (default the full term)")

	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func (sc *ScheduleCmd) run(_ *cobra.Command, _ []string) error {
	loan := domain.LoanTerms{
		Principal:  sc.principal,
		AnnualRate: sc.rate / 100,
		TermYears:  sc.termYears,
	}

	months := sc.months
	if months == 0 || months > loan.Periods() {
		months = loan.Periods()
	}

	records, err := engine.Schedule(loan, months)
	if err != nil {
		return fmt.Errorf("failed to build amortization schedule: %w", err)
	}

	return sc.reporter.Handle(adapters.MapScheduleToReport(records, format.DefaultConfig()))
}
