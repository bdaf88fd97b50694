package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/re-tools/property-atlas/pkg/runtime/terminal/commands"
	"github.com/re-tools/property-atlas/pkg/runtime/terminal/export"
	"github.com/re-tools/property-atlas/pkg/store/fees"
)

// CLI represents the command-line interface
type CLI struct {
	feeStore fees.Store
	reporter *switchReporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	FeeStore fees.Store
	Output   io.Writer
}

// switchReporter picks the console or export renderer based on the
// --export flag, which is only known after flag parsing.
type switchReporter struct {
	export  bool
	plain   commands.Reporter
	tabular commands.Reporter
}

func (r *switchReporter) Handle(report *domain.Report) error {
	if r.export {
		return r.tabular.Handle(report)
	}
	return r.plain.Handle(report)
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.FeeStore == nil {
		opts.FeeStore = fees.NewStore()
	}

	cli := &CLI{
		feeStore: opts.FeeStore,
		reporter: &switchReporter{
			plain:   NewReporter(opts.Output),
			tabular: export.NewReporter(opts.Output),
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atlas",
		Short: "Real estate deal analysis tool",
	}

	cmd.PersistentFlags().BoolVar(&cli.reporter.export, "export", false, "Render reports as export tables")

	cmd.AddCommand(commands.NewInvestmentCmd(cli.reporter))
	cmd.AddCommand(commands.NewSellerFinancingCmd(cli.reporter))
	cmd.AddCommand(commands.NewClosingCostsCmd(cli.feeStore, cli.reporter))
	cmd.AddCommand(commands.NewCompareCmd(cli.reporter))
	cmd.AddCommand(commands.NewScheduleCmd(cli.reporter))

	return cmd
}
