package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/re-tools/property-atlas/pkg/adapters"
	"github.com/re-tools/property-atlas/pkg/format"
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/re-tools/property-atlas/pkg/services/config"
	"github.com/re-tools/property-atlas/pkg/services/engine"
	"github.com/re-tools/property-atlas/pkg/store/fees"
)

type ClosingCostsCmd struct {
	request      api.ClosingCostsRequest
	profilesPath string
	profile      string
	emailTo      string
	fees         fees.Store
	reporter     Reporter
}

func NewClosingCostsCmd(feeStore fees.Store, reporter Reporter) *cobra.Command {
	cc := &ClosingCostsCmd{fees: feeStore, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "closing-costs",
		Short: "Estimate buyer and seller closing costs",
		RunE:  cc.run,
	}

	cmd.Flags().Float64Var(&cc.request.PurchasePrice, "price", 0, "Purchase price")
	cmd.Flags().Float64Var(&cc.request.LoanAmount, "loan", 0, "Loan amount")
	cmd.Flags().Float64Var(&cc.request.PrepaidInsuranceMonths, "prepaid-insurance", 12, "Months of insurance prepaid at closing")
	cmd.Flags().Float64Var(&cc.request.PrepaidTaxMonths, "prepaid-tax", 6, "Months of property tax prepaid at closing")
	cmd.Flags().Float64Var(&cc.request.TitleRate, "title-rate", 0.5, "Title insurance rate in percent of price")
	cmd.Flags().StringVar(&cc.profilesPath, "profiles", "", "Path to the market profiles file")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Market profile to apply")
	addEmailFlag(cmd, &cc.emailTo)

	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("loan")

	return cmd
}

func (cc *ClosingCostsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	schedule := cc.fees.GetFeeSchedule(ctx)
	inputs := adapters.MapClosingCostsRequestToDomainInputs(cc.request)

	if cc.profile != "" {
		if cc.profilesPath == "" {
			return fmt.Errorf("--profile requires --profiles")
		}
		profile, err := cc.loadProfile(cmd)
		if err != nil {
			return err
		}
		applyProfile(&schedule, &inputs, profile)
	}

	result, err := engine.EstimateClosingCosts(inputs, schedule)
	if err != nil {
		return fmt.Errorf("failed to estimate closing costs: %w", err)
	}

	report := adapters.MapClosingCostReportToReport(result, format.DefaultConfig())
	if err := cc.reporter.Handle(report); err != nil {
		return err
	}
	printEmailLinks(cmd, cc.emailTo, report)
	return nil
}

func (cc *ClosingCostsCmd) loadProfile(cmd *cobra.Command) (*config.MarketProfile, error) {
	registry, err := config.NewRegistry(cc.profilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load market profiles: %w", err)
	}
	return registry.GetProfile(cmd.Context(), cc.profile)
}

func applyProfile(schedule *domain.FeeSchedule, inputs *domain.ClosingCostInputs, profile *config.MarketProfile) {
	schedule.RealtorRate = profile.RealtorRate
	schedule.TransferTaxRate = profile.TransferTaxRate
	schedule.PropertyTaxAnnualRate = profile.PropertyTaxAnnualRate
	schedule.InsuranceAnnualRate = profile.InsuranceAnnualRate
	inputs.TitleRate = profile.TitleRate
}
