package fees

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/re-tools/property-atlas/pkg/models/domain"
	"github.com/re-tools/property-atlas/pkg/services/engine"
)

// Store resolves the fee schedule applied to closing cost estimates.
type Store interface {
	GetFeeSchedule(ctx context.Context) domain.FeeSchedule
}

type feeStore struct {
	schedule domain.FeeSchedule
}

// NewStore returns a store serving the built-in fee schedule.
func NewStore() Store {
	return &feeStore{schedule: engine.DefaultFeeSchedule()}
}

// NewStoreFromFile reads fee overrides from a config file. Keys absent from
// the file keep their default values.
func NewStoreFromFile(path string) (Store, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := engine.DefaultFeeSchedule()
	v.SetDefault("origination_rate", defaults.OriginationRate)
	v.SetDefault("realtor_rate", defaults.RealtorRate)
	v.SetDefault("transfer_tax_rate", defaults.TransferTaxRate)
	v.SetDefault("insurance_annual_rate", defaults.InsuranceAnnualRate)
	v.SetDefault("property_tax_annual_rate", defaults.PropertyTaxAnnualRate)
	v.SetDefault("escrow_cushion_months", defaults.EscrowCushionMonths)
	v.SetDefault("appraisal_fee", defaults.AppraisalFee)
	v.SetDefault("credit_report_fee", defaults.CreditReportFee)
	v.SetDefault("tax_service_fee", defaults.TaxServiceFee)
	v.SetDefault("flood_cert_fee", defaults.FloodCertFee)
	v.SetDefault("recording_fee", defaults.RecordingFee)
	v.SetDefault("seller_other_fees", defaults.SellerOtherFees)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read fee schedule %s: %w", path, err)
	}

	return &feeStore{schedule: domain.FeeSchedule{
		OriginationRate:       v.GetFloat64("origination_rate"),
		RealtorRate:           v.GetFloat64("realtor_rate"),
		TransferTaxRate:       v.GetFloat64("transfer_tax_rate"),
		InsuranceAnnualRate:   v.GetFloat64("insurance_annual_rate"),
		PropertyTaxAnnualRate: v.GetFloat64("property_tax_annual_rate"),
		EscrowCushionMonths:   v.GetFloat64("escrow_cushion_months"),
		AppraisalFee:          v.GetFloat64("appraisal_fee"),
		CreditReportFee:       v.GetFloat64("credit_report_fee"),
		TaxServiceFee:         v.GetFloat64("tax_service_fee"),
		FloodCertFee:          v.GetFloat64("flood_cert_fee"),
		RecordingFee:          v.GetFloat64("recording_fee"),
		SellerOtherFees:       v.GetFloat64("seller_other_fees"),
	}}, nil
}

func (s *feeStore) GetFeeSchedule(_ context.Context) domain.FeeSchedule {
	return s.schedule
}
