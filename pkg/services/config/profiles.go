package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// MarketProfile captures the local rate assumptions that vary by market.
// Rates are decimal fractions.
type MarketProfile struct {
	Name                  string
	TitleRate             float64
	RealtorRate           float64
	TransferTaxRate       float64
	PropertyTaxAnnualRate float64
	InsuranceAnnualRate   float64
}

// Registry resolves named market profiles from the profiles file.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*MarketProfile, error)
}

type profileRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &profileRegistry{cfg: cfg}, nil
}

func (pr *profileRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range pr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (pr *profileRegistry) GetProfile(_ context.Context, name string) (*MarketProfile, error) {
	section, err := pr.cfg.GetSection(name)
	if err != nil {
		// unknown markets fall back to the default profile when one exists
		section, err = pr.cfg.GetSection("default")
		if err != nil {
			return nil, fmt.Errorf("profile %s not found", name)
		}
	}

	profile := &MarketProfile{
		Name:                  name,
		TitleRate:             section.Key("title_rate").MustFloat64(0.007),
		RealtorRate:           section.Key("realtor_rate").MustFloat64(0.06),
		TransferTaxRate:       section.Key("transfer_tax_rate").MustFloat64(0.001),
		PropertyTaxAnnualRate: section.Key("property_tax_annual_rate").MustFloat64(0.015),
		InsuranceAnnualRate:   section.Key("insurance_annual_rate").MustFloat64(0.003),
	}
	return profile, nil
}
