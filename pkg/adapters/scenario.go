package adapters

import (
	"github.com/re-tools/property-atlas/pkg/models/api"
	"github.com/re-tools/property-atlas/pkg/models/domain"
)

func MapDomainScenarioToAPI(sc domain.Scenario) api.Scenario {
	return api.Scenario{
		ID:           sc.ID,
		Name:         sc.Name,
		Data:         sc.Data,
		CreatedAt:    sc.CreatedAt,
		LastModified: sc.LastModified,
	}
}

func MapDomainScenariosToAPI(scenarios []domain.Scenario) []api.Scenario {
	out := make([]api.Scenario, 0, len(scenarios))
	for _, sc := range scenarios {
		out = append(out, MapDomainScenarioToAPI(sc))
	}
	return out
}
