package market

import (
	"sort"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
)

// staticLookup resolves a role against the embedded table. Matching order:
// exact alias, substring match in either direction, then the role itself as
// an underscored table key. Returns nil when nothing matches.
func (r *Resolver) staticLookup(targetRole string) *engine.MarketIntelligence {
	key := r.roleKey(targetRole)
	if key == "" {
		return nil
	}
	role, ok := r.data.Roles[key]
	if !ok {
		return nil
	}
	return fromRole(role)
}

func (r *Resolver) roleKey(targetRole string) string {
	role := normalizeRole(targetRole)

	if key, ok := r.data.Aliases[role]; ok {
		return key
	}

	// Alias order must not depend on map iteration.
	aliases := make([]string, 0, len(r.data.Aliases))
	for alias := range r.data.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		if strings.Contains(role, alias) || strings.Contains(alias, role) {
			return r.data.Aliases[alias]
		}
	}

	underscored := strings.NewReplacer(" ", "_", "-", "_").Replace(role)
	if _, ok := r.data.Roles[underscored]; ok {
		return underscored
	}
	return ""
}

func fromRole(role dataset.MarketRole) *engine.MarketIntelligence {
	return &engine.MarketIntelligence{
		RoleRequirements: engine.RoleRequirements{
			CoreSkills:      role.CoreSkills,
			PreferredSkills: role.PreferredSkills,
			EmergingTrends:  role.EmergingTrends,
		},
		TechStack: engine.TechStackPopularity{
			Language:  role.Languages,
			Framework: role.Frameworks,
			Tools:     role.Tools,
		},
		Insights: engine.MarketInsights{
			SalaryRange: role.SalaryRange,
			DemandLevel: role.DemandLevel,
			GrowthAreas: role.GrowthAreas,
		},
		Source: engine.SourceSimulation,
	}
}
