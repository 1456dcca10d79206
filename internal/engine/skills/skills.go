// Package skills is the inference stage: it derives explicit, implicit,
// and transferable skills plus seniority indicators from a structured CV.
// All inference is table-driven and deterministic for a given input.
package skills

import (
	"log/slog"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
)

// Analyst applies the skill inference tables. Safe for concurrent use.
type Analyst struct {
	data *dataset.InferenceData
}

func New() *Analyst {
	return &Analyst{data: dataset.Inference()}
}

// Infer builds the full skills analysis for a CV. A CV without a candidate
// name is unusable for inference; that comes back as a warning with an
// empty analysis, never as a panic.
func (a *Analyst) Infer(cv *engine.StructuredCV) (*engine.SkillsAnalysis, []string) {
	engine.IncrInferRequests()

	analysis := engine.NewSkillsAnalysis()
	if cv == nil || cv.Personal.Name == "" {
		return analysis, []string{"No structured CV data available for skill analysis"}
	}

	analysis.ExplicitSkills = a.extractExplicit(cv)
	analysis.ImplicitSkills = a.inferImplicit(cv)
	analysis.TransferableSkills = a.identifyTransferable(cv)
	analysis.SeniorityIndicators = a.analyzeSeniority(cv)

	slog.Debug("skills analysis done",
		slog.Int("tech", len(analysis.ExplicitSkills.Tech)),
		slog.Int("implicit", len(analysis.ImplicitSkills)),
		slog.Int("years_exp", analysis.SeniorityIndicators.YearsExp))

	return analysis, nil
}

// allTech is the deduplicated union of CV skill categories and project tech
// stacks, in encounter order.
func allTech(cv *engine.StructuredCV) []string {
	var out []string
	seen := map[string]bool{}
	add := func(items []string) {
		for _, item := range items {
			if !seen[item] {
				seen[item] = true
				out = append(out, item)
			}
		}
	}
	add(cv.Skills.Languages)
	add(cv.Skills.Frameworks)
	add(cv.Skills.Tools)
	for _, p := range cv.Projects {
		add(p.TechStack)
	}
	return out
}
