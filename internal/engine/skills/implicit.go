package skills

import (
	"fmt"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// inferImplicit applies the technology rule table to every tech the CV
// mentions, then scans projects for complexity signals. Evidence is the
// first bullet or project description mentioning the technology.
func (a *Analyst) inferImplicit(cv *engine.StructuredCV) []engine.ImplicitSkill {
	var out []engine.ImplicitSkill

	for _, tech := range allTech(cv) {
		rule, ok := a.data.Rules[strings.ToLower(tech)]
		if !ok {
			continue
		}
		for _, skill := range rule.Skills {
			out = append(out, engine.ImplicitSkill{
				Skill:      skill,
				Evidence:   a.findEvidence(tech, skill, cv),
				Confidence: rule.Confidence,
			})
		}
	}

	out = append(out, a.projectSignals(cv)...)
	return out
}

func (a *Analyst) findEvidence(tech, skill string, cv *engine.StructuredCV) string {
	lower := strings.ToLower(tech)
	for _, exp := range cv.Experience {
		for _, bullet := range exp.Bullets {
			if strings.Contains(strings.ToLower(bullet), lower) {
				return fmt.Sprintf("Used %s in %s role: %s", tech, exp.Title, engine.Snippet(bullet, engine.Cfg.MaxEvidenceChars))
			}
		}
	}
	for _, p := range cv.Projects {
		if strings.Contains(strings.ToLower(p.Description), lower) || contains(p.TechStack, tech) {
			return fmt.Sprintf("Applied %s in project '%s': %s", tech, p.Name, engine.Snippet(p.Description, engine.Cfg.MaxEvidenceChars))
		}
	}
	return fmt.Sprintf("Experience with %s indicates %s capability", tech, skill)
}

// projectSignals emits one implicit skill per signal class present in each
// project description.
func (a *Analyst) projectSignals(cv *engine.StructuredCV) []engine.ImplicitSkill {
	var out []engine.ImplicitSkill
	for _, p := range cv.Projects {
		desc := strings.ToLower(p.Description)
		for _, sig := range a.data.ProjectSignals {
			if !containsAnySub(desc, sig.Keywords...) {
				continue
			}
			out = append(out, engine.ImplicitSkill{
				Skill:      sig.Skill,
				Evidence:   signalEvidence(sig.Skill, p.Name),
				Confidence: sig.Confidence,
			})
		}
	}
	return out
}

func signalEvidence(skill, project string) string {
	switch skill {
	case "performance optimization":
		return fmt.Sprintf("Optimized performance in project '%s'", project)
	case "research and development":
		return fmt.Sprintf("Conducted research in project '%s'", project)
	default:
		return fmt.Sprintf("Project '%s' involved large-scale implementation", project)
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
