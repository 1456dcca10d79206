package report

import (
	"fmt"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
)

// Gap is one row of the gap assessment table.
type Gap struct {
	Skill        string
	CurrentLevel string
	GapLevel     string
	Priority     string
	Evidence     string
}

// calculateGaps compares market requirements against the candidate's
// combined explicit and implicit skill set. Core skills missing from the
// candidate are Critical; core skills present are Important; absent
// preferred skills (top five) are Nice-to-have.
func (c *Composer) calculateGaps(cv *engine.StructuredCV, analysis *engine.SkillsAnalysis, market *engine.MarketIntelligence) []Gap {
	candidate := map[string]bool{}
	for _, s := range analysis.ExplicitSkills.Tech {
		candidate[canonical(s)] = true
	}
	for _, s := range analysis.ImplicitSkills {
		candidate[canonical(s.Skill)] = true
	}

	var gaps []Gap
	for _, skill := range market.RoleRequirements.CoreSkills {
		gap := Gap{
			Skill:        skill,
			CurrentLevel: "None",
			GapLevel:     "High",
			Priority:     "Critical",
			Evidence:     "Not found in CV",
		}
		if candidate[canonical(skill)] {
			gap.CurrentLevel = "Basic"
			gap.GapLevel = "Medium"
			gap.Priority = "Important"
			gap.Evidence = c.findEvidence(skill, cv, analysis)
		}
		gaps = append(gaps, gap)
	}

	preferred := market.RoleRequirements.PreferredSkills
	if len(preferred) > 5 {
		preferred = preferred[:5]
	}
	for _, skill := range preferred {
		if candidate[canonical(skill)] {
			continue
		}
		gaps = append(gaps, Gap{
			Skill:        skill,
			CurrentLevel: "None",
			GapLevel:     "Medium",
			Priority:     "Nice-to-have",
			Evidence:     "Not demonstrated in CV",
		})
	}
	return gaps
}

// canonical folds a skill name onto the normalized spelling the parser
// emits, so market-table names like "PostgreSQL" match the CV's "postgres".
func canonical(skill string) string {
	lower := strings.ToLower(skill)
	if n, ok := dataset.Parser().Normalizations[lower]; ok {
		return n
	}
	return lower
}

func (c *Composer) findEvidence(skill string, cv *engine.StructuredCV, analysis *engine.SkillsAnalysis) string {
	lower := strings.ToLower(skill)

	for _, s := range analysis.ExplicitSkills.Tech {
		if canonical(s) == canonical(skill) {
			return "Listed in technical skills section"
		}
	}
	for _, implicit := range analysis.ImplicitSkills {
		if strings.Contains(strings.ToLower(implicit.Skill), lower) {
			return engine.Snippet(implicit.Evidence, engine.Cfg.MaxEvidenceChars)
		}
	}
	for _, exp := range cv.Experience {
		for _, bullet := range exp.Bullets {
			if strings.Contains(strings.ToLower(bullet), lower) {
				return fmt.Sprintf("Used in %s: %s", exp.Title, engine.Snippet(bullet, 80))
			}
		}
	}
	return "Skill presence inferred from related technologies"
}

func (c *Composer) gapAssessment(gaps []Gap) string {
	critical := countPriority(gaps, "Critical")
	important := countPriority(gaps, "Important")
	nice := countPriority(gaps, "Nice-to-have")

	var rows []string
	for _, gap := range gaps {
		evidence := gap.Evidence
		if len([]rune(evidence)) > 50 {
			evidence = engine.Snippet(evidence, 47)
		}
		rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s | %s |",
			gap.Skill, gap.CurrentLevel, gap.GapLevel, gap.Priority, evidence))
	}

	var sb strings.Builder
	sb.WriteString("## Skill Gap Analysis\n\n")
	sb.WriteString("### Gap Summary\n")
	fmt.Fprintf(&sb, "- **Critical Gaps**: %d skills requiring immediate attention\n", critical)
	fmt.Fprintf(&sb, "- **Important Gaps**: %d skills for competitive advantage\n", important)
	fmt.Fprintf(&sb, "- **Nice-to-Have**: %d skills for differentiation\n\n", nice)
	sb.WriteString("### Detailed Gap Analysis\n")
	sb.WriteString("| Required Skill | Current Level | Gap | Priority | Evidence |\n")
	sb.WriteString("|----------------|---------------|-----|----------|----------|\n")
	sb.WriteString(strings.Join(rows, "\n"))
	sb.WriteString("\n\n### Gap Analysis Insights\n")
	sb.WriteString(gapInsights(critical))
	return sb.String()
}

func gapInsights(criticalCount int) string {
	switch {
	case criticalCount == 0:
		return "**Strong Match**: Candidate demonstrates most required skills for the target role."
	case criticalCount <= 3:
		return fmt.Sprintf("**Good Foundation**: %d critical gaps identified. With focused learning, candidate can become competitive within 6-8 weeks.", criticalCount)
	default:
		return fmt.Sprintf("**Significant Gaps**: %d critical areas need development. Recommend extended learning period of 10-12 weeks.", criticalCount)
	}
}

func countPriority(gaps []Gap, priority string) int {
	n := 0
	for _, g := range gaps {
		if g.Priority == priority {
			n++
		}
	}
	return n
}

func filterPriority(gaps []Gap, priority string) []Gap {
	var out []Gap
	for _, g := range gaps {
		if g.Priority == priority {
			out = append(out, g)
		}
	}
	return out
}
