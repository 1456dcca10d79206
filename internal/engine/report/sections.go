package report

import (
	"fmt"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func (c *Composer) executiveSummary(state *engine.AnalysisState, analysis *engine.SkillsAnalysis, market *engine.MarketIntelligence, gaps []Gap) string {
	name := state.StructuredCV.Personal.Name
	role := state.TargetRole

	strengths := topStrengths(analysis)
	critical := filterPriority(gaps, "Critical")
	criticalNames := make([]string, len(critical))
	for i, g := range critical {
		criticalNames[i] = g.Skill
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# CV Skill Gap Analysis: %s\n\n", name)
	sb.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&sb, "**Candidate Overview:** %s is a professional with %d years of experience seeking to transition into or advance in the %s role. Our analysis identified %d explicit technical skills and %d additional implicit capabilities.\n\n",
		name, analysis.SeniorityIndicators.YearsExp, role,
		len(analysis.ExplicitSkills.Tech), len(analysis.ImplicitSkills))
	fmt.Fprintf(&sb, "**Key Strengths:** %s demonstrates strong capabilities in %s. The candidate shows %s level experience with evidence of %s.\n\n",
		name, joinN(strengths, 3), seniorityLevel(analysis.SeniorityIndicators), leadershipIndicator(analysis.SeniorityIndicators))
	fmt.Fprintf(&sb, "**Primary Recommendations:** To successfully transition to %s, we recommend focusing on %d critical skill areas over the next 6-8 weeks. The highest priority areas are %s. With focused learning and practical application, %s can bridge these gaps and become competitive for %s positions.\n\n",
		role, len(critical), joinN(criticalNames, 3), name, role)
	fmt.Fprintf(&sb, "**Market Outlook:** The %s market shows %s demand with salary ranges of %s. This presents excellent opportunities for career growth.",
		role, strings.ToLower(market.Insights.DemandLevel), market.Insights.SalaryRange)
	return sb.String()
}

func (c *Composer) candidateProfile(cv *engine.StructuredCV, analysis *engine.SkillsAnalysis) string {
	var sb strings.Builder
	sb.WriteString("## Candidate Profile\n\n")
	sb.WriteString("### Strengths\n")

	tech := analysis.ExplicitSkills.Tech
	if len(tech) > 0 {
		fmt.Fprintf(&sb, "- **Technical Foundation**: Proficient in %d technologies including %s\n", len(tech), joinN(tech, 5))
	}
	if analysis.SeniorityIndicators.Leadership {
		sb.WriteString("- **Leadership Experience**: Demonstrated leadership capabilities in previous roles\n")
	}
	if analysis.SeniorityIndicators.Architecture {
		sb.WriteString("- **System Design**: Experience with architectural and system design decisions\n")
	}
	if high := highConfidenceSkills(analysis); len(high) > 0 {
		fmt.Fprintf(&sb, "- **Advanced Capabilities**: Strong evidence of %s\n", joinN(high, 3))
	}

	sb.WriteString("\n### Current Skill Set\n")
	sb.WriteString(skillsTable(analysis))

	sb.WriteString("\n### Experience Summary\n")
	fmt.Fprintf(&sb, "- **Total Experience**: %d years\n", analysis.SeniorityIndicators.YearsExp)
	fmt.Fprintf(&sb, "- **Leadership Roles**: %s\n", yesNo(analysis.SeniorityIndicators.Leadership))
	fmt.Fprintf(&sb, "- **Architecture Experience**: %s\n", yesNo(analysis.SeniorityIndicators.Architecture))
	fmt.Fprintf(&sb, "- **Key Projects**: %d documented projects with diverse technology stacks", len(cv.Projects))
	return sb.String()
}

func (c *Composer) marketAnalysis(role string, market *engine.MarketIntelligence) string {
	req := market.RoleRequirements

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Market Requirements: %s\n\n", role)
	sb.WriteString("### Current Market Landscape\n")
	fmt.Fprintf(&sb, "The %s position is experiencing **%s** demand in the current market. Companies are actively seeking professionals with a combination of foundational technical skills and emerging technology expertise.\n\n",
		role, strings.ToLower(market.Insights.DemandLevel))
	fmt.Fprintf(&sb, "**Salary Range**: %s\n\n", market.Insights.SalaryRange)
	fmt.Fprintf(&sb, "### Core Requirements (%d skills)\n%s\n\n", len(req.CoreSkills), bulletList(req.CoreSkills))
	fmt.Fprintf(&sb, "### Preferred Qualifications (%d skills)\n%s\n\n", len(req.PreferredSkills), bulletList(req.PreferredSkills))
	fmt.Fprintf(&sb, "### Emerging Trends (%d areas)\n%s\n\n", len(req.EmergingTrends), bulletList(req.EmergingTrends))
	sb.WriteString("### Growth Areas\n")
	fmt.Fprintf(&sb, "The market is particularly focused on: %s\n\n", strings.Join(market.Insights.GrowthAreas, ", "))
	sb.WriteString("**Technology Stack Popularity:**\n")
	fmt.Fprintf(&sb, "- **Languages**: %s\n", joinN(market.TechStack.Language, 5))
	fmt.Fprintf(&sb, "- **Frameworks**: %s\n", joinN(market.TechStack.Framework, 5))
	fmt.Fprintf(&sb, "- **Tools**: %s", joinN(market.TechStack.Tools, 5))
	return sb.String()
}

// topStrengths picks up to five strengths: leading tech skills, then
// high-confidence implicit skills, then domain tags.
func topStrengths(analysis *engine.SkillsAnalysis) []string {
	var strengths []string
	tech := analysis.ExplicitSkills.Tech
	if len(tech) > 3 {
		tech = tech[:3]
	}
	strengths = append(strengths, tech...)

	high := highConfidenceSkills(analysis)
	if len(high) > 2 {
		high = high[:2]
	}
	strengths = append(strengths, high...)

	domain := analysis.ExplicitSkills.Domain
	if len(domain) > 2 {
		domain = domain[:2]
	}
	strengths = append(strengths, domain...)

	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

func highConfidenceSkills(analysis *engine.SkillsAnalysis) []string {
	var out []string
	for _, s := range analysis.ImplicitSkills {
		if s.Confidence > 0.8 {
			out = append(out, s.Skill)
		}
	}
	return out
}

func seniorityLevel(ind engine.SeniorityIndicators) string {
	switch {
	case ind.YearsExp >= 7 || (ind.YearsExp >= 5 && ind.Leadership && ind.Architecture):
		return "senior"
	case ind.YearsExp >= 3 || (ind.YearsExp >= 2 && (ind.Leadership || ind.Architecture)):
		return "mid-level"
	default:
		return "junior"
	}
}

func leadershipIndicator(ind engine.SeniorityIndicators) string {
	switch {
	case ind.Leadership && ind.Architecture:
		return "both leadership and technical architecture experience"
	case ind.Leadership:
		return "leadership and team management experience"
	case ind.Architecture:
		return "technical architecture and system design experience"
	default:
		return "strong individual contributor capabilities"
	}
}

func skillsTable(analysis *engine.SkillsAnalysis) string {
	var sb strings.Builder
	sb.WriteString("| Category | Skills | Level |\n|----------|--------|-------|\n")
	if tech := analysis.ExplicitSkills.Tech; len(tech) > 0 {
		fmt.Fprintf(&sb, "| Technical | %s | %s |\n", joinN(tech, 8), techLevel(len(tech), analysis.SeniorityIndicators.YearsExp))
	}
	if domain := analysis.ExplicitSkills.Domain; len(domain) > 0 {
		fmt.Fprintf(&sb, "| Domain | %s | Intermediate |\n", strings.Join(domain, ", "))
	}
	if soft := analysis.ExplicitSkills.Soft; len(soft) > 0 {
		fmt.Fprintf(&sb, "| Soft Skills | %s | Demonstrated |\n", strings.Join(soft, ", "))
	}
	return sb.String()
}

func techLevel(skillCount, yearsExp int) string {
	switch {
	case yearsExp >= 5 && skillCount >= 10:
		return "Senior"
	case yearsExp >= 3 && skillCount >= 6:
		return "Mid-level"
	default:
		return "Junior"
	}
}
