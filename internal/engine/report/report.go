// Package report composes the final gap analysis document. Six Markdown
// sections are built in fixed order and joined by blank lines; every
// section renders from whatever upstream data exists, so a partial
// analysis still yields a readable report.
package report

import (
	"log/slog"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
)

// Composer renders analysis state into the final report.
type Composer struct {
	resources *dataset.ResourceData
}

func New() *Composer {
	return &Composer{resources: dataset.Resources()}
}

// Compose builds the report. A missing candidate name or target role makes
// a report meaningless; those come back as warnings with no document.
func (c *Composer) Compose(state *engine.AnalysisState) (string, []string) {
	engine.IncrReportBuilds()

	if state.StructuredCV == nil || state.StructuredCV.Personal.Name == "" {
		return "", []string{"No candidate data available for report generation"}
	}
	if state.TargetRole == "" {
		return "", []string{"No target role specified for report generation"}
	}

	analysis := state.SkillsAnalysis
	if analysis == nil {
		analysis = engine.NewSkillsAnalysis()
	}
	market := state.MarketIntelligence
	if market == nil {
		market = &engine.MarketIntelligence{}
	}

	gaps := c.calculateGaps(state.StructuredCV, analysis, market)

	sections := []string{
		c.executiveSummary(state, analysis, market, gaps),
		c.candidateProfile(state.StructuredCV, analysis),
		c.marketAnalysis(state.TargetRole, market),
		c.gapAssessment(gaps),
		c.roadmap(gaps),
		c.resourceRecommendations(gaps),
	}

	slog.Debug("report composed",
		slog.Int("gaps", len(gaps)),
		slog.Int("sections", len(sections)))

	return strings.Join(sections, "\n\n"), nil
}

// joinN joins at most n items with ", ".
func joinN(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
