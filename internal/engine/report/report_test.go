package report

import (
	"os"
	"strings"
	"testing"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func TestMain(m *testing.M) {
	engine.Init(engine.Config{})
	os.Exit(m.Run())
}

func sampleState() *engine.AnalysisState {
	state := engine.NewAnalysisState("raw text", "Backend Engineer")

	cv := engine.NewStructuredCV()
	cv.Personal.Name = "Jane Smith"
	cv.Experience = []engine.Experience{
		{Title: "Senior Developer", Company: "Acme", Dates: "2021 - 2023",
			Bullets: []string{"Built services with Python and Docker"}},
	}
	cv.Projects = []engine.Project{{Name: "InfraWatch", Description: "monitoring"}}
	state.StructuredCV = cv

	analysis := engine.NewSkillsAnalysis()
	analysis.ExplicitSkills.Tech = []string{"python", "docker", "kubernetes"}
	analysis.ExplicitSkills.Soft = []string{"leadership"}
	analysis.ImplicitSkills = []engine.ImplicitSkill{
		{Skill: "containerization", Evidence: "Used Docker in Senior Developer role", Confidence: 0.8},
		{Skill: "container orchestration", Evidence: "Experience with kubernetes", Confidence: 0.9},
	}
	analysis.SeniorityIndicators = engine.SeniorityIndicators{YearsExp: 2, Leadership: true}
	state.SkillsAnalysis = analysis

	state.MarketIntelligence = &engine.MarketIntelligence{
		RoleRequirements: engine.RoleRequirements{
			CoreSkills:      []string{"Python", "Go", "Docker"},
			PreferredSkills: []string{"Kafka", "Redis"},
			EmergingTrends:  []string{"Microservices"},
		},
		TechStack: engine.TechStackPopularity{
			Language:  []string{"Python", "Go"},
			Framework: []string{"Django"},
			Tools:     []string{"Docker"},
		},
		Insights: engine.MarketInsights{
			SalaryRange: "$120,000 - $180,000",
			DemandLevel: "High",
			GrowthAreas: []string{"Cloud Native"},
		},
		Source: engine.SourceSimulation,
	}
	return state
}

func TestCompose(t *testing.T) {
	doc, warnings := New().Compose(sampleState())
	if len(warnings) != 0 {
		t.Fatalf("warnings: %v", warnings)
	}
	if doc == "" {
		t.Fatal("empty report")
	}

	for _, want := range []string{
		"# CV Skill Gap Analysis: Jane Smith",
		"## Executive Summary",
		"## Candidate Profile",
		"## Market Requirements: Backend Engineer",
		"## Skill Gap Analysis",
		"## Upskilling Roadmap (6-Week Plan)",
		"## Recommended Resources",
		"| Required Skill | Current Level | Gap | Priority | Evidence |",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Six sections joined by blank lines.
	if got := len(strings.Split(doc, "\n\n## Candidate Profile")); got != 2 {
		t.Errorf("candidate profile not blank-line separated")
	}
}

func TestComposeValidation(t *testing.T) {
	c := New()

	noName := sampleState()
	noName.StructuredCV.Personal.Name = ""
	if doc, warnings := c.Compose(noName); doc != "" || len(warnings) != 1 {
		t.Errorf("no-name: doc=%q warnings=%v", doc, warnings)
	}

	noRole := sampleState()
	noRole.TargetRole = ""
	if doc, warnings := c.Compose(noRole); doc != "" || len(warnings) != 1 {
		t.Errorf("no-role: doc=%q warnings=%v", doc, warnings)
	}
}

func TestCalculateGaps(t *testing.T) {
	state := sampleState()
	gaps := New().calculateGaps(state.StructuredCV, state.SkillsAnalysis, state.MarketIntelligence)

	byName := map[string]Gap{}
	for _, g := range gaps {
		byName[g.Skill] = g
	}

	// Core skill absent from candidate.
	goGap, ok := byName["Go"]
	if !ok {
		t.Fatal("no gap row for Go")
	}
	if goGap.Priority != "Critical" || goGap.GapLevel != "High" || goGap.CurrentLevel != "None" {
		t.Errorf("Go gap = %+v", goGap)
	}
	if goGap.Evidence != "Not found in CV" {
		t.Errorf("Go evidence = %q", goGap.Evidence)
	}

	// Core skill the candidate has.
	pyGap := byName["Python"]
	if pyGap.Priority != "Important" || pyGap.GapLevel != "Medium" || pyGap.CurrentLevel != "Basic" {
		t.Errorf("Python gap = %+v", pyGap)
	}
	if pyGap.Evidence != "Listed in technical skills section" {
		t.Errorf("Python evidence = %q", pyGap.Evidence)
	}

	// Preferred skill absent from candidate.
	kafka := byName["Kafka"]
	if kafka.Priority != "Nice-to-have" || kafka.GapLevel != "Medium" {
		t.Errorf("Kafka gap = %+v", kafka)
	}
}

func TestCalculateGapsNormalizedNames(t *testing.T) {
	state := sampleState()
	state.SkillsAnalysis.ExplicitSkills.Tech = append(state.SkillsAnalysis.ExplicitSkills.Tech, "postgres")
	state.MarketIntelligence.RoleRequirements.CoreSkills = append(
		state.MarketIntelligence.RoleRequirements.CoreSkills, "PostgreSQL")
	state.MarketIntelligence.RoleRequirements.PreferredSkills = []string{"MongoDB"}

	gaps := New().calculateGaps(state.StructuredCV, state.SkillsAnalysis, state.MarketIntelligence)
	byName := map[string]Gap{}
	for _, g := range gaps {
		byName[g.Skill] = g
	}

	pg, ok := byName["PostgreSQL"]
	if !ok {
		t.Fatal("no gap row for PostgreSQL")
	}
	if pg.Priority != "Important" {
		t.Errorf("PostgreSQL priority = %q, want Important despite spelling variant", pg.Priority)
	}
	if pg.Evidence != "Listed in technical skills section" {
		t.Errorf("PostgreSQL evidence = %q", pg.Evidence)
	}

	// MongoDB is genuinely absent, variant folding must not invent a match.
	if mongo := byName["MongoDB"]; mongo.Priority != "Nice-to-have" {
		t.Errorf("MongoDB priority = %q, want Nice-to-have", mongo.Priority)
	}
}

func TestFindEvidenceSingleEllipsis(t *testing.T) {
	state := sampleState()
	state.SkillsAnalysis.ImplicitSkills = []engine.ImplicitSkill{
		{Skill: "containerization", Evidence: "Used Docker in Senior Developer role: Built the deploy pipeline...", Confidence: 0.8},
	}

	got := New().findEvidence("Containerization", state.StructuredCV, state.SkillsAnalysis)
	if strings.Contains(got, "....") {
		t.Errorf("stacked ellipsis in evidence: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("evidence not marked as snippet: %q", got)
	}
}

func TestGapInsights(t *testing.T) {
	tests := []struct {
		critical int
		want     string
	}{
		{0, "Strong Match"},
		{2, "Good Foundation"},
		{3, "Good Foundation"},
		{4, "Significant Gaps"},
	}
	for _, tt := range tests {
		if got := gapInsights(tt.critical); !strings.Contains(got, tt.want) {
			t.Errorf("gapInsights(%d) = %q, want substring %q", tt.critical, got, tt.want)
		}
	}
}

func TestSeniorityLevel(t *testing.T) {
	tests := []struct {
		ind  engine.SeniorityIndicators
		want string
	}{
		{engine.SeniorityIndicators{YearsExp: 8}, "senior"},
		{engine.SeniorityIndicators{YearsExp: 5, Leadership: true, Architecture: true}, "senior"},
		{engine.SeniorityIndicators{YearsExp: 4}, "mid-level"},
		{engine.SeniorityIndicators{YearsExp: 2, Leadership: true}, "mid-level"},
		{engine.SeniorityIndicators{YearsExp: 1}, "junior"},
	}
	for _, tt := range tests {
		if got := seniorityLevel(tt.ind); got != tt.want {
			t.Errorf("seniorityLevel(%+v) = %q, want %q", tt.ind, got, tt.want)
		}
	}
}

func TestResourceRecommendations(t *testing.T) {
	gaps := []Gap{
		{Skill: "Docker", Priority: "Critical"},
		{Skill: "Quantum Tunneling", Priority: "Critical"}, // no curated entry
	}
	doc := New().resourceRecommendations(gaps)
	if !strings.Contains(doc, "#### Docker") {
		t.Error("missing curated Docker resources")
	}
	if strings.Contains(doc, "Quantum Tunneling") {
		t.Error("uncurated skill should be omitted")
	}
	if !strings.Contains(doc, "**Beginner**") {
		t.Error("missing level headings")
	}
}
