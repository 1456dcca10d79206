package analysis

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func TestMain(m *testing.M) {
	engine.Init(engine.Config{CurrentYear: 2026})
	os.Exit(m.Run())
}

const janeCV = "Jane Smith\njane@x.com\n\nEXPERIENCE\nSenior Developer, Acme (2021-2023)\n• Built services with Python and Docker\n\nSKILLS\nPython, Docker, Kubernetes"

func TestRunAnalysisEndToEnd(t *testing.T) {
	state := NewRunner().RunAnalysis(context.Background(), janeCV, "Backend Engineer")

	if state.StructuredCV == nil || state.StructuredCV.Personal.Name != "Jane Smith" {
		t.Fatalf("name = %+v", state.StructuredCV)
	}

	tech := map[string]bool{}
	for _, s := range state.SkillsAnalysis.ExplicitSkills.Tech {
		tech[s] = true
	}
	if !tech["docker"] || !tech["kubernetes"] {
		t.Errorf("tech = %v", state.SkillsAnalysis.ExplicitSkills.Tech)
	}

	dockerEvidence := false
	for _, s := range state.SkillsAnalysis.ImplicitSkills {
		if strings.Contains(strings.ToLower(s.Evidence), "docker") {
			dockerEvidence = true
		}
	}
	if !dockerEvidence {
		t.Errorf("no implicit evidence referencing docker: %v", state.SkillsAnalysis.ImplicitSkills)
	}

	if got := state.SkillsAnalysis.SeniorityIndicators.YearsExp; got != 2 {
		t.Errorf("YearsExp = %d, want 2", got)
	}

	if state.MarketIntelligence == nil || state.MarketIntelligence.Source != engine.SourceSimulation {
		t.Errorf("market = %+v", state.MarketIntelligence)
	}

	if state.FinalReport == "" {
		t.Fatal("empty final report")
	}
	if !strings.Contains(state.FinalReport, "Skill Gap Analysis") {
		t.Error("report missing gap analysis heading")
	}
}

func TestRunAnalysisEmptyCV(t *testing.T) {
	state := NewRunner().RunAnalysis(context.Background(), "   ", "Backend Engineer")

	if state.StructuredCV == nil {
		t.Fatal("nil structured CV for empty input")
	}
	found := false
	for _, e := range state.Errors {
		if e == "Empty CV content provided" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", state.Errors)
	}
	// No candidate name means no report, but market data still resolves.
	if state.FinalReport != "" {
		t.Error("report should be empty without candidate data")
	}
	if state.MarketIntelligence == nil {
		t.Error("market stage should still run")
	}
}

func TestRunAnalysisEmptyRole(t *testing.T) {
	state := NewRunner().RunAnalysis(context.Background(), janeCV, "")

	if state.MarketIntelligence != nil {
		t.Error("market stage should skip without a role")
	}
	roleErr, reportErr := false, false
	for _, e := range state.Errors {
		if strings.Contains(e, "target role required") {
			roleErr = true
		}
		if strings.Contains(e, "No target role specified") {
			reportErr = true
		}
	}
	if !roleErr || !reportErr {
		t.Errorf("errors = %v", state.Errors)
	}
}

func TestErrorsAppendOnly(t *testing.T) {
	state := NewRunner().RunAnalysis(context.Background(), "", "")
	if state.Errors == nil {
		t.Fatal("errors slice must be non-nil")
	}
	if len(state.Errors) < 2 {
		t.Errorf("expected accumulated errors, got %v", state.Errors)
	}
}
