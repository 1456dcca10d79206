package skills

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func TestMain(m *testing.M) {
	engine.Init(engine.Config{CurrentYear: 2026})
	os.Exit(m.Run())
}

func sampleCV() *engine.StructuredCV {
	cv := engine.NewStructuredCV()
	cv.Personal.Name = "Jane Smith"
	cv.Experience = []engine.Experience{
		{
			Company: "Acme",
			Title:   "Senior Backend Engineer",
			Dates:   "2021 - 2023",
			Bullets: []string{
				"Built services with Python and Docker",
				"Led a team of 4 engineers",
			},
		},
	}
	cv.Skills.Languages = []string{"python"}
	cv.Skills.Tools = []string{"docker", "kubernetes"}
	cv.Education = []engine.Education{
		{Degree: "Master of Science in Computer Science", Year: "2020"},
	}
	cv.Projects = []engine.Project{
		{
			Name:        "InfraWatch",
			Description: "Optimized performance of a monitoring pipeline at enterprise scale",
			TechStack:   []string{"kubernetes"},
		},
	}
	return cv
}

func TestInferExplicit(t *testing.T) {
	analysis, warnings := New().Infer(sampleCV())
	if len(warnings) != 0 {
		t.Fatalf("warnings: %v", warnings)
	}

	tech := analysis.ExplicitSkills.Tech
	want := []string{"python", "docker", "kubernetes"}
	if !reflect.DeepEqual(tech, want) {
		t.Errorf("tech = %v, want %v", tech, want)
	}

	domain := map[string]bool{}
	for _, d := range analysis.ExplicitSkills.Domain {
		domain[d] = true
	}
	for _, d := range []string{"backend development", "computer science fundamentals"} {
		if !domain[d] {
			t.Errorf("domain missing %q: %v", d, analysis.ExplicitSkills.Domain)
		}
	}

	soft := map[string]bool{}
	for _, s := range analysis.ExplicitSkills.Soft {
		soft[s] = true
	}
	if !soft["leadership"] {
		t.Errorf("soft missing leadership: %v", analysis.ExplicitSkills.Soft)
	}
	// "Optimized" appears in the project description.
	if !soft["problem solving"] {
		t.Errorf("soft missing problem solving: %v", analysis.ExplicitSkills.Soft)
	}
}

func TestInferImplicit(t *testing.T) {
	analysis, _ := New().Infer(sampleCV())

	byName := map[string]engine.ImplicitSkill{}
	for _, s := range analysis.ImplicitSkills {
		if _, ok := byName[s.Skill]; !ok {
			byName[s.Skill] = s
		}
	}

	// docker rule
	containerization, ok := byName["containerization"]
	if !ok {
		t.Fatalf("no containerization skill: %v", analysis.ImplicitSkills)
	}
	if containerization.Confidence != 0.8 {
		t.Errorf("containerization confidence = %v", containerization.Confidence)
	}
	if !strings.Contains(containerization.Evidence, "Docker") && !strings.Contains(containerization.Evidence, "docker") {
		t.Errorf("evidence does not mention docker: %q", containerization.Evidence)
	}
	if !strings.Contains(containerization.Evidence, "Senior Backend Engineer") {
		t.Errorf("evidence missing role: %q", containerization.Evidence)
	}

	// kubernetes rule
	if orch, ok := byName["container orchestration"]; !ok || orch.Confidence != 0.9 {
		t.Errorf("container orchestration = %+v, ok = %v", byName["container orchestration"], ok)
	}

	// project signals: scale + optimization keywords both present.
	if _, ok := byName["scalable system design"]; !ok {
		t.Error("missing scalable system design signal")
	}
	if perf, ok := byName["performance optimization"]; !ok || !strings.Contains(perf.Evidence, "InfraWatch") {
		t.Errorf("performance optimization = %+v, ok = %v", byName["performance optimization"], ok)
	}
}

func TestInferDeterministic(t *testing.T) {
	a := New()
	first, _ := a.Infer(sampleCV())
	for i := 0; i < 5; i++ {
		next, _ := a.Infer(sampleCV())
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, first, next)
		}
	}
}

func TestInferNoName(t *testing.T) {
	cv := engine.NewStructuredCV()
	analysis, warnings := New().Infer(cv)
	if analysis == nil {
		t.Fatal("nil analysis")
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "No structured CV data") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestAnalyzeSeniority(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"closed range", []string{"2021 - 2023"}, 2},
		{"open range", []string{"2024 - Present"}, 2},
		{"single year", []string{"2022"}, 1},
		{"no dates", []string{""}, 0},
		{"sum of entries", []string{"2018 - 2021", "2021 - 2023"}, 5},
	}
	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := engine.NewStructuredCV()
			for _, d := range tt.dates {
				cv.Experience = append(cv.Experience, engine.Experience{Dates: d})
			}
			got := a.analyzeSeniority(cv)
			if got.YearsExp != tt.want {
				t.Errorf("YearsExp = %d, want %d", got.YearsExp, tt.want)
			}
		})
	}
}

func TestSeniorityFlags(t *testing.T) {
	a := New()
	ind := a.analyzeSeniority(sampleCV())
	if !ind.Leadership {
		t.Error("leadership flag not set for senior title")
	}
	if ind.YearsExp != 2 {
		t.Errorf("YearsExp = %d, want 2", ind.YearsExp)
	}
}

func TestTransferable(t *testing.T) {
	cv := sampleCV()
	cv.Experience[0].Title = "Team Lead"
	analysis, _ := New().Infer(cv)

	found := false
	for _, ts := range analysis.TransferableSkills {
		if ts.FromDomain == "" || ts.Relevance == "" {
			t.Errorf("incomplete transferable skill: %+v", ts)
		}
		if ts.Skill == "mentoring" {
			found = true
		}
	}
	if !found {
		t.Errorf("no mentoring skill for team lead background: %v", analysis.TransferableSkills)
	}
}
