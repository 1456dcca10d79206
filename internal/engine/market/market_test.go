package market

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/dleonov/go_skillgap/internal/engine"
)

func TestMain(m *testing.M) {
	engine.Init(engine.Config{})
	os.Exit(m.Run())
}

func TestRoleKey(t *testing.T) {
	r := New()
	tests := []struct {
		role, want string
	}{
		{"AI Engineer", "senior_ai_engineer"},
		{"ml engineer", "senior_ai_engineer"},
		{"Backend Developer", "backend_engineer"},
		{"SRE", "devops_engineer"},
		{"Senior Backend Engineer", "backend_engineer"}, // substring match
		{"data_scientist", "data_scientist"},            // direct table key
		{"Underwater Basket Weaver", ""},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := r.roleKey(tt.role); got != tt.want {
				t.Errorf("roleKey(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestStaticLookup(t *testing.T) {
	r := New()
	intel := r.staticLookup("Backend Engineer")
	if intel == nil {
		t.Fatal("nil for known role")
	}
	if intel.Source != engine.SourceSimulation {
		t.Errorf("source = %q", intel.Source)
	}
	if len(intel.RoleRequirements.CoreSkills) == 0 {
		t.Error("no core skills")
	}
	if intel.Insights.SalaryRange == "" {
		t.Error("no salary range")
	}
}

func TestResolveAlwaysReturns(t *testing.T) {
	r := New()
	for _, role := range []string{"Backend Engineer", "Quantum Harpist", ""} {
		intel := r.Resolve(context.Background(), role)
		if intel == nil {
			t.Fatalf("nil intelligence for %q", role)
		}
		if len(intel.RoleRequirements.CoreSkills) == 0 {
			t.Errorf("empty core skills for %q", role)
		}
		if intel.Insights.SalaryRange == "" {
			t.Errorf("empty salary range for %q", role)
		}
	}
}

func TestGenericFallback(t *testing.T) {
	intel := genericFallback("Blockchain Evangelist")
	if intel.Source != engine.SourceGenericFallback {
		t.Errorf("source = %q", intel.Source)
	}
	if intel.Insights.SalaryRange != "$80,000 - $150,000" {
		t.Errorf("salary = %q", intel.Insights.SalaryRange)
	}

	// Role keyword extensions apply on top of the base lists.
	devops := genericFallback("Platform Infrastructure Lead")
	found := false
	for _, s := range devops.RoleRequirements.CoreSkills {
		if s == "CI/CD" {
			found = true
		}
	}
	if !found {
		t.Errorf("no devops extension: %v", devops.RoleRequirements.CoreSkills)
	}
}

func TestSearchQueries(t *testing.T) {
	queries := searchQueries("Backend Engineer")
	if len(queries) == 0 || len(queries) > engine.Cfg.MaxSearchTries {
		t.Fatalf("query count = %d", len(queries))
	}
	if queries[0] != "Backend Engineer jobs" {
		t.Errorf("first query = %q", queries[0])
	}
	seen := map[string]bool{}
	for _, q := range queries {
		if seen[q] {
			t.Errorf("duplicate query %q", q)
		}
		seen[q] = true
		if !strings.HasSuffix(q, " jobs") {
			t.Errorf("query %q missing suffix", q)
		}
	}
}

func TestParsePostings(t *testing.T) {
	min1, max1 := 100000.0, 160000.0
	min2, max2 := 120000.0, 180000.0
	postings := []jobPosting{
		{
			Title:       "Senior Python Developer",
			Description: "We use python and docker daily. Docker experience required.",
			MinSalary:   &min1,
			MaxSalary:   &max1,
		},
		{
			Title:       "Platform Engineer",
			Description: "Kubernetes plus terraform, some react.",
			MinSalary:   &min2,
			MaxSalary:   &max2,
		},
	}

	intel := parsePostings(postings)
	if intel.Source != engine.SourceJSearchAPI {
		t.Errorf("source = %q", intel.Source)
	}

	core := map[string]bool{}
	for _, s := range intel.RoleRequirements.CoreSkills {
		core[s] = true
	}
	// "python" is in the title; "docker" appears twice.
	if !core["Python"] || !core["Docker"] {
		t.Errorf("core = %v", intel.RoleRequirements.CoreSkills)
	}

	preferred := map[string]bool{}
	for _, s := range intel.RoleRequirements.PreferredSkills {
		preferred[s] = true
	}
	if !preferred["React"] {
		t.Errorf("preferred = %v", intel.RoleRequirements.PreferredSkills)
	}

	if intel.Insights.SalaryRange != "$110,000 - $170,000" {
		t.Errorf("salary = %q", intel.Insights.SalaryRange)
	}
	if intel.Insights.DemandLevel != "Low" {
		t.Errorf("demand = %q for 2 postings", intel.Insights.DemandLevel)
	}
}

func TestDemandLevel(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{60, "Very High"},
		{50, "Very High"},
		{25, "High"},
		{12, "Medium"},
		{3, "Low"},
		{0, "Low"},
	}
	for _, tt := range tests {
		if got := demandLevel(tt.count); got != tt.want {
			t.Errorf("demandLevel(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{80000, "80,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatThousands(tt.in); got != tt.want {
			t.Errorf("formatThousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
