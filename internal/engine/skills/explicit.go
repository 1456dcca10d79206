package skills

import (
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// extractExplicit collects skills the CV states directly: the tech union,
// domain tags triggered by titles, employers, and degrees, and soft skill
// tags triggered by bullet and project wording.
func (a *Analyst) extractExplicit(cv *engine.StructuredCV) engine.ExplicitSkills {
	return engine.ExplicitSkills{
		Tech:   allTech(cv),
		Domain: a.domainSkills(cv),
		Soft:   a.softSkills(cv),
	}
}

func (a *Analyst) domainSkills(cv *engine.StructuredCV) []string {
	var out []string
	seen := map[string]bool{}
	add := func(tags ...string) {
		for _, tag := range tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}

	for _, exp := range cv.Experience {
		title := strings.ToLower(exp.Title)
		company := strings.ToLower(exp.Company)

		if containsAnySub(title, "ai", "ml", "machine learning", "data scientist") {
			add("machine learning", "data science", "artificial intelligence")
		}
		if containsAnySub(title, "backend", "server", "api") {
			add("backend development", "api development", "server-side programming")
		}
		if containsAnySub(title, "frontend", "ui", "ux") {
			add("frontend development", "user interface design")
		}
		if containsAnySub(title, "devops", "sre", "infrastructure") {
			add("devops", "infrastructure management", "site reliability")
		}
		if containsAnySub(company, "bank", "fintech", "financial", "trading") {
			add("financial technology", "regulatory compliance")
		}
	}

	for _, edu := range cv.Education {
		degree := strings.ToLower(edu.Degree)
		if strings.Contains(degree, "computer science") {
			add("computer science fundamentals", "algorithms", "data structures")
		} else if strings.Contains(degree, "engineering") {
			add("engineering principles", "systematic problem solving")
		}
	}

	return out
}

func (a *Analyst) softSkills(cv *engine.StructuredCV) []string {
	var sb strings.Builder
	for _, exp := range cv.Experience {
		sb.WriteString(strings.Join(exp.Bullets, " "))
		sb.WriteString(" ")
	}
	for _, p := range cv.Projects {
		sb.WriteString(p.Description)
		sb.WriteString(" ")
	}
	text := strings.ToLower(sb.String())

	var out []string
	if containsAnySub(text, "led", "managed", "coordinated", "supervised") {
		out = append(out, "leadership")
	}
	if containsAnySub(text, "presented", "communicated", "collaborated", "stakeholder") {
		out = append(out, "communication")
	}
	if containsAnySub(text, "solved", "optimized", "improved", "debugged") {
		out = append(out, "problem solving")
	}
	if containsAnySub(text, "planned", "delivered", "milestone", "deadline") {
		out = append(out, "project management")
	}
	return out
}

func containsAnySub(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
