package market

import "github.com/dleonov/go_skillgap/internal/engine"

// genericFallback serves roles outside the static table. Base lists get
// role-keyword extensions; the first matching keyword class wins.
func genericFallback(targetRole string) *engine.MarketIntelligence {
	core := []string{"Programming", "Problem Solving", "Version Control"}
	preferred := []string{"Cloud Platforms", "Testing", "Documentation"}
	trends := []string{"AI Integration", "Cloud-Native Development", "Security"}

	languages := []string{"Python", "JavaScript", "SQL"}
	frameworks := []string{"React", "Django", "Docker"}
	tools := []string{"Git", "Docker", "AWS"}

	role := normalizeRole(targetRole)
	switch {
	case containsAny(role, "ai", "ml", "machine learning", "data"):
		core = append(core, "Python", "Machine Learning", "Data Analysis")
		frameworks = append(frameworks, "TensorFlow", "PyTorch", "Pandas")
		trends = append(trends, "MLOps", "LLM Integration")
	case containsAny(role, "backend", "api", "server"):
		core = append(core, "API Development", "Database Design", "System Architecture")
		frameworks = append(frameworks, "FastAPI", "PostgreSQL", "Redis")
	case containsAny(role, "frontend", "ui", "react"):
		core = append(core, "JavaScript", "React", "CSS")
		frameworks = append(frameworks, "React", "Next.js", "Tailwind CSS")
	case containsAny(role, "devops", "infrastructure", "cloud"):
		core = append(core, "Infrastructure as Code", "CI/CD", "Containerization")
		frameworks = append(frameworks, "Terraform", "Kubernetes", "Jenkins")
	case containsAny(role, "mobile", "ios", "android"):
		core = append(core, "Mobile Development", "iOS Development", "Android Development")
		frameworks = append(frameworks, "React Native", "Flutter", "Xamarin")
	}

	return &engine.MarketIntelligence{
		RoleRequirements: engine.RoleRequirements{
			CoreSkills:      core,
			PreferredSkills: preferred,
			EmergingTrends:  trends,
		},
		TechStack: engine.TechStackPopularity{
			Language:  languages,
			Framework: frameworks,
			Tools:     tools,
		},
		Insights: engine.MarketInsights{
			SalaryRange: "$80,000 - $150,000",
			DemandLevel: "Medium",
			GrowthAreas: []string{"Cloud Technologies", "Automation", "Security"},
		},
		Source: engine.SourceGenericFallback,
	}
}
