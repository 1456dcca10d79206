package market

import (
	"fmt"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// postingKeywords drive skill extraction from job posting text, grouped by
// category. Order inside each list is the output order.
var postingKeywords = []struct {
	category string
	terms    []string
}{
	{"languages", []string{"python", "java", "javascript", "typescript", "go", "rust", "c++", "c#", "php", "ruby", "swift", "kotlin"}},
	{"frameworks", []string{"react", "angular", "vue", "django", "flask", "spring", "express", "laravel", "rails"}},
	{"tools", []string{"docker", "kubernetes", "git", "jenkins", "aws", "azure", "gcp", "terraform", "ansible"}},
	{"databases", []string{"postgresql", "mysql", "mongodb", "redis", "elasticsearch"}},
	{"emerging", []string{"ai", "machine learning", "blockchain", "microservices", "devops", "cloud native"}},
}

// parsePostings distills market intelligence from job postings. A keyword
// counts as core when it shows up at least twice in one posting or appears
// in a title; otherwise it is preferred. Salary is the mean of posting
// bounds; demand is a step function of posting count.
func parsePostings(postings []jobPosting) *engine.MarketIntelligence {
	type bucket struct {
		items []string
		seen  map[string]bool
	}
	newBucket := func() *bucket { return &bucket{seen: map[string]bool{}} }
	add := func(b *bucket, s string) {
		if !b.seen[s] {
			b.seen[s] = true
			b.items = append(b.items, s)
		}
	}

	core, preferred, emerging := newBucket(), newBucket(), newBucket()
	languages, frameworks, tools := newBucket(), newBucket(), newBucket()

	var minSum, maxSum float64
	var salaryCount int

	scan := postings
	if len(scan) > engine.Cfg.MaxPostingsScan {
		scan = scan[:engine.Cfg.MaxPostingsScan]
	}
	for _, job := range scan {
		title := strings.ToLower(job.Title)
		combined := title + " " + strings.ToLower(stripTags(job.Description))

		if job.MinSalary != nil && job.MaxSalary != nil {
			minSum += *job.MinSalary
			maxSum += *job.MaxSalary
			salaryCount++
		}

		for _, group := range postingKeywords {
			for _, kw := range group.terms {
				if !strings.Contains(combined, kw) {
					continue
				}
				name := titleCase(kw)
				switch group.category {
				case "languages":
					add(languages, name)
				case "frameworks":
					add(frameworks, name)
				case "tools":
					add(tools, name)
				case "emerging":
					add(emerging, name)
				}
				if strings.Count(combined, kw) >= 2 || strings.Contains(title, kw) {
					add(core, name)
				} else {
					add(preferred, name)
				}
			}
		}
	}

	salaryRange := "Salary data not available"
	if salaryCount > 0 {
		avgMin := int(minSum) / salaryCount
		avgMax := int(maxSum) / salaryCount
		salaryRange = fmt.Sprintf("$%s - $%s", formatThousands(avgMin), formatThousands(avgMax))
	}

	return &engine.MarketIntelligence{
		RoleRequirements: engine.RoleRequirements{
			CoreSkills:      cap10(core.items),
			PreferredSkills: cap10(preferred.items),
			EmergingTrends:  capN(emerging.items, 5),
		},
		TechStack: engine.TechStackPopularity{
			Language:  capN(languages.items, 5),
			Framework: capN(frameworks.items, 5),
			Tools:     capN(tools.items, 5),
		},
		Insights: engine.MarketInsights{
			SalaryRange: salaryRange,
			DemandLevel: demandLevel(len(postings)),
			GrowthAreas: capN(emerging.items, 3),
		},
		Source: engine.SourceJSearchAPI,
	}
}

func demandLevel(postingCount int) string {
	switch {
	case postingCount >= engine.Cfg.DemandVeryHigh:
		return "Very High"
	case postingCount >= engine.Cfg.DemandHigh:
		return "High"
	case postingCount >= engine.Cfg.DemandMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func cap10(items []string) []string { return capN(items, 10) }

func capN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatThousands renders 123456 as "123,456".
func formatThousands(n int) string {
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
