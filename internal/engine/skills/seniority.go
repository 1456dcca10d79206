package skills

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

var (
	rangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
	soloRe  = regexp.MustCompile(`\b\d{4}\b`)
)

// analyzeSeniority sums years across experience entries and flags
// leadership and architecture signals. An open-ended range counts up to
// the configured current year; a lone year counts as one.
func (a *Analyst) analyzeSeniority(cv *engine.StructuredCV) engine.SeniorityIndicators {
	var ind engine.SeniorityIndicators

	for _, exp := range cv.Experience {
		if exp.Dates == "" {
			continue
		}
		if m := rangeRe.FindStringSubmatch(exp.Dates); m != nil {
			start, _ := strconv.Atoi(m[1])
			end := engine.Cfg.CurrentYear
			if y, err := strconv.Atoi(m[2]); err == nil {
				end = y
			}
			if end > start {
				ind.YearsExp += end - start
			}
			continue
		}
		if soloRe.MatchString(exp.Dates) {
			ind.YearsExp++
		}
	}

	var sb strings.Builder
	for _, exp := range cv.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(exp.Bullets, " "))
		sb.WriteString(" ")
	}
	text := strings.ToLower(sb.String())

	ind.Leadership = containsAnySub(text, a.data.LeadershipKeywords...)
	ind.Architecture = containsAnySub(text, a.data.ArchitectureKeywords...)
	return ind
}
