package cvparse

import (
	"regexp"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

var fieldRe = regexp.MustCompile(`(?i)\b(?:in|of)\s+([A-Za-z][A-Za-z ]{2,40}?)(?:,|\n|$|\s+\d{4})`)

// extractEducation pulls degree lines and looks for an institution within
// 100 characters of each match.
func (e *Extractor) extractEducation(text string) []engine.Education {
	section := e.findSection(text, "education")
	scope := section
	if scope == "" {
		scope = text
	}

	var entries []engine.Education
	for _, degreeRe := range e.degrees {
		for _, loc := range degreeRe.FindAllStringSubmatchIndex(scope, -1) {
			entry := engine.Education{
				Degree: strings.TrimSpace(scope[loc[0]:loc[1]]),
			}
			if loc[4] >= 0 {
				entry.Year = scope[loc[4]:loc[5]]
			}

			lo := max(0, loc[0]-100)
			hi := min(len(scope), loc[1]+100)
			context := scope[lo:hi]
			for _, instRe := range e.insts {
				if m := instRe.FindString(context); m != "" {
					entry.Institution = strings.TrimSpace(m)
					break
				}
			}
			if m := fieldRe.FindStringSubmatch(entry.Degree); len(m) > 1 {
				entry.Field = strings.TrimSpace(m[1])
			}
			entries = append(entries, entry)
		}
	}
	return entries
}
