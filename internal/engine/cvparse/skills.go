package cvparse

import (
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// extractSkills matches known technology names against the skills section
// and, as a backstop, the whole document. Matches are normalized and
// reported in wordlist order so repeated runs produce identical output.
func (e *Extractor) extractSkills(text string) engine.CVSkills {
	section := strings.ToLower(e.findSection(text, "skills"))
	full := strings.ToLower(text)

	return engine.CVSkills{
		Languages:  e.matchCategory(section, full, e.data.Languages),
		Frameworks: e.matchCategory(section, full, e.data.Frameworks),
		Tools:      e.matchCategory(section, full, e.data.Tools),
	}
}

func (e *Extractor) matchCategory(section, full string, terms []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, term := range terms {
		if !engine.ContainsWord(section, term) && !engine.ContainsWord(full, term) {
			continue
		}
		norm := e.Normalize(term)
		if !seen[norm] {
			seen[norm] = true
			out = append(out, norm)
		}
	}
	return out
}

// Normalize maps spelling variants onto one canonical token, so "Node.js"
// and "node" both count as nodejs downstream.
func (e *Extractor) Normalize(term string) string {
	lower := strings.ToLower(term)
	if canonical, ok := e.data.Normalizations[lower]; ok {
		return canonical
	}
	return lower
}
