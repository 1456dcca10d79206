package skills

import (
	"sort"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// identifyTransferable scans career history for background keywords and
// maps each hit to the skills carried over from that domain. Keywords are
// visited in sorted order so output order is stable.
func (a *Analyst) identifyTransferable(cv *engine.StructuredCV) []engine.TransferableSkill {
	var sb strings.Builder
	for _, exp := range cv.Experience {
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Company)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(exp.Bullets, " "))
		sb.WriteString(" ")
	}
	for _, edu := range cv.Education {
		sb.WriteString(edu.Degree)
		sb.WriteString(" ")
		sb.WriteString(edu.Institution)
		sb.WriteString(" ")
	}
	text := strings.ToLower(sb.String())

	keywords := make([]string, 0, len(a.data.Transferable))
	for kw := range a.data.Transferable {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	var out []engine.TransferableSkill
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			continue
		}
		rule := a.data.Transferable[kw]
		for _, skill := range rule.Skills {
			out = append(out, engine.TransferableSkill{
				Skill:      skill,
				FromDomain: rule.Domain,
				Relevance:  a.relevance(skill),
			})
		}
	}
	return out
}

func (a *Analyst) relevance(skill string) string {
	if r, ok := a.data.Relevance[skill]; ok {
		return r
	}
	return a.data.DefaultRelevance
}
