package market

import (
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

// roleSynonyms expands common tech role names into search-friendly variants.
var roleSynonyms = map[string][]string{
	"ai engineer":       {"artificial intelligence engineer", "machine learning engineer", "ai developer"},
	"data scientist":    {"data analyst", "data engineer", "business intelligence"},
	"backend engineer":  {"backend developer", "server developer", "api developer"},
	"frontend engineer": {"frontend developer", "ui developer", "web developer"},
	"devops engineer":   {"devops", "site reliability engineer", "infrastructure engineer"},
	"mobile engineer":   {"mobile developer", "ios developer", "android developer"},
}

// roleTranslations maps non-English role names onto English search terms.
var roleTranslations = map[string][]string{
	"kedokteran":   {"doctor", "physician", "medical doctor", "healthcare professional"},
	"dokter":       {"doctor", "physician", "medical practitioner"},
	"perawat":      {"nurse", "registered nurse", "healthcare nurse"},
	"apoteker":     {"pharmacist", "pharmacy", "pharmaceutical"},
	"bidan":        {"midwife", "obstetric nurse", "maternal health"},
	"psikolog":     {"psychologist", "mental health", "clinical psychology"},
	"fisioterapi":  {"physiotherapist", "physical therapy", "rehabilitation"},
	"radiologi":    {"radiologist", "medical imaging", "radiology technician"},
	"laboratorium": {"medical laboratory", "lab technician", "clinical laboratory"},
	"gizi":         {"nutritionist", "dietitian", "clinical nutrition"},
}

// searchQueries builds the ordered variant list for a role: the role
// itself, translations, synonyms, then keyword-class generics. Capped at
// the configured try limit.
func searchQueries(role string) []string {
	norm := normalizeRole(role)

	var queries []string
	seen := map[string]bool{}
	add := func(q string) {
		q += " jobs"
		if !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}

	add(role)
	for _, t := range roleTranslations[norm] {
		add(t)
	}
	for _, v := range roleSynonyms[norm] {
		add(v)
	}

	switch {
	case containsAny(norm, "engineer", "developer", "programmer"):
		add("software engineer")
		add("developer")
	case containsAny(norm, "doctor", "medical", "health"):
		add("healthcare")
		add("medical professional")
	case containsAny(norm, "data", "analyst", "science"):
		add("data analyst")
		add("business analyst")
	}

	if limit := engine.Cfg.MaxSearchTries; len(queries) > limit {
		queries = queries[:limit]
	}
	return queries
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
