package cvparse

import (
	"regexp"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

var (
	boilerplateRe = regexp.MustCompile(`(?i)^(curriculum|vitae|resume|cv)\b`)
	emailRe       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe       = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe    = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe      = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// extractPersonal finds the candidate name and contact details. The name is
// the first of the first five non-empty lines that is not CV boilerplate.
// Contact channels are matched independently; absent ones stay out of the map.
func (e *Extractor) extractPersonal(text string) engine.PersonalInfo {
	personal := engine.PersonalInfo{Contact: map[string]string{}}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
		if len(lines) == 5 {
			break
		}
	}
	for _, line := range lines {
		if !boilerplateRe.MatchString(line) && len(line) > 2 {
			personal.Name = line
			break
		}
	}

	if m := emailRe.FindString(text); m != "" {
		personal.Contact["email"] = m
	}
	if m := phoneRe.FindString(text); m != "" {
		personal.Contact["phone"] = m
	}
	if m := linkedinRe.FindString(text); m != "" {
		personal.Contact["linkedin"] = m
	}
	if m := githubRe.FindString(text); m != "" {
		personal.Contact["github"] = m
	}

	return personal
}
