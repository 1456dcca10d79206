package cvparse

import (
	"regexp"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

var projectSplitRe = regexp.MustCompile(`\n\s*[-•]\s*|\n\s*\d+\.\s*`)

// extractProjects splits the projects section on bullet or numbered list
// markers. The first line of each block is the project name, the rest its
// description; the tech stack is whatever known technologies it mentions.
func (e *Extractor) extractProjects(text string) []engine.Project {
	section := e.findSection(text, "projects")
	if section == "" {
		return nil
	}

	var projects []engine.Project
	for _, block := range projectSplitRe.Split(section, -1) {
		block = strings.TrimSpace(block)
		if len(block) <= 10 {
			continue
		}
		lines := strings.SplitN(block, "\n", 2)
		p := engine.Project{Name: strings.TrimSpace(lines[0])}
		if len(lines) > 1 {
			p.Description = strings.TrimSpace(strings.ReplaceAll(lines[1], "\n", " "))
		}

		lower := strings.ToLower(block)
		for _, terms := range [][]string{e.data.Languages, e.data.Frameworks, e.data.Tools} {
			for _, term := range terms {
				if engine.ContainsWord(lower, term) {
					p.TechStack = append(p.TechStack, e.Normalize(term))
				}
			}
		}
		projects = append(projects, p)
	}
	return projects
}
