// Package cvparse turns raw CV text into a structured CV. Extraction is
// rule-based: section headers are located by ordered regex lists, fields by
// fixed patterns and keyword heuristics. An optional entity recognizer can
// fill fields the rules leave empty; it is never required.
package cvparse

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dleonov/go_skillgap/internal/engine"
	"github.com/dleonov/go_skillgap/internal/engine/dataset"
)

// Extractor is the CV text segmenter and field extractor. Construct once
// and reuse; it is safe for concurrent use.
type Extractor struct {
	data     *dataset.ParserData
	sections map[string][]*regexp.Regexp
	degrees  []*regexp.Regexp
	insts    []*regexp.Regexp
	ner      EntityRecognizer // nil = regex-only extraction
}

// New builds an Extractor. Pass a nil recognizer for regex-only extraction;
// the enhancement strategy is fixed here, not checked per call.
func New(ner EntityRecognizer) *Extractor {
	data := dataset.Parser()
	e := &Extractor{
		data: data,
		sections: map[string][]*regexp.Regexp{
			"experience": compileHeaders(data.SectionPatterns.Experience),
			"skills":     compileHeaders(data.SectionPatterns.Skills),
			"education":  compileHeaders(data.SectionPatterns.Education),
			"projects":   compileHeaders(data.SectionPatterns.Projects),
		},
		ner: ner,
	}
	for _, p := range data.DegreePatterns {
		e.degrees = append(e.degrees, regexp.MustCompile(p))
	}
	for _, p := range data.InstitutionPatterns {
		e.insts = append(e.insts, regexp.MustCompile(p))
	}
	return e
}

func compileHeaders(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		// Header line: pattern, optional colon, then end of line.
		res = append(res, regexp.MustCompile(`(?i)`+p+`:?[ \t]*\n`))
	}
	return res
}

// Extract parses raw CV text into a structured CV. Always returns a usable
// CV; problems come back as warning strings, never as a panic.
func (e *Extractor) Extract(ctx context.Context, text string) (*engine.StructuredCV, []string) {
	engine.IncrParseRequests()
	var warnings []string

	cv := engine.NewStructuredCV()
	cv.Personal = e.extractPersonal(text)
	cv.Experience = e.extractExperience(text)
	cv.Skills = e.extractSkills(text)
	cv.Education = e.extractEducation(text)
	cv.Projects = e.extractProjects(text)

	if e.ner != nil {
		e.applyEntities(ctx, text, cv)
	}

	found := sectionsFound(cv)
	if found < engine.Cfg.MinSectionsFound {
		warnings = append(warnings, fmt.Sprintf("Only %d out of 5 sections detected. CV may be poorly formatted.", found))
	}
	slog.Debug("cv extraction done", slog.Int("sections", found))

	return cv, warnings
}

// sectionsFound counts how many of the five signal sections extraction
// produced anything for.
func sectionsFound(cv *engine.StructuredCV) int {
	found := 0
	if cv.Personal.Name != "" {
		found++
	}
	for _, exp := range cv.Experience {
		if exp.Company != "" || exp.Title != "" {
			found++
			break
		}
	}
	if len(cv.Skills.Languages) > 0 || len(cv.Skills.Frameworks) > 0 || len(cv.Skills.Tools) > 0 {
		found++
	}
	if len(cv.Education) > 0 {
		found++
	}
	if len(cv.Projects) > 0 {
		found++
	}
	return found
}
