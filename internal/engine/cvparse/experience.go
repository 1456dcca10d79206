package cvparse

import (
	"regexp"
	"strings"

	"github.com/dleonov/go_skillgap/internal/engine"
)

var (
	dateRangeRe = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	bulletRe    = regexp.MustCompile(`^[•\-*]\s*`)
	numberedRe  = regexp.MustCompile(`^\d+\.\s*`)
)

// extractExperience splits the experience section into entries. A line
// carrying a four-digit year opens a new entry; everything until the next
// such line belongs to it.
func (e *Extractor) extractExperience(text string) []engine.Experience {
	section := e.findSection(text, "experience")
	if section == "" {
		return nil
	}

	var blocks [][]string
	var current []string
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if yearRe.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	var entries []engine.Experience
	for _, block := range blocks {
		if entry, ok := e.parseExperienceBlock(block); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (e *Extractor) parseExperienceBlock(lines []string) (engine.Experience, bool) {
	var entry engine.Experience

	heading := lines[0]
	if m := dateRangeRe.FindString(heading); m != "" {
		entry.Dates = m
		heading = strings.TrimSpace(dateRangeRe.ReplaceAllString(heading, ""))
		heading = strings.ReplaceAll(heading, "()", "")
		heading = strings.Trim(heading, " |,-")
	}
	entry.Company, entry.Title = e.splitHeading(heading)

	for _, line := range lines[1:] {
		// Date-only and date-bearing plain lines are metadata, not bullets.
		if !bulletRe.MatchString(line) && !numberedRe.MatchString(line) && dateRangeRe.MatchString(line) {
			if entry.Dates == "" {
				entry.Dates = dateRangeRe.FindString(line)
			}
			continue
		}
		stripped := bulletRe.ReplaceAllString(line, "")
		stripped = numberedRe.ReplaceAllString(stripped, "")
		stripped = strings.TrimSpace(stripped)
		if stripped != "" {
			entry.Bullets = append(entry.Bullets, stripped)
		}
	}

	if entry.Company == "" && entry.Title == "" && len(entry.Bullets) == 0 {
		return entry, false
	}
	return entry, true
}

// splitHeading decides which half of a heading is the company and which is
// the job title. Separator order matters: comma, " at ", dash, pipe.
func (e *Extractor) splitHeading(heading string) (company, title string) {
	if heading == "" {
		return "", ""
	}
	if before, after, found := strings.Cut(heading, ","); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if i := indexWordFold(heading, " at "); i >= 0 {
		return strings.TrimSpace(heading[i+4:]), strings.TrimSpace(heading[:i])
	}
	if before, after, found := strings.Cut(heading, " - "); found {
		left, right := strings.TrimSpace(before), strings.TrimSpace(after)
		if e.looksCorporate(left) && !e.looksCorporate(right) {
			return left, right
		}
		if e.looksTitle(left) && !e.looksTitle(right) {
			return right, left
		}
		return left, right
	}
	if before, after, found := strings.Cut(heading, " | "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	if e.looksTitle(heading) {
		return "", heading
	}
	return heading, ""
}

func (e *Extractor) looksCorporate(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range e.data.CorporateSuffixes {
		if engine.ContainsWord(lower, suffix) {
			return true
		}
	}
	return false
}

func (e *Extractor) looksTitle(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range e.data.TitleKeywords {
		if engine.ContainsWord(lower, kw) {
			return true
		}
	}
	return false
}

// indexWordFold reports the index of sep matched case-insensitively,
// leaving the original casing of the surrounding text intact.
func indexWordFold(s, sep string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(sep))
}
