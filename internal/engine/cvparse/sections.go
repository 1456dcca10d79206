package cvparse

import "strings"

// findSection returns the body of the named section: the text between the
// end of its header line and the start of the nearest other section header
// (or end of text). Empty string when no header matches.
func (e *Extractor) findSection(text, name string) string {
	for _, re := range e.sections[name] {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		start := loc[1]

		end := len(text)
		for other, patterns := range e.sections {
			if other == name {
				continue
			}
			for _, next := range patterns {
				if nextLoc := next.FindStringIndex(text[start:]); nextLoc != nil {
					if start+nextLoc[0] < end {
						end = start + nextLoc[0]
					}
				}
			}
		}
		return strings.TrimSpace(text[start:end])
	}
	return ""
}
