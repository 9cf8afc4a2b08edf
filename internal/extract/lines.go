package extract

import (
	"regexp"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// SplitLines splits raw text into trimmed non-empty lines, order preserved.
// Empty input yields an empty sequence.
func SplitLines(raw string) []string {
	lines := make([]string, 0)
	for _, ln := range strings.Split(raw, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
