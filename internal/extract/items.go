package extract

import (
	"regexp"
	"strings"
)

var (
	itemsStartRe   = regexp.MustCompile(`(?i)\bDetails\s+of\s+Goods(?:\s*/\s*Services)?\b`)
	itemsEndRe     = regexp.MustCompile(`(?i)Taxable\s+Amt|Total\s+Inv`)
	serialHeaderRe = regexp.MustCompile(`(?i)^\s*(?:Sr|S|Sl)\.?\s*No\b`)
	itemMarkerRe   = regexp.MustCompile(`^\d+\s+`)
)

// serialWindow is the fallback scan size when no goods section is labeled.
const serialWindow = 200

// SegmentItems isolates the line-item region of the document and groups it
// into one group per item start marker (a leading integer followed by
// whitespace). Lines before the first marker are dropped; a document with
// no markers yields zero groups.
func SegmentItems(lines []string) [][]string {
	var groups [][]string
	for _, ln := range itemRegion(lines) {
		if itemMarkerRe.MatchString(ln) {
			groups = append(groups, []string{ln})
			continue
		}
		if len(groups) > 0 {
			groups[len(groups)-1] = append(groups[len(groups)-1], ln)
		}
	}
	return groups
}

// itemRegion picks the sub-sequence to segment: the range between a
// "Details of Goods" label and a "Taxable Amt"/"Total Inv" line (terminator
// included), else a fixed window from a serial-number header, else the
// whole sequence.
func itemRegion(lines []string) []string {
	for i, ln := range lines {
		if itemsStartRe.MatchString(ln) {
			end := len(lines)
			for j := i + 1; j < len(lines); j++ {
				if itemsEndRe.MatchString(lines[j]) {
					end = j + 1
					break
				}
			}
			return lines[i+1 : end]
		}
	}
	for i, ln := range lines {
		if serialHeaderRe.MatchString(ln) {
			end := i + serialWindow
			if end > len(lines) {
				end = len(lines)
			}
			return lines[i:end]
		}
	}
	return lines
}

// Description-builder states: the walk scans for the HSN token, then stops
// accepting text once it has been seen.
const (
	scanningForCode = iota
	codeFound
)

var (
	hsnTokenRe      = regexp.MustCompile(`\b\d{6,8}\b`)
	leadingSerialRe = regexp.MustCompile(`^\d+\s+`)
	letterRe        = regexp.MustCompile(`[A-Za-z]`)
)

// descStoplist rejects column-header noise from item descriptions.
var descStoplist = []string{
	"Qty", "Quantity", "Unit", "Price", "Rate", "Tax", "Amount", "Total",
	"HSN", "SGST", "CGST", "IGST", "Disc", "Discount", "Round off",
}

// BuildDescription assembles the item description from a group's raw lines
// and reports the first 6-8 digit token as the HSN code. The walk is a two
// state machine: while scanning for the code a line is accepted only if it
// reads like prose (has letters, no header words, at least as many letters
// as digits); on the code line the text left of the token is kept when
// alphabetic; after the code nothing more is accepted.
func BuildDescription(group []string) (string, string) {
	var parts []string
	var hsn string
	state := scanningForCode
	for i, ln := range group {
		if state == codeFound {
			break
		}
		if i == 0 {
			ln = leadingSerialRe.ReplaceAllString(ln, "")
		}
		if loc := hsnTokenRe.FindStringIndex(ln); loc != nil {
			hsn = ln[loc[0]:loc[1]]
			if left := strings.TrimSpace(ln[:loc[0]]); letterRe.MatchString(left) {
				parts = append(parts, left)
			}
			state = codeFound
			continue
		}
		if acceptDescriptionLine(ln) {
			parts = append(parts, ln)
		}
	}
	s := strings.Join(parts, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.Trim(s, "~ "), hsn
}

func acceptDescriptionLine(ln string) bool {
	if !letterRe.MatchString(ln) {
		return false
	}
	lower := strings.ToLower(ln)
	for _, stop := range descStoplist {
		if strings.Contains(lower, strings.ToLower(stop)) {
			return false
		}
	}
	return countLetters(ln) >= countDigits(ln)
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
