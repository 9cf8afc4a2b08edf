package extract

import (
	"regexp"
	"strings"
)

// gstinRe matches the 15-character GSTIN shape: two-digit state code, PAN,
// entity code, the literal Z, checksum character.
var gstinRe = regexp.MustCompile(`(?i)\b\d{2}[A-Z]{5}\d{4}[A-Z][0-9A-Z]Z[0-9A-Z]\b`)

var (
	sectionBreakRe = regexp.MustCompile(`(?i)\bShip\s+To\b|\bBuyer\b|\bDetails\s+of\s+Goods\b`)
	entityHintRe   = regexp.MustCompile(`\b(PVT|LTD|LLP|INC|CO|COMPANY|DEPARTMENT)\b`)
	addressHintRe  = regexp.MustCompile(`(?i)\d|\broad\b|\bstreet\b|\bfloor\b|\bnagar\b|\bblock\b|\bdist\b|\bpin\b`)
	gstLabelRe     = regexp.MustCompile(`(?i)\bGSTIN\b|\bGSTN\b|\bGST\s*No\b`)
)

// blockCap bounds how far a candidate block may run when no section-break
// marker terminates it.
const blockCap = 12

// span is a half-open [start, end) byte range within a line.
type span struct {
	start, end int
}

// columnSplit infers a two-column text boundary from two token spans on one
// line: the midpoint between the end of the left span and the start of the
// right one, clamped to the line.
func columnSplit(line string, left, right span) int {
	mid := (left.end + right.start) / 2
	if mid > len(line) {
		mid = len(line)
	}
	return mid
}

// LocateSupplier finds the supplier's GSTIN, name and address. Three tiers
// are tried in order (two-column grid, labeled section slice, window around
// the first GSTIN-shaped token); the first tier yielding any non-empty
// field wins. If all fail, every field is empty.
func LocateSupplier(lines []string) SupplierBlock {
	for _, block := range [][]string{gridBlock(lines), sectionBlock(lines), genericBlock(lines)} {
		if sb, ok := classifyBlock(block); ok {
			return sb
		}
	}
	return SupplierBlock{}
}

// gridBlock handles the two-column "Supplier | Recipient" layout: a line
// carrying two GSTIN tokens fixes the column boundary, and the left-hand
// text of the following lines forms the candidate block.
func gridBlock(lines []string) []string {
	header := -1
	for i, ln := range lines {
		u := strings.ToUpper(ln)
		if strings.Contains(u, "SUPPLIER") && strings.Contains(u, "RECIPIENT") {
			header = i
			break
		}
	}
	if header < 0 {
		return nil
	}

	split, start := -1, -1
	for i := header + 1; i < len(lines) && i <= header+6; i++ {
		spans := gstinRe.FindAllStringIndex(lines[i], 2)
		if len(spans) == 2 {
			split = columnSplit(lines[i],
				span{spans[0][0], spans[0][1]},
				span{spans[1][0], spans[1][1]})
			start = i
			break
		}
	}
	if split < 0 {
		return nil
	}

	var block []string
	for i := start; i < len(lines) && i < start+blockCap; i++ {
		// break markers are judged on the supplier column only; the
		// recipient column routinely says "Buyer" on the same line
		left := leftOf(lines[i], split)
		if i > start && sectionBreakRe.MatchString(left) {
			break
		}
		block = append(block, left)
	}
	return block
}

// sectionBlock handles a "Supplier" section label: everything up to the
// next "Recipient" label or section-break marker.
func sectionBlock(lines []string) []string {
	start := -1
	var remainder string
	for i, ln := range lines {
		t := strings.TrimSpace(ln)
		if len(t) >= len("Supplier") && strings.EqualFold(t[:len("Supplier")], "Supplier") {
			start = i
			remainder = strings.TrimLeft(t[len("Supplier"):], " :-.")
			break
		}
	}
	if start < 0 {
		return nil
	}

	var block []string
	if remainder != "" {
		block = append(block, remainder)
	}
	for i := start + 1; i < len(lines) && i <= start+blockCap; i++ {
		if strings.Contains(strings.ToUpper(lines[i]), "RECIPIENT") || sectionBreakRe.MatchString(lines[i]) {
			break
		}
		block = append(block, lines[i])
	}
	return block
}

// genericBlock is the last resort: a window of lines around the first
// GSTIN-shaped token anywhere in the text (2 before, 10 after).
func genericBlock(lines []string) []string {
	for i, ln := range lines {
		if gstinRe.MatchString(ln) {
			lo := i - 2
			if lo < 0 {
				lo = 0
			}
			hi := i + 11
			if hi > len(lines) {
				hi = len(lines)
			}
			return lines[lo:hi]
		}
	}
	return nil
}

// classifyBlock splits a candidate block into GSTIN, name lines and address
// lines. The first GSTIN-shaped token wins; later ones are dropped. ok
// reports whether any field came out non-empty.
func classifyBlock(block []string) (SupplierBlock, bool) {
	var sb SupplierBlock
	var nameParts, addrParts []string
	for idx, ln := range block {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if sb.GSTIN == "" {
			if loc := gstinRe.FindStringIndex(ln); loc != nil {
				sb.GSTIN = strings.ToUpper(ln[loc[0]:loc[1]])
				ln = ln[:loc[0]] + ln[loc[1]:]
			}
		} else {
			ln = gstinRe.ReplaceAllString(ln, "")
		}
		ln = strings.TrimSpace(gstLabelRe.ReplaceAllString(ln, ""))
		ln = strings.Trim(ln, " :-.")
		if ln == "" {
			continue
		}
		if isNameLine(ln, idx) {
			nameParts = append(nameParts, ln)
		} else {
			addrParts = append(addrParts, ln)
		}
	}
	sb.Name = joinClean(nameParts)
	sb.Address = joinClean(addrParts)
	return sb, sb.GSTIN != "" || sb.Name != "" || sb.Address != ""
}

// isNameLine classifies a line as part of the legal name: an explicit
// entity hint anywhere, or an early line with nothing address-like in it.
func isNameLine(ln string, idx int) bool {
	if entityHintRe.MatchString(strings.ToUpper(ln)) {
		return true
	}
	return idx < 3 && !addressHintRe.MatchString(ln)
}

func leftOf(line string, split int) string {
	if len(line) > split {
		line = line[:split]
	}
	return strings.TrimSpace(line)
}

func joinClean(parts []string) string {
	s := strings.Join(parts, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " ,.:;-")
}
