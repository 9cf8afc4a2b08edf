package extract

import "regexp"

// A fieldRule is one probe in an ordered pattern cascade. Rules are tried
// in slice order and the first match wins; partial matches from later
// rules are never merged in.
type fieldRule struct {
	name string
	re   *regexp.Regexp
}

var (
	invoiceNumberRules = []fieldRule{
		{"document-no", regexp.MustCompile(`(?i)\bDocument\s+No\b[.:\-]*\s*(\S+)`)},
		{"document-number", regexp.MustCompile(`(?i)\bDocument\s+Number\b[.:\-]*\s*(\S+)`)},
		{"invoice-no", regexp.MustCompile(`(?i)\bInvoice\s+No\b[.:\-]*\s*(\S+)`)},
		{"bill-no", regexp.MustCompile(`(?i)\bBill\s+No\b[.:\-]*\s*(\S+)`)},
	}

	invoiceDateRules = []fieldRule{
		{"document-date", regexp.MustCompile(`(?i)\bDocument\s+Date\b[.:\-]*\s*(\d{2}[-/]\d{2}[-/]\d{4})`)},
		{"date", regexp.MustCompile(`(?i)\bDate\b[.:\-]*\s*(\d{2}[-/]\d{2}[-/]\d{4})`)},
	}

	irnRules = []fieldRule{
		{"irn", regexp.MustCompile(`(?i)\bIRN\b[.:\-]*\s*([0-9a-f]{16,64})\b`)},
	}

	footerTotalRules = []fieldRule{
		{"total-invoice-amt", regexp.MustCompile(`(?i)\bTotal\s+Invoice\s+Amt\b[.:\-]*\s*(?:Rs\.?\s*)?([\d,]+(?:\.\d+)?)`)},
		{"total-inv-amt", regexp.MustCompile(`(?i)\bTotal\s+Inv\.?\s+Amt\b[.:\-]*\s*(?:Rs\.?\s*)?([\d,]+(?:\.\d+)?)`)},
		{"total-invoice-amount", regexp.MustCompile(`(?i)\bTotal\s+Invoice\s+Amount\b[.:\-]*\s*(?:Rs\.?\s*)?([\d,]+(?:\.\d+)?)`)},
		{"total-inv-amount", regexp.MustCompile(`(?i)\bTotal\s+Inv\.?\s+Amount\b[.:\-]*\s*(?:Rs\.?\s*)?([\d,]+(?:\.\d+)?)`)},
	}
)

// probe runs an ordered rule list over the text and returns the first
// rule's capture, or "" when nothing matches.
func probe(rules []fieldRule, text string) string {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// ParseHeader extracts invoice number, date, IRN and the footer total from
// the raw text. Misses leave fields empty; no semantic validation is done
// on what matched.
func ParseHeader(text string) HeaderFields {
	h := HeaderFields{
		InvoiceNumber: probe(invoiceNumberRules, text),
		InvoiceDate:   probe(invoiceDateRules, text),
		IRN:           probe(irnRules, text),
	}
	if tok := probe(footerTotalRules, text); tok != "" {
		h.FooterTotal = ParseOptionalAmount(tok)
	}
	return h
}
