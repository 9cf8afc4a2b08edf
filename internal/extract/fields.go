package extract

import (
	"regexp"
	"strings"
)

// Primary item layout: code qty unit unit-price taxable rate trailing-amount.
var primaryItemRe = regexp.MustCompile(`\b(\d{4,8})\s+(\d+(?:\.\d+)?)\s+([A-Za-z]{1,4})\.?\s+([\d,]+(?:\.\d+)?)\s+([\d,]+(?:\.\d+)?)\s+(\d{1,2}(?:\.\d+)?)\s*%?\s+([\d,]+(?:\.\d+)?)`)

// Fallback layout drops quantity and unit.
var fallbackItemRe = regexp.MustCompile(`\b(\d{4,8})\s+([\d,]+(?:\.\d+)?)\s+([\d,]+(?:\.\d+)?)\s+(\d{1,2}(?:\.\d+)?)\s*%?\s+([\d,]+(?:\.\d+)?)`)

// itemNumbers is the numeric slice of one item. matched reports whether
// either pattern hit; when false every other field is meaningless.
type itemNumbers struct {
	code      string
	quantity  *float64
	unit      string
	unitPrice *float64
	taxable   float64
	taxRate   float64
	matched   bool
}

// parseItemFields flattens an item group to one line and tries the primary
// then the fallback pattern. In the fallback tier the second capture is a
// unit price at secondary confidence; quantity and unit stay unset and the
// price is never multiplied out.
func parseItemFields(group []string) itemNumbers {
	flat := strings.Join(group, " ")
	if m := primaryItemRe.FindStringSubmatch(flat); m != nil {
		return itemNumbers{
			code:      m[1],
			quantity:  ParseOptionalAmount(m[2]),
			unit:      m[3],
			unitPrice: ParseOptionalAmount(m[4]),
			taxable:   ParseAmount(m[5], 0),
			taxRate:   ParseAmount(m[6], 0),
			matched:   true,
		}
	}
	if m := fallbackItemRe.FindStringSubmatch(flat); m != nil {
		return itemNumbers{
			code:      m[1],
			unitPrice: ParseOptionalAmount(m[2]),
			taxable:   ParseAmount(m[3], 0),
			taxRate:   ParseAmount(m[4], 0),
			matched:   true,
		}
	}
	return itemNumbers{}
}
