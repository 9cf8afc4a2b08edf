package extract

import "strings"

// intraStatePrefix is the GSTIN state code under which a supply is
// intra-state: the tax splits evenly into CGST and SGST. Any other prefix
// levies the full rate as IGST.
const intraStatePrefix = "29"

// TaxSplit is the CGST/SGST vs IGST resolution for one taxable amount.
type TaxSplit struct {
	CGSTRate   float64
	CGSTAmount float64
	SGSTRate   float64
	SGSTAmount float64
	IGSTRate   float64
	IGSTAmount float64
}

// SplitTax resolves the tax split for a taxable amount and percentage rate
// from the supplier GSTIN's jurisdiction prefix.
func SplitTax(taxable, rate float64, gstin string) TaxSplit {
	if strings.HasPrefix(gstin, intraStatePrefix) {
		half := rate / 2
		amt := round2(taxable * half / 100)
		return TaxSplit{
			CGSTRate:   half,
			CGSTAmount: amt,
			SGSTRate:   half,
			SGSTAmount: amt,
		}
	}
	return TaxSplit{
		IGSTRate:   rate,
		IGSTAmount: round2(taxable * rate / 100),
	}
}
