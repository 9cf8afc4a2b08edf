package extract

import (
	"errors"
	"strings"
)

// RawDocument is one source file's extracted text, as delivered by the
// acquisition layer.
type RawDocument struct {
	SourceFile string
	Text       string
	OCRUsed    bool
}

// HeaderFields holds the document-level fields found by the header probes.
type HeaderFields struct {
	InvoiceNumber string
	InvoiceDate   string
	IRN           string
	// FooterTotal is the document-stated grand total; nil means the text
	// carries none, which is distinct from zero.
	FooterTotal *float64
}

// SupplierBlock identifies the supplier. At most one per document.
type SupplierBlock struct {
	GSTIN   string
	Name    string
	Address string
}

// ItemRecord is one parsed line item. Quantity and UnitPrice are nil when
// the matched pattern did not carry them.
type ItemRecord struct {
	Description string
	HSNCode     string
	Quantity    *float64
	Unit        string
	UnitPrice   *float64
	Taxable     float64
	CGSTRate    float64
	CGSTAmount  float64
	SGSTRate    float64
	SGSTAmount  float64
	IGSTRate    float64
	IGSTAmount  float64
}

// DocumentTotals is a document-level property broadcast onto every row of
// the document once all its items are parsed.
type DocumentTotals struct {
	Taxable      float64
	CGST         float64
	SGST         float64
	IGST         float64
	InvoiceTotal float64
}

// Row is one output line: header, supplier and totals replicated across
// every item of the document.
type Row struct {
	Header     HeaderFields
	Supplier   SupplierBlock
	Item       ItemRecord
	Totals     DocumentTotals
	SourceFile string
}

var (
	// ErrNoText marks a document the acquisition layer produced no text for.
	ErrNoText = errors.New("no text extracted")
	// ErrNoRows marks a document whose text yielded no parseable items.
	ErrNoRows = errors.New("no rows extracted")
)

// ParseDocument runs the extraction pipeline over one document and returns
// its output rows. A document with no text, no item groups, or no
// numerically parseable item fails with ErrNoText/ErrNoRows; field-level
// misses inside an otherwise parseable document never fail.
func ParseDocument(doc RawDocument) ([]Row, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return nil, ErrNoText
	}
	lines := SplitLines(doc.Text)
	header := ParseHeader(doc.Text)
	supplier := LocateSupplier(lines)

	groups := SegmentItems(lines)
	items := make([]ItemRecord, 0, len(groups))
	parsed := 0
	for _, group := range groups {
		item, ok := buildItem(group, supplier.GSTIN)
		if ok {
			parsed++
		}
		items = append(items, item)
	}
	if len(items) == 0 || parsed == 0 {
		return nil, ErrNoRows
	}

	var totals DocumentTotals
	for _, it := range items {
		totals.Taxable += it.Taxable
		totals.CGST += it.CGSTAmount
		totals.SGST += it.SGSTAmount
		totals.IGST += it.IGSTAmount
	}
	if header.FooterTotal != nil && *header.FooterTotal != 0 {
		totals.InvoiceTotal = *header.FooterTotal
	} else {
		totals.InvoiceTotal = round2(totals.Taxable + totals.CGST + totals.SGST + totals.IGST)
	}

	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{
			Header:     header,
			Supplier:   supplier,
			Item:       it,
			Totals:     totals,
			SourceFile: doc.SourceFile,
		}
	}
	return rows, nil
}

// buildItem combines the description walk, the numeric pattern match and
// the tax split for one item group. ok reports whether a numeric pattern
// matched; unmatched items still carry description and code.
func buildItem(group []string, gstin string) (ItemRecord, bool) {
	desc, hsn := BuildDescription(group)
	nums := parseItemFields(group)
	item := ItemRecord{Description: desc, HSNCode: hsn}
	if !nums.matched {
		return item, false
	}
	if nums.code != "" {
		item.HSNCode = nums.code
	}
	item.Quantity = nums.quantity
	item.Unit = nums.unit
	item.UnitPrice = nums.unitPrice
	item.Taxable = nums.taxable

	split := SplitTax(nums.taxable, nums.taxRate, gstin)
	item.CGSTRate, item.CGSTAmount = split.CGSTRate, split.CGSTAmount
	item.SGSTRate, item.SGSTAmount = split.SGSTRate, split.SGSTAmount
	item.IGSTRate, item.IGSTAmount = split.IGSTRate, split.IGSTAmount
	return item, true
}
