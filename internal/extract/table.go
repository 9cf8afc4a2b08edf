package extract

// Columns is the fixed output column order of the normal schema.
var Columns = []string{
	"Invoice number",
	"Invoice date",
	"Supplier GSTIN",
	"Supplier name",
	"Supplier address",
	"Item description",
	"Item HSN code",
	"Quantity",
	"Unit",
	"Unit Price",
	"Taxable Amount",
	"CGST Rate",
	"CGST Amount",
	"SGST Rate",
	"SGST Amount",
	"IGST Rate",
	"IGST Amount",
	"Invoice Footer Total",
	"Total Taxable",
	"Total CGST",
	"Total SGST",
	"Total IGST",
	"Invoice Total",
	"IRN",
	"Source file",
}

// PlaceholderColumns is the schema of the no-data contract: when an entire
// batch yields zero rows, one placeholder row per input document is emitted
// instead, so downstream serialization never receives a zero-row batch
// silently.
var PlaceholderColumns = []string{"Source file", "status", "detail"}

// PlaceholderStatus is the fixed status value of the no-data contract.
const PlaceholderStatus = "no data parsed"

// DocumentResult is the per-document outcome: rows, or the error that kept
// the document from contributing any.
type DocumentResult struct {
	SourceFile string
	Rows       []Row
	Err        error
}

// Placeholder is one row of the no-data schema. Detail carries the
// document's specific failure so skipped documents keep their reason.
type Placeholder struct {
	SourceFile string
	Status     string
	Detail     string
}

// Table is the final artifact of a batch: either output rows in document
// order, or placeholders when the whole batch came up empty.
type Table struct {
	Rows         []Row
	Placeholders []Placeholder
}

// Empty reports whether the table fell back to the placeholder schema.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// BuildTable concatenates per-document rows in document order. Failed
// documents contribute nothing when any rows exist at all; only when every
// document failed does the table switch to the placeholder schema.
func BuildTable(results []DocumentResult) Table {
	var rows []Row
	for _, r := range results {
		rows = append(rows, r.Rows...)
	}
	if len(rows) > 0 {
		return Table{Rows: rows}
	}

	placeholders := make([]Placeholder, 0, len(results))
	for _, r := range results {
		p := Placeholder{SourceFile: r.SourceFile, Status: PlaceholderStatus}
		if r.Err != nil {
			p.Detail = r.Err.Error()
		}
		placeholders = append(placeholders, p)
	}
	return Table{Placeholders: placeholders}
}

// Cells flattens a row into the fixed column order. Absent optional
// decimals become empty cells.
func (r Row) Cells() []any {
	return []any{
		r.Header.InvoiceNumber,
		r.Header.InvoiceDate,
		r.Supplier.GSTIN,
		r.Supplier.Name,
		r.Supplier.Address,
		r.Item.Description,
		r.Item.HSNCode,
		optCell(r.Item.Quantity),
		r.Item.Unit,
		optCell(r.Item.UnitPrice),
		r.Item.Taxable,
		r.Item.CGSTRate,
		r.Item.CGSTAmount,
		r.Item.SGSTRate,
		r.Item.SGSTAmount,
		r.Item.IGSTRate,
		r.Item.IGSTAmount,
		optCell(r.Header.FooterTotal),
		r.Totals.Taxable,
		r.Totals.CGST,
		r.Totals.SGST,
		r.Totals.IGST,
		r.Totals.InvoiceTotal,
		r.Header.IRN,
		r.SourceFile,
	}
}

// Cells flattens a placeholder into the no-data column order.
func (p Placeholder) Cells() []any {
	return []any{p.SourceFile, p.Status, p.Detail}
}

func optCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
