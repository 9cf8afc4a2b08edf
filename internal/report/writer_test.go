package report

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"invoicesheet/internal/extract"
)

func readRows(data []byte) [][]string {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	Expect(err).NotTo(HaveOccurred())
	return rows
}

var _ = Describe("WriteWorkbook", func() {
	When("the table has extracted rows", func() {
		var rows [][]string

		BeforeEach(func() {
			qty := 10.0
			table := extract.Table{
				Rows: []extract.Row{
					{
						Header:     extract.HeaderFields{InvoiceNumber: "INV-001", InvoiceDate: "01-04-2024"},
						Supplier:   extract.SupplierBlock{GSTIN: "29ABCDE1234F1Z5", Name: "ACME TRADING PVT LTD"},
						Item:       extract.ItemRecord{Description: "Widget Steel", HSNCode: "123456", Quantity: &qty},
						Totals:     extract.DocumentTotals{Taxable: 1000, InvoiceTotal: 1180},
						SourceFile: "invoice1.pdf",
					},
				},
			}

			data, err := WriteWorkbook(table)
			Expect(err).NotTo(HaveOccurred())
			rows = readRows(data)
		})

		It("writes the full column header", func() {
			Expect(rows[0]).To(Equal(extract.Columns))
		})

		It("writes one sheet row per extracted row", func() {
			Expect(rows).To(HaveLen(2))
		})

		It("places values under their columns", func() {
			Expect(rows[1][0]).To(Equal("INV-001"))
			Expect(rows[1][2]).To(Equal("29ABCDE1234F1Z5"))
			Expect(rows[1][5]).To(Equal("Widget Steel"))
		})

		It("names the source file in the last column", func() {
			Expect(rows[1][len(extract.Columns)-1]).To(Equal("invoice1.pdf"))
		})
	})

	When("every document failed", func() {
		var rows [][]string

		BeforeEach(func() {
			table := extract.Table{
				Placeholders: []extract.Placeholder{
					{SourceFile: "a.pdf", Status: extract.PlaceholderStatus, Detail: "no text extracted"},
					{SourceFile: "b.pdf", Status: extract.PlaceholderStatus, Detail: "no rows extracted"},
				},
			}

			data, err := WriteWorkbook(table)
			Expect(err).NotTo(HaveOccurred())
			rows = readRows(data)
		})

		It("switches to the placeholder header", func() {
			Expect(rows[0]).To(Equal(extract.PlaceholderColumns))
		})

		It("writes one row per failed document", func() {
			Expect(rows).To(HaveLen(3))
			Expect(rows[1][0]).To(Equal("a.pdf"))
			Expect(rows[2][0]).To(Equal("b.pdf"))
		})

		It("carries the fixed status and the failure detail", func() {
			Expect(rows[1][1]).To(Equal("no data parsed"))
			Expect(rows[1][2]).To(Equal("no text extracted"))
		})
	})

	When("the table is entirely empty", func() {
		It("still produces a readable workbook", func() {
			data, err := WriteWorkbook(extract.Table{})
			Expect(err).NotTo(HaveOccurred())

			rows := readRows(data)
			Expect(rows[0]).To(Equal(extract.PlaceholderColumns))
			Expect(rows).To(HaveLen(1))
		})
	})
})
