package batch

import (
	"bytes"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"invoicesheet/internal/report"
)

// End-to-end run over the real database and storage layers, from upload
// to a readable workbook on disk.
var _ = Describe("Batch pipeline", func() {
	var (
		db      *BoltDB
		storage *LocalStorage
		service *Service
	)

	BeforeEach(func() {
		tmpDir := GinkgoT().TempDir()

		var err error
		db, err = NewBoltDB(filepath.Join(tmpDir, "batches.db"))
		Expect(err).NotTo(HaveOccurred())

		storage, err = NewLocalStorage(filepath.Join(tmpDir, "workbooks"))
		Expect(err).NotTo(HaveOccurred())

		service = NewService(db, newMockExtractor(), storage)
	})

	AfterEach(func() {
		db.Close()
	})

	It("turns an upload batch into a downloadable workbook", func() {
		archive := makeZip(map[string][]byte{
			"invoices/invoice1.pdf": []byte(invoiceText),
			"invoices/invoice2.pdf": []byte(invoiceText),
			"invoices/blank.pdf":    []byte("   "),
		})

		batch, err := service.ProcessBatch([]Upload{{Name: "invoices.zip", Data: archive}})
		Expect(err).NotTo(HaveOccurred())
		Expect(batch.RowCount).To(Equal(2))
		Expect(batch.Documents).To(HaveLen(3))

		// The batch survives a database reload.
		reloaded, err := service.GetBatch(batch.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(reloaded.Workbook).To(Equal(batch.Workbook))

		// The stored workbook opens and carries the extracted rows.
		data, _, err := service.GetWorkbook(batch.ID)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows(report.SheetName)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3)) // header + one row per parsed invoice
		Expect(rows[1][0]).To(Equal("INV-001"))
	})

	It("falls back to placeholder rows when nothing parses", func() {
		batch, err := service.ProcessBatch([]Upload{
			{Name: "blank1.pdf", Data: []byte("   ")},
			{Name: "blank2.pdf", Data: []byte("   ")},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(batch.RowCount).To(BeZero())

		data, _, err := service.GetWorkbook(batch.ID)
		Expect(err).NotTo(HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows(report.SheetName)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(3)) // header + one placeholder per document
		Expect(rows[1][1]).To(Equal("no data parsed"))
	})
})
