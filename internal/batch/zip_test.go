package batch

import (
	"archive/zip"
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func makeZip(members map[string][]byte) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range members {
		f, err := w.Create(name)
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Write(data)
		Expect(err).NotTo(HaveOccurred())
	}
	Expect(w.Close()).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("Upload IsZip", func() {
	It("matches the zip extension case-insensitively", func() {
		Expect(Upload{Name: "batch.zip"}.IsZip()).To(BeTrue())
		Expect(Upload{Name: "BATCH.ZIP"}.IsZip()).To(BeTrue())
	})

	It("rejects other extensions", func() {
		Expect(Upload{Name: "invoice.pdf"}.IsZip()).To(BeFalse())
		Expect(Upload{Name: "zip"}.IsZip()).To(BeFalse())
	})
})

var _ = Describe("expandZip", func() {
	When("the archive holds documents in nested directories", func() {
		var uploads []Upload

		BeforeEach(func() {
			archive := makeZip(map[string][]byte{
				"invoice1.pdf":        []byte("one"),
				"nested/invoice2.png": []byte("two"),
			})
			var err error
			uploads, err = expandZip(Upload{Name: "batch.zip", Data: archive})
			Expect(err).NotTo(HaveOccurred())
		})

		It("flattens members to their base names", func() {
			names := []string{uploads[0].Name, uploads[1].Name}
			Expect(names).To(ConsistOf("invoice1.pdf", "invoice2.png"))
		})

		It("keeps the member contents", func() {
			Expect(uploads).To(HaveLen(2))
			for _, u := range uploads {
				Expect(u.Data).NotTo(BeEmpty())
			}
		})
	})

	When("the archive carries macOS junk", func() {
		It("skips resource forks and dotfiles", func() {
			archive := makeZip(map[string][]byte{
				"invoice1.pdf":          []byte("one"),
				"__MACOSX/invoice1.pdf": []byte("junk"),
				".DS_Store":             []byte("junk"),
				"nested/.hidden.pdf":    []byte("junk"),
			})
			uploads, err := expandZip(Upload{Name: "batch.zip", Data: archive})
			Expect(err).NotTo(HaveOccurred())
			Expect(uploads).To(HaveLen(1))
			Expect(uploads[0].Name).To(Equal("invoice1.pdf"))
		})
	})

	When("the data is not a zip archive", func() {
		It("fails", func() {
			_, err := expandZip(Upload{Name: "broken.zip", Data: []byte("not a zip")})
			Expect(err).To(HaveOccurred())
		})
	})
})
