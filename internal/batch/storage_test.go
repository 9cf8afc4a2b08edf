package batch

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalStorage", func() {
	var storage *LocalStorage

	BeforeEach(func() {
		var err error
		storage, err = NewLocalStorage(filepath.Join(GinkgoT().TempDir(), "workbooks"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("creates the base directory on construction", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "a", "b")
		_, err := NewLocalStorage(dir)
		Expect(err).NotTo(HaveOccurred())

		info, err := os.Stat(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.IsDir()).To(BeTrue())
	})

	Describe("Save and Get", func() {
		It("round-trips file contents", func() {
			path, err := storage.Save("out.xlsx", []byte("workbook-bytes"))
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal("out.xlsx"))

			data, err := storage.Get("out.xlsx")
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]byte("workbook-bytes")))
		})
	})

	Describe("name validation", func() {
		It("rejects names that would escape the directory", func() {
			_, err := storage.Save(filepath.Join("..", "evil.xlsx"), []byte("data"))
			Expect(err).To(MatchError(ContainSubstring("invalid workbook name")))

			_, err = storage.Get(filepath.Join("sub", "dir.xlsx"))
			Expect(err).To(MatchError(ContainSubstring("invalid workbook name")))

			Expect(storage.Delete("")).To(MatchError(ContainSubstring("invalid workbook name")))
		})
	})

	Describe("Get", func() {
		When("the file does not exist", func() {
			It("should return an error", func() {
				_, err := storage.Get("missing.xlsx")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Delete", func() {
		It("removes a saved file", func() {
			_, err := storage.Save("out.xlsx", []byte("data"))
			Expect(err).NotTo(HaveOccurred())

			Expect(storage.Delete("out.xlsx")).To(Succeed())

			_, err = storage.Get("out.xlsx")
			Expect(err).To(HaveOccurred())
		})

		When("the file does not exist", func() {
			It("should return an error", func() {
				Expect(storage.Delete("missing.xlsx")).NotTo(Succeed())
			})
		})
	})
})
