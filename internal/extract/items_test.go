package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SegmentItems", func() {
	var (
		lines  []string
		groups [][]string
	)

	JustBeforeEach(func() {
		groups = SegmentItems(lines)
	})

	When("a goods section is labeled", func() {
		BeforeEach(func() {
			lines = []string{
				"Details of Goods",
				"1 Widget 100 PCS 10.00 1000.00 18 1180.00",
				"Taxable Amt 1000.00",
			}
		})

		It("yields exactly one group", func() {
			Expect(groups).To(HaveLen(1))
		})

		It("starts the group at the marker line", func() {
			Expect(groups[0][0]).To(Equal("1 Widget 100 PCS 10.00 1000.00 18 1180.00"))
		})

		It("includes the terminating line in the region", func() {
			Expect(groups[0]).To(ContainElement("Taxable Amt 1000.00"))
		})
	})

	When("several markers exist", func() {
		BeforeEach(func() {
			lines = []string{
				"Details of Goods",
				"1 First item",
				"continuation of first",
				"2 Second item",
				"Total Inv Amt 500.00",
			}
		})

		It("groups continuation lines under their marker", func() {
			Expect(groups).To(HaveLen(2))
			Expect(groups[0]).To(Equal([]string{"1 First item", "continuation of first"}))
		})

		It("keeps item order", func() {
			Expect(groups[1][0]).To(Equal("2 Second item"))
		})
	})

	When("only a serial-number header exists", func() {
		BeforeEach(func() {
			lines = []string{
				"some preamble",
				"Sr No Description HSN Qty",
				"1 Foo",
				"2 Bar",
			}
		})

		It("segments the window after the header", func() {
			Expect(groups).To(HaveLen(2))
		})
	})

	When("no section markers exist at all", func() {
		BeforeEach(func() {
			lines = []string{"1 Foo", "2 Bar", "3 Baz"}
		})

		It("segments the entire sequence", func() {
			Expect(groups).To(HaveLen(3))
		})
	})

	When("no line starts with an integer marker", func() {
		BeforeEach(func() {
			lines = []string{"Details of Goods", "no items here", "Taxable Amt 0"}
		})

		It("yields zero groups", func() {
			Expect(groups).To(BeEmpty())
		})
	})
})

var _ = Describe("BuildDescription", func() {
	var (
		group []string
		desc  string
		hsn   string
	)

	JustBeforeEach(func() {
		desc, hsn = BuildDescription(group)
	})

	When("the code token appears after prose lines", func() {
		BeforeEach(func() {
			group = []string{
				"1 Steel Bolt M8",
				"Galvanized 731815 12 PCS",
			}
		})

		It("strips the leading serial number", func() {
			Expect(desc).To(HavePrefix("Steel Bolt M8"))
		})

		It("keeps the alphabetic text left of the code", func() {
			Expect(desc).To(Equal("Steel Bolt M8 Galvanized"))
		})

		It("reports the 6-8 digit token as the HSN code", func() {
			Expect(hsn).To(Equal("731815"))
		})
	})

	When("prose follows the code line", func() {
		BeforeEach(func() {
			group = []string{
				"1 Widget 123456",
				"Extra prose line",
			}
		})

		It("stops accepting text once the code is seen", func() {
			Expect(desc).To(Equal("Widget"))
		})
	})

	When("a line carries column-header words", func() {
		BeforeEach(func() {
			group = []string{
				"1 Ball Valve",
				"Qty Rate Amount",
				"Brass body",
			}
		})

		It("drops the stoplisted line", func() {
			Expect(desc).To(Equal("Ball Valve Brass body"))
		})

		It("reports no code", func() {
			Expect(hsn).To(BeEmpty())
		})
	})

	When("a line is mostly digits", func() {
		BeforeEach(func() {
			group = []string{
				"1 Pipe Fitting",
				"AB 12345 6789",
			}
		})

		It("rejects lines with more digits than letters", func() {
			Expect(desc).To(Equal("Pipe Fitting"))
		})
	})

	When("the description is wrapped in tildes", func() {
		BeforeEach(func() {
			group = []string{"1 ~Spare Kit~"}
		})

		It("trims boundary tildes", func() {
			Expect(desc).To(Equal("Spare Kit"))
		})
	})
})
