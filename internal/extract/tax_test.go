package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SplitTax", func() {
	When("the supplier GSTIN has the intra-state prefix", func() {
		var split TaxSplit

		BeforeEach(func() {
			split = SplitTax(1000, 18, "29ABCDE1234F1Z5")
		})

		It("halves the rate into CGST and SGST", func() {
			Expect(split.CGSTRate).To(Equal(9.0))
			Expect(split.SGSTRate).To(Equal(9.0))
		})

		It("computes each amount on the half rate", func() {
			Expect(split.CGSTAmount).To(Equal(90.0))
			Expect(split.SGSTAmount).To(Equal(90.0))
		})

		It("keeps IGST at zero", func() {
			Expect(split.IGSTRate).To(BeZero())
			Expect(split.IGSTAmount).To(BeZero())
		})

		It("sums to the full-rate equivalent within rounding tolerance", func() {
			Expect(split.CGSTAmount + split.SGSTAmount).To(BeNumerically("~", 180.0, 0.01))
		})
	})

	When("the supplier GSTIN is from another state", func() {
		var split TaxSplit

		BeforeEach(func() {
			split = SplitTax(1000, 18, "07FGHIJ5678K2Z3")
		})

		It("levies the full rate as IGST", func() {
			Expect(split.IGSTRate).To(Equal(18.0))
			Expect(split.IGSTAmount).To(Equal(180.0))
		})

		It("keeps CGST and SGST at zero", func() {
			Expect(split.CGSTAmount).To(BeZero())
			Expect(split.SGSTAmount).To(BeZero())
		})
	})

	When("the GSTIN is empty", func() {
		It("treats the supply as inter-state", func() {
			split := SplitTax(500, 12, "")
			Expect(split.IGSTAmount).To(Equal(60.0))
			Expect(split.CGSTAmount).To(BeZero())
		})
	})

	When("amounts need rounding", func() {
		It("rounds each amount to two decimals", func() {
			split := SplitTax(333.33, 18, "29ABCDE1234F1Z5")
			Expect(split.CGSTAmount).To(Equal(30.0))
			Expect(split.SGSTAmount).To(Equal(30.0))
		})
	})
})
