package uat

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ledger", func() {
	var book *ledger[string]

	BeforeEach(func() {
		book = newLedger[string](nil)
	})

	It("creates a default OnSale record lazily on first access", func() {
		rec, inWindow := book.book("R", 3)
		Ω(inWindow).Should(BeTrue())
		Ω(rec.kind).Should(Equal(OnSale))
		Ω(rec.owner).Should(Equal(NoOwner))
		Ω(rec.minValue).Should(Equal(0.0))
	})

	It("returns the same record on repeated access", func() {
		first, _ := book.book("R", 3)
		first.minValue = 7
		second, _ := book.book("R", 3)
		Ω(second.minValue).Should(Equal(7.0))
	})

	It("rejects times before t0", func() {
		book.t0 = 5
		_, inWindow := book.book("R", 4)
		Ω(inWindow).Should(BeFalse())
	})

	It("accepts a time equal to t0", func() {
		book.t0 = 5
		_, inWindow := book.book("R", 5)
		Ω(inWindow).Should(BeTrue())
	})

	It("enforces the upper bound of a finite time window", func() {
		window := uint64(2)
		book = newLedger[string](&window)
		_, inWindow := book.book("R", 3)
		Ω(inWindow).Should(BeTrue())

		_, inWindow = book.book("R", 4)
		Ω(inWindow).Should(BeFalse())
	})

	It("snapshot never lets the caller mutate the underlying record", func() {
		rec, _ := book.book("R", 1)
		rec.minValue = 3
		snap := book.snapshot("R", 1)
		snap.History = append(snap.History, TradeEntry{MinValue: 99})

		rec2, _ := book.book("R", 1)
		Ω(rec2.history).Should(BeEmpty())
	})

	It("advance discards the front bucket and increments t0", func() {
		rec, _ := book.book("R", 0)
		rec.minValue = 42
		book.advance()
		Ω(book.t0).Should(Equal(uint64(1)))

		rec2, inWindow := book.book("R", 0)
		Ω(inWindow).Should(BeFalse())
		_ = rec2

		rec3, inWindow := book.book("R", 1)
		Ω(inWindow).Should(BeTrue())
		Ω(rec3.minValue).Should(Equal(0.0))
	})

	It("keeps distinct regions at the same time separate", func() {
		a, _ := book.book("A", 1)
		b, _ := book.book("B", 1)
		a.minValue = 1
		b.minValue = 2
		Ω(a.minValue).ShouldNot(Equal(b.minValue))
	})
})
