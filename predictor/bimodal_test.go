package predictor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bpsim/predictor"
	"github.com/sarchlab/bpsim/trace"
)

var _ = Describe("OneBitBimodal", func() {
	It("should flip a slot only after a misprediction", func() {
		records := pattern(0x10, "TTN")
		res := evaluate(predictor.NewOneBitBimodal(16), records)
		Expect(res).To(Equal(predictor.Result{Correct: 2, Total: 3}))
	})

	It("should predict the last outcome of a slot", func() {
		b := predictor.NewOneBitBimodal(16)

		pred := b.Step(rec(0x10, false))
		Expect(pred.Index).To(Equal(0))
		Expect(pred.Taken).To(BeTrue())
		Expect(pred.Correct).To(BeFalse())

		pred = b.Step(rec(0x10, false))
		Expect(pred.Taken).To(BeFalse())
		Expect(pred.Correct).To(BeTrue())
	})

	It("should alias addresses that share a slot", func() {
		b := predictor.NewOneBitBimodal(16)
		b.Step(rec(0x3, false))

		pred := b.Step(rec(0x13, true))
		Expect(pred.Index).To(Equal(3))
		Expect(pred.Taken).To(BeFalse())
	})

	It("should restart from taken after reset", func() {
		b := predictor.NewOneBitBimodal(16)
		b.Step(rec(0x10, false))
		b.Reset()

		pred := b.Step(rec(0x10, true))
		Expect(pred.Correct).To(BeTrue())
	})

	It("should mispredict every change of direction on an alternating branch", func() {
		res := evaluate(predictor.NewOneBitBimodal(32), pattern(0x44, "TNTNTNTN"))
		Expect(res).To(Equal(predictor.Result{Correct: 1, Total: 8}))
	})
})

var _ = Describe("TwoBitBimodal", func() {
	It("should tolerate a single anomaly in a loop branch", func() {
		res := evaluate(predictor.NewTwoBitBimodal(16), pattern(0x10, "TTTNTTTN"))
		Expect(res).To(Equal(predictor.Result{Correct: 6, Total: 8}))
	})

	It("should index by address modulo the table size", func() {
		b := predictor.NewTwoBitBimodal(128)
		pred := b.Step(rec(0x1234, true))
		Expect(pred.Index).To(Equal(0x1234 % 128))
		Expect(b.Size()).To(Equal(128))
	})

	It("should learn a not-taken branch after two mispredictions", func() {
		b := predictor.NewTwoBitBimodal(16)
		results := []bool{}
		for _, r := range pattern(0x20, "NNNN") {
			results = append(results, b.Step(r).Correct)
		}
		Expect(results).To(Equal([]bool{false, false, true, true}))
		Expect(b.Counter(0)).To(Equal(predictor.StronglyNotTaken))
	})

	It("should be deterministic", func() {
		records := mixedTrace(2000)
		first := evaluate(predictor.NewTwoBitBimodal(256), records)
		second := evaluate(predictor.NewTwoBitBimodal(256), records)
		Expect(first).To(Equal(second))
	})

	It("should reset tables between evaluations", func() {
		records := mixedTrace(500)
		b := predictor.NewTwoBitBimodal(64)
		first := evaluate(b, records)
		second := evaluate(b, records)
		Expect(second).To(Equal(first))
	})

	It("should handle an empty trace", func() {
		res := evaluate(predictor.NewTwoBitBimodal(16), []trace.Record{})
		Expect(res).To(Equal(predictor.Result{}))
	})
})
