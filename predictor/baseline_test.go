package predictor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bpsim/predictor"
	"github.com/sarchlab/bpsim/trace"
)

var _ = Describe("Static predictors", func() {
	It("should count taken records for always-taken", func() {
		records := pattern(0x10, "TTNTN")
		res := evaluate(predictor.NewAlwaysTaken(), records)
		Expect(res).To(Equal(predictor.Result{Correct: 3, Total: 5}))
	})

	It("should count not-taken records for never-taken", func() {
		records := pattern(0x10, "TTNTN")
		res := evaluate(predictor.NewNeverTaken(), records)
		Expect(res).To(Equal(predictor.Result{Correct: 2, Total: 5}))
	})

	It("should split every trace between the two baselines", func() {
		records := mixedTrace(1000)
		taken, notTaken := trace.Count(records)

		always := evaluate(predictor.NewAlwaysTaken(), records)
		never := evaluate(predictor.NewNeverTaken(), records)

		Expect(always.Correct).To(Equal(taken))
		Expect(never.Correct).To(Equal(notTaken))
		Expect(always.Correct + never.Correct).To(Equal(always.Total))
	})

	It("should report no stateful index", func() {
		pred := predictor.NewAlwaysTaken().Step(rec(0x10, false))
		Expect(pred.Index).To(Equal(-1))
		Expect(pred.Taken).To(BeTrue())
		Expect(pred.Correct).To(BeFalse())
	})
})

var _ = Describe("Result", func() {
	It("should compute accuracy and misprediction rate", func() {
		r := predictor.Result{Correct: 3, Total: 4}
		Expect(r.Accuracy()).To(BeNumerically("~", 75.0, 0.001))
		Expect(r.MispredictionRate()).To(BeNumerically("~", 25.0, 0.001))
		Expect(r.Mispredictions()).To(Equal(uint64(1)))
	})

	It("should report zero for an empty trace", func() {
		r := predictor.Result{}
		Expect(r.Accuracy()).To(Equal(0.0))
		Expect(r.MispredictionRate()).To(Equal(0.0))
	})
})
