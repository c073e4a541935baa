package predictor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/bpsim/predictor"
	"github.com/sarchlab/bpsim/trace"
)

type recordingHook struct {
	items   []trace.Record
	details []predictor.StepDetail
}

func (h *recordingHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != predictor.HookPosPrediction {
		return
	}
	h.items = append(h.items, ctx.Item.(trace.Record))
	h.details = append(h.details, ctx.Detail.(predictor.StepDetail))
}

var _ = Describe("Evaluator", func() {
	var (
		e    *predictor.Evaluator
		hook *recordingHook
	)

	BeforeEach(func() {
		e = predictor.NewEvaluator()
		hook = &recordingHook{}
	})

	It("should invoke hooks once per record in trace order", func() {
		e.AcceptHook(hook)
		records := pattern(0x10, "TTN")

		res := e.Evaluate("bimodal-1bit", 16, predictor.NewOneBitBimodal(16), records)

		Expect(res).To(Equal(predictor.Result{Correct: 2, Total: 3}))
		Expect(hook.items).To(Equal(records))
		Expect(hook.details).To(HaveLen(3))
		Expect(hook.details[0].Family).To(Equal("bimodal-1bit"))
		Expect(hook.details[0].Param).To(Equal(uint64(16)))
		Expect(hook.details[2].Prediction).To(Equal(predictor.Prediction{
			Index: 0, Taken: true, Correct: false,
		}))
	})

	It("should not require hooks", func() {
		res := e.Evaluate("always", 0, predictor.NewAlwaysTaken(), pattern(0x1, "TN"))
		Expect(res).To(Equal(predictor.Result{Correct: 1, Total: 2}))
		Expect(hook.items).To(BeEmpty())
	})

	It("should evaluate family points in order", func() {
		records := mixedTrace(1000)
		f := predictor.Family{
			Name:  "bimodal-2bit",
			Swept: true,
			Points: []predictor.Point{
				{Param: 16, New: func() predictor.Model { return predictor.NewTwoBitBimodal(16) }},
				{Param: 64, New: func() predictor.Model { return predictor.NewTwoBitBimodal(64) }},
			},
		}

		results := e.EvaluateFamily(f, records)

		Expect(results).To(HaveLen(2))
		Expect(results[0]).To(Equal(e.Evaluate("", 16, predictor.NewTwoBitBimodal(16), records)))
		Expect(results[1]).To(Equal(e.Evaluate("", 64, predictor.NewTwoBitBimodal(64), records)))
	})
})
