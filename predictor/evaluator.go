package predictor

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/bpsim/trace"
)

// HookPosPrediction is invoked after a model commits a prediction and learns
// the outcome. The hook Item is the trace.Record and the Detail is a
// StepDetail.
var HookPosPrediction = &sim.HookPos{Name: "Prediction"}

// StepDetail describes one evaluated record.
type StepDetail struct {
	// Family is the name of the predictor family being evaluated.
	Family string
	// Param is the configuration point within the family.
	Param uint64
	// Prediction is what the model committed to.
	Prediction Prediction
}

// Evaluator replays traces through models.
type Evaluator struct {
	*sim.HookableBase
}

// NewEvaluator creates an Evaluator with no hooks attached.
func NewEvaluator() *Evaluator {
	return &Evaluator{HookableBase: sim.NewHookableBase()}
}

// Evaluate resets m and steps it through every record in order.
func (e *Evaluator) Evaluate(
	family string,
	param uint64,
	m Model,
	records []trace.Record,
) Result {
	m.Reset()

	res := Result{Total: uint64(len(records))}
	hooked := e.NumHooks() > 0

	for _, r := range records {
		pred := m.Step(r)
		if pred.Correct {
			res.Correct++
		}

		if hooked {
			e.InvokeHook(sim.HookCtx{
				Domain: e,
				Pos:    HookPosPrediction,
				Item:   r,
				Detail: StepDetail{
					Family:     family,
					Param:      param,
					Prediction: pred,
				},
			})
		}
	}

	return res
}

// EvaluateFamily evaluates every point of f, in order.
func (e *Evaluator) EvaluateFamily(f Family, records []trace.Record) []Result {
	results := make([]Result, len(f.Points))
	for i, p := range f.Points {
		results[i] = e.Evaluate(f.Name, p.Param, p.New(), records)
	}
	return results
}
