package predictor

import "github.com/sarchlab/bpsim/trace"

// Static always predicts the same direction.
type Static struct {
	taken bool
}

// NewAlwaysTaken creates a model that predicts every branch taken.
func NewAlwaysTaken() *Static {
	return &Static{taken: true}
}

// NewNeverTaken creates a model that predicts every branch not taken.
func NewNeverTaken() *Static {
	return &Static{taken: false}
}

// Reset does nothing; a static model has no state.
func (s *Static) Reset() {}

// Step implements Model.
func (s *Static) Step(r trace.Record) Prediction {
	return outcome(s.taken, r, -1)
}
