// Package predictor implements branch-direction predictor models that are
// replayed against a recorded branch trace.
//
// Every model owns its tables and history. A model is reset before a run and
// then stepped once per trace record, strictly in order: the prediction for a
// record is committed before the model learns that record's outcome.
package predictor

import "github.com/sarchlab/bpsim/trace"

// Prediction is what a model committed to for one record.
type Prediction struct {
	// Index is the table slot that produced the prediction, or -1 for
	// stateless models.
	Index int
	// Taken is the predicted direction.
	Taken bool
	// Correct tells whether Taken matched the recorded outcome.
	Correct bool
}

// Model is one predictor configuration.
type Model interface {
	// Reset returns every table cell and history bit to its start state.
	Reset()
	// Step predicts the record, then learns its outcome.
	Step(r trace.Record) Prediction
}

// Result is the accuracy of one model over a trace.
type Result struct {
	// Correct is the number of correctly predicted records.
	Correct uint64 `json:"correct"`
	// Total is the number of records.
	Total uint64 `json:"total"`
}

// Mispredictions returns the number of wrong predictions.
func (r Result) Mispredictions() uint64 {
	return r.Total - r.Correct
}

// Accuracy returns the prediction accuracy as a percentage.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// MispredictionRate returns the misprediction rate as a percentage.
func (r Result) MispredictionRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Mispredictions()) / float64(r.Total) * 100
}

// Point is one configuration of a predictor family.
type Point struct {
	// Param is the swept parameter: table size or history width. Zero for
	// families without a sweep.
	Param uint64
	// New builds a fresh model for this configuration.
	New func() Model
}

// Family is a predictor kind with all of its configurations, in the order
// they are reported.
type Family struct {
	Name string
	// Swept is set for families evaluated over a range of sizes or widths.
	Swept  bool
	Points []Point
}

func outcome(predicted bool, r trace.Record, index int) Prediction {
	return Prediction{
		Index:   index,
		Taken:   predicted,
		Correct: predicted == r.Taken,
	}
}
