package predictor

import "github.com/sarchlab/bpsim/trace"

// GShare indexes a counter table by the branch address XOR'd with the low
// bits of the global history.
type GShare struct {
	table   []Counter
	history HistoryRegister
	mask    uint32
}

// NewGShare creates a gshare predictor with size counters, a history register
// of historyWidth bits, and an index that uses maskWidth of those bits.
func NewGShare(size int, historyWidth, maskWidth uint) *GShare {
	g := &GShare{
		table:   make([]Counter, size),
		history: NewHistoryRegister(historyWidth),
		mask:    MaskForWidth(maskWidth),
	}
	g.Reset()
	return g
}

// Mask returns the history mask applied when computing an index.
func (g *GShare) Mask() uint32 {
	return g.mask
}

// History returns the global history register.
func (g *GShare) History() HistoryRegister {
	return g.history
}

// Counter returns the counter in slot idx.
func (g *GShare) Counter(idx int) Counter {
	return g.table[idx]
}

// Reset sets every counter to strongly taken and clears the history.
func (g *GShare) Reset() {
	resetCounters(g.table)
	g.history.Reset()
}

// Step implements Model.
func (g *GShare) Step(r trace.Record) Prediction {
	idx := slot(r.Address^uint64(g.history.Masked(g.mask)), len(g.table))
	pred := outcome(g.table[idx].Predict(), r, idx)
	g.table[idx].Train(r.Taken)
	g.history.Shift(r.Taken)
	return pred
}
