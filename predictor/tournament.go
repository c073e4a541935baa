package predictor

import "github.com/sarchlab/bpsim/trace"

// Tournament combines a gshare table and a bimodal table. A per-address
// selector learns which of the two to trust.
type Tournament struct {
	gshare    []Counter
	bimodal   []Counter
	selectors []Selector
	history   HistoryRegister
}

// NewTournament creates a tournament predictor whose three tables hold size
// entries each. The gshare half XORs the address with the full history
// register of historyWidth bits.
func NewTournament(size int, historyWidth uint) *Tournament {
	t := &Tournament{
		gshare:    make([]Counter, size),
		bimodal:   make([]Counter, size),
		selectors: make([]Selector, size),
		history:   NewHistoryRegister(historyWidth),
	}
	t.Reset()
	return t
}

// Selector returns the selector in slot idx.
func (t *Tournament) Selector(idx int) Selector {
	return t.selectors[idx]
}

// History returns the global history register.
func (t *Tournament) History() HistoryRegister {
	return t.history
}

// Reset sets both direction tables to strongly taken, every selector to
// strongly gshare, and clears the history.
func (t *Tournament) Reset() {
	resetCounters(t.gshare)
	resetCounters(t.bimodal)
	for i := range t.selectors {
		t.selectors[i] = Selector{StronglyGShare}
	}
	t.history.Reset()
}

// Step implements Model. Both halves always learn. The selector moves only
// when exactly one half was right, and the committed prediction is read from
// the selector after that move.
func (t *Tournament) Step(r trace.Record) Prediction {
	gIdx := slot(r.Address^uint64(t.history.Value()), len(t.gshare))
	bIdx := slot(r.Address, len(t.bimodal))

	gPred := t.gshare[gIdx].Predict()
	bPred := t.bimodal[bIdx].Predict()
	gCorrect := gPred == r.Taken
	bCorrect := bPred == r.Taken

	t.history.Shift(r.Taken)

	t.gshare[gIdx].Train(r.Taken)
	t.bimodal[bIdx].Train(r.Taken)

	sel := &t.selectors[bIdx]
	switch {
	case gCorrect && !bCorrect:
		sel.TowardGShare()
	case bCorrect && !gCorrect:
		sel.TowardBimodal()
	}

	if sel.PrefersGShare() {
		return outcome(gPred, r, bIdx)
	}
	return outcome(bPred, r, bIdx)
}
