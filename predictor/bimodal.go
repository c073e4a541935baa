package predictor

import "github.com/sarchlab/bpsim/trace"

// OneBitBimodal remembers the last outcome of every table slot.
type OneBitBimodal struct {
	// table[i] is true when the last branch mapped to slot i was taken.
	table []bool
}

// NewOneBitBimodal creates a predictor with size slots, all predicting taken.
func NewOneBitBimodal(size int) *OneBitBimodal {
	b := &OneBitBimodal{table: make([]bool, size)}
	b.Reset()
	return b
}

// Size returns the number of table slots.
func (b *OneBitBimodal) Size() int {
	return len(b.table)
}

// Reset sets every slot back to taken.
func (b *OneBitBimodal) Reset() {
	for i := range b.table {
		b.table[i] = true
	}
}

// Step implements Model.
func (b *OneBitBimodal) Step(r trace.Record) Prediction {
	idx := slot(r.Address, len(b.table))
	pred := outcome(b.table[idx], r, idx)
	b.table[idx] = r.Taken
	return pred
}

// TwoBitBimodal indexes a table of saturating counters by address only.
type TwoBitBimodal struct {
	table []Counter
}

// NewTwoBitBimodal creates a predictor with size counters, all strongly
// taken.
func NewTwoBitBimodal(size int) *TwoBitBimodal {
	b := &TwoBitBimodal{table: make([]Counter, size)}
	b.Reset()
	return b
}

// Size returns the number of table slots.
func (b *TwoBitBimodal) Size() int {
	return len(b.table)
}

// Counter returns the counter in slot idx.
func (b *TwoBitBimodal) Counter(idx int) Counter {
	return b.table[idx]
}

// Reset sets every counter back to strongly taken.
func (b *TwoBitBimodal) Reset() {
	resetCounters(b.table)
}

// Step implements Model.
func (b *TwoBitBimodal) Step(r trace.Record) Prediction {
	idx := slot(r.Address, len(b.table))
	pred := outcome(b.table[idx].Predict(), r, idx)
	b.table[idx].Train(r.Taken)
	return pred
}

// slot maps a key onto a table of size entries.
func slot(key uint64, size int) int {
	return int(key % uint64(size))
}
